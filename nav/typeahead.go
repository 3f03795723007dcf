package nav

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/five82/selkit/collection"
)

// searchLabels finds the first enabled node whose label starts with query,
// case-insensitively, scanning forward from (and excluding) from and wrapping
// around once. When no label has the prefix, it falls back to the enabled
// node whose label prefix is closest to the query by edit distance, so a
// fumbled character ("docments") still lands near the intended item. The
// fallback tolerance scales with query length; beyond it the search fails.
func searchLabels(v *collection.View, query string, from collection.Key) (collection.Key, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || v.Len() == 0 {
		return "", false
	}

	start := 0
	if i := v.IndexOf(from); i >= 0 {
		start = i + 1
	}

	if k, ok := scanPrefix(v, query, start); ok {
		return k, true
	}

	return nearestLabel(v, query, start)
}

// scanPrefix walks the full collection once, starting at start and wrapping.
func scanPrefix(v *collection.View, query string, start int) (collection.Key, bool) {
	for off := 0; off < v.Len(); off++ {
		n, _ := v.At((start + off) % v.Len())
		if n.Disabled || n.Label == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(n.Label), query) {
			return n.Key, true
		}
	}
	return "", false
}

// nearestLabel picks the enabled node whose label prefix has the smallest
// edit distance to query, preferring nodes at or after start on ties.
func nearestLabel(v *collection.View, query string, start int) (collection.Key, bool) {
	limit := len([]rune(query)) / 2
	if limit < 1 {
		limit = 1
	}

	best := limit + 1
	var bestKey collection.Key
	for off := 0; off < v.Len(); off++ {
		n, _ := v.At((start + off) % v.Len())
		if n.Disabled || n.Label == "" {
			continue
		}
		d := levenshtein.ComputeDistance(query, labelPrefix(n.Label, query))
		if d < best {
			best = d
			bestKey = n.Key
		}
	}
	if best > limit {
		return "", false
	}
	return bestKey, true
}

// labelPrefix lowercases label and truncates it to the rune length of query,
// so distance measures the typed portion rather than the whole label.
func labelPrefix(label, query string) string {
	runes := []rune(strings.ToLower(label))
	if n := len([]rune(query)); len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
