package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/selkit/collection"
	"github.com/five82/selkit/internal/config"
	"github.com/five82/selkit/nav"
	"github.com/five82/selkit/router"
	"github.com/five82/selkit/selection"
)

// appKeyMap holds the bindings the browser handles itself. They use control
// chords so plain runes stay free for the engine's typeahead.
type appKeyMap struct {
	Quit       key.Binding
	Layout     key.Binding
	CycleTheme key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Layout: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Toggle list/grid"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "Cycle theme"),
		),
	}
}

// Model is the bubbletea model hosting one selkit engine instance.
type Model struct {
	cfg        config.Config
	configPath string

	entries []entry
	view    *collection.View
	engine  *router.Router

	// Set by the engine's remove callback during HandleKey; applied right
	// after, once control is back in Update.
	doomed []collection.Key

	theme   Theme
	styles  Styles
	appKeys appKeyMap
	help    help.Model

	columns int
	width   int
	height  int
	status  string
}

// NewModel builds the browser model and its engine from the given config.
func NewModel(cfg config.Config, configPath string) *Model {
	m := &Model{
		cfg:        cfg,
		configPath: configPath,
		entries:    sampleEntries(),
		theme:      themeByName(cfg.Theme),
		appKeys:    defaultAppKeyMap(),
		help:       help.New(),
		columns:    cfg.Columns,
	}
	m.styles = m.theme.Styles()

	m.engine = router.New(router.Config{
		Mode:                   selection.ParseMode(cfg.SelectionMode),
		DisallowEmptySelection: cfg.DisallowEmpty,
		SelectionFollowsFocus:  cfg.SelectionFollowsFocus,
		AllowsRemoval:          true,
		Wrap:                   cfg.Wrap,
		PageSize:               8,
	},
		router.WithSelectionChangeFunc(func(keys []collection.Key) {
			m.status = fmt.Sprintf("%d selected", len(keys))
		}),
		router.WithFocusChangeFunc(func(k collection.Key, ok bool) {
			if !ok {
				m.status = "empty"
			}
		}),
		router.WithRemoveFunc(func(keys []collection.Key) {
			m.doomed = keys
		}),
	)

	m.commit()
	return m
}

// commit rebuilds the snapshot and its delegate and hands both to the
// engine. Every structural change to entries funnels through here.
func (m *Model) commit() {
	m.view = snapshot(m.entries)
	var d nav.Delegate
	if m.columns > 1 {
		d = nav.NewGrid(m.view, m.columns)
	} else {
		d = nav.NewList(m.view)
	}
	m.engine.SetView(m.view, d)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.appKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.appKeys.Layout):
			m.toggleLayout()
			return m, nil
		case key.Matches(msg, m.appKeys.CycleTheme):
			m.cycleTheme()
			return m, nil
		}

		if m.engine.HandleKey(msg) {
			if m.doomed != nil {
				m.entries = removeEntries(m.entries, m.doomed)
				m.doomed = nil
				m.commit()
			}
			return m, nil
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) toggleLayout() {
	if m.columns > 1 {
		m.columns = 1
	} else {
		m.columns = max(m.cfg.Columns, 3)
	}
	m.commit()
}

func (m *Model) cycleTheme() {
	m.theme = nextTheme(m.theme.Name)
	m.styles = m.theme.Styles()
	m.cfg.Theme = m.theme.Name
	// Persist best-effort; the session keeps the new theme either way.
	_ = config.Save(m.configPath, m.cfg)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("selkit browser"))
	b.WriteString("\n\n")

	if m.columns > 1 {
		b.WriteString(m.renderGrid())
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.engine.KeyMap()))

	return m.styles.Frame.Render(b.String())
}

func (m *Model) renderList() string {
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, m.renderEntry(e, 0))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderGrid() string {
	cellWidth := 18
	if m.width > 0 && m.width/m.columns < cellWidth {
		cellWidth = max(m.width/m.columns-1, 8)
	}

	var rows []string
	for start := 0; start < len(m.entries); start += m.columns {
		end := min(start+m.columns, len(m.entries))
		cells := make([]string, 0, m.columns)
		for _, e := range m.entries[start:end] {
			cells = append(cells, m.renderEntry(e, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderEntry(e entry, width int) string {
	marker := "  "
	if m.engine.Selection().IsSelected(e.key) {
		marker = "✓ "
	}
	label := marker + e.name
	if width > 0 {
		label = truncate(label, width-1)
		label = fmt.Sprintf("%-*s", width, label)
	}

	style := m.styles.Item
	switch {
	case e.disabled:
		style = m.styles.Disabled
	case m.isFocused(e.key) && m.engine.Focus().IsFocusVisible():
		style = m.styles.Focused
	case m.engine.Selection().IsSelected(e.key):
		style = m.styles.Selected
	}
	return style.Render(label)
}

func (m *Model) isFocused(k collection.Key) bool {
	fk, ok := m.engine.Focus().FocusedKey()
	return ok && fk == k
}

func (m *Model) statusLine() string {
	sel := m.engine.Selection()
	parts := []string{
		fmt.Sprintf("%d items", len(m.entries)),
		fmt.Sprintf("mode: %s", sel.Mode()),
	}
	if n := sel.Count(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, " · ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}
