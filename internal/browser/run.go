package browser

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/selkit/internal/config"
)

// Options configure the browser runtime.
type Options struct {
	ConfigPath string
	Columns    int // overrides the configured column count when > 0
	DebugLog   string
}

// Run boots the demo browser until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	if opts.DebugLog != "" {
		f, err := tea.LogToFile(opts.DebugLog, "selkit")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
	}

	cfg := config.Load(opts.ConfigPath)
	if opts.Columns > 0 {
		cfg.Columns = opts.Columns
	}

	model := NewModel(cfg, opts.ConfigPath)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
