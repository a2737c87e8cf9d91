package main

import (
	"context"
	"fmt"

	"bsviz/cmd/bsviz/ui"
	"bsviz/internal/config"
	"bsviz/internal/logging"
	"bsviz/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runInteractive launches the Bubble Tea visualizer.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	sess := session.New(gen)
	defer sess.Stop()

	model := ui.New(cfg, sess)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Live reload is best effort: without a config directory there is
	// nothing to watch.
	if w, err := config.NewWatcher(resolveConfigPath()); err == nil {
		w.OnReload(applyFlagOverrides)
		if err := w.Start(ctx); err != nil {
			logging.Get(logging.CategoryBoot).Warn("config watcher disabled: %v", err)
			w.Stop()
		} else {
			defer w.Stop()
			model = model.WithConfigChanges(w.Changes())
		}
	}

	logging.Boot("interactive session %s started", sess.ID)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	logging.Boot("interactive session %s ended", sess.ID)
	return nil
}
