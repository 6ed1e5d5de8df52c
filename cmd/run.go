package cmd

import (
	"github.com/abhisek/swipemath/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setupEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	src, name := e.source(cmd.Context(), 0)
	e.logger.Info("starting", "source", name, "db", e.store != nil)

	return app.Run(app.Options{
		Source:       src,
		EventRepo:    e.eventRepo(),
		Settings:     e.cfg.Game.Settings(),
		TickInterval: e.cfg.Game.TickInterval,
		SourceName:   name,
		Logger:       e.logger,
	})
}
