package cmd

import (
	"fmt"

	"github.com/abhisek/foundry/internal/app"
	"github.com/abhisek/foundry/internal/config"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/spf13/cobra"
)

// runApp opens the draft store, loads config, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	store, err := draft.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open draft store: %w", err)
	}
	defer store.Close()

	cfgDir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := config.Read(cfgDir)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	return app.Run(store, cfgDir, cfg)
}
