package cmd

import (
	"fmt"

	"github.com/abhisek/foundry/internal/app"
	"github.com/abhisek/foundry/internal/config"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/worksheet"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill <worksheet-id>",
	Short: "Open a worksheet directly, skipping the menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := worksheet.Get(args[0])
		if err != nil {
			return err
		}

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

		return app.RunWorksheet(store, cfgDir, cfg, ws)
	},
}
