package cmd

import (
	"fmt"

	"github.com/abhisek/foundry/internal/config"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/engine"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/worksheet"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <worksheet-id>",
	Short: "Export a worksheet's answers to a JSON file",
	Long: `Export the current answers for a worksheet, draft or completed,
to <slug>-answers.json in the export directory.`,
	Args: cobra.ExactArgs(1),
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

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.Export.Dir
		}

		sess := engine.New(ws, engine.Options{Store: store})
		defer sess.Close()

		sink := export.FileSink{Dir: dir}
		if err := sess.Export(sink); err != nil {
			return fmt.Errorf("export: %w", err)
		}

		fmt.Printf("Wrote %s/%s\n", dir, sess.ExportFilename())
		return nil
	},
}

func init() {
	exportCmd.Flags().String("dir", "", "Destination directory (default from config)")
}
