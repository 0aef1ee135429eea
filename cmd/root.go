package cmd

import (
	"github.com/abhisek/foundry/internal/draft"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foundry",
	Short: "30-day founder accelerator in your terminal",
	Long:  "Foundry is a terminal accelerator that walks founders from idea to launch in 30 days with guided worksheets and an AI coach.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FOUNDRY_DB env var)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then FOUNDRY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, draft.EnsureDir(p)
	}
	return draft.DefaultDBPath()
}
