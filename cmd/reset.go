package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/foundry/internal/curriculum"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/worksheet"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [worksheet-id]",
	Short: "Clear saved drafts and program progress",
	Long: `Clear the draft for one worksheet, or without an argument clear
every draft plus the 30-day task progress.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			if len(args) == 1 {
				fmt.Printf("This clears the saved draft for %s.\n", args[0])
			} else {
				fmt.Println("This clears all worksheet drafts and task progress.")
			}
			fmt.Println("Run again with --yes to confirm.")
			return nil
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

		ctx := context.Background()

		if len(args) == 1 {
			ws, err := worksheet.Get(args[0])
			if err != nil {
				return err
			}
			if err := store.Remove(ctx, draft.Key(ws.Title)); err != nil {
				return fmt.Errorf("remove draft: %w", err)
			}
			fmt.Printf("Cleared the draft for %s.\n", ws.ID)
			return nil
		}

		for _, ws := range worksheet.All() {
			if err := store.Remove(ctx, draft.Key(ws.Title)); err != nil {
				return fmt.Errorf("remove draft for %s: %w", ws.ID, err)
			}
		}

		tracker, err := curriculum.NewTracker(ctx, store)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		if err := tracker.Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Println("Cleared all drafts and program progress.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
