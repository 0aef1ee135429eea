package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/foundry/internal/curriculum"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [day]",
	Short: "Show the 30-day program plan",
	Long: `Show the 30-day program overview, or one day in detail.

Task completion is read from the local database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		store, err := draft.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open draft store: %w", err)
		}
		defer store.Close()

		tracker, err := curriculum.NewTracker(context.Background(), store)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		if len(args) == 1 {
			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			return printDay(tracker, n)
		}
		return printPlan(tracker)
	},
}

func printPlan(tracker *curriculum.Tracker) error {
	var lastPhase curriculum.Phase
	for _, d := range curriculum.Program() {
		if d.Phase != lastPhase {
			fmt.Printf("\n%s  ·  %d%%\n", strings.ToUpper(string(d.Phase)), tracker.PhaseProgress(d.Phase))
			fmt.Println(strings.Repeat("─", 60))
			lastPhase = d.Phase
		}

		done := 0
		for _, t := range d.Tasks {
			if tracker.Done(t.ID) {
				done++
			}
		}
		mark := " "
		if done == len(d.Tasks) && len(d.Tasks) > 0 {
			mark = "✓"
		}
		ws := ""
		if d.WorksheetID != "" {
			ws = "  ◆ " + d.WorksheetID
		}
		fmt.Printf("%s Day %2d  %-40s  %d/%d tasks%s\n",
			mark, d.Number, d.Title, done, len(d.Tasks), ws)
	}

	fmt.Printf("\nOverall: %d%%\n", tracker.OverallProgress())
	return nil
}

func printDay(tracker *curriculum.Tracker, n int) error {
	d := curriculum.DayByNumber(n)
	if d == nil {
		return fmt.Errorf("no day %d in the program (1-30)", n)
	}

	fmt.Printf("Day %d: %s (%s phase)\n", d.Number, d.Title, d.Phase)
	if d.Description != "" {
		fmt.Println(d.Description)
	}
	fmt.Println()

	if len(d.Objectives) > 0 {
		fmt.Println("Objectives:")
		for _, o := range d.Objectives {
			fmt.Printf("  → %s\n", o)
		}
		fmt.Println()
	}

	fmt.Println("Tasks:")
	for _, t := range d.Tasks {
		box := "[ ]"
		if tracker.Done(t.ID) {
			box = "[x]"
		}
		pri := ""
		if t.Priority == curriculum.PriorityHigh {
			pri = " !"
		}
		fmt.Printf("  %s %s (%s, %s)%s\n", box, t.Title, t.Type, t.EstimatedTime, pri)
	}

	if d.WorksheetID != "" {
		fmt.Printf("\nWorkshop: %s (run foundry to fill it in)\n", d.WorksheetID)
	}

	if len(d.Reflection) > 0 {
		fmt.Println("\nReflection:")
		for _, r := range d.Reflection {
			fmt.Printf("  · %s\n", r)
		}
	}

	if len(d.Deliverables) > 0 {
		fmt.Println("\nDeliverables:")
		for _, dl := range d.Deliverables {
			fmt.Printf("  · %s\n", dl)
		}
	}

	return nil
}
