package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/foundry/internal/worksheet"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <worksheet-id>",
	Short: "Print a worksheet's structure (no database)",
	Long: `Print every section and question of a worksheet to stdout.

This is a stateless inspection tool; no drafts are read or written.
Useful for reviewing worksheet definitions.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	ws, err := worksheet.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s, %s)\n", ws.Title, ws.Difficulty, ws.EstimatedTime)
	if ws.Description != "" {
		fmt.Println(ws.Description)
	}
	fmt.Println()

	for si, sec := range ws.Sections {
		fmt.Printf("── Section %d/%d: %s ──\n", si+1, len(ws.Sections), sec.Title)
		if sec.Description != "" {
			fmt.Printf("   %s\n", sec.Description)
		}
		if sec.TimeEstimate != "" {
			fmt.Printf("   (%s)\n", sec.TimeEstimate)
		}
		fmt.Println()

		for qi, q := range sec.Questions {
			req := ""
			if q.Required {
				req = " *"
			}
			fmt.Printf("  %d. [%s]%s %s\n", qi+1, q.Kind, req, q.Label)
			if q.HelpText != "" {
				fmt.Printf("     %s\n", q.HelpText)
			}
			if len(q.Choices) > 0 {
				fmt.Printf("     choices: %s\n", strings.Join(q.Choices, ", "))
			}
			if q.Kind == worksheet.KindScale {
				fmt.Printf("     scale: %d (%s) to %d (%s)\n",
					q.Scale.Min, q.Scale.Labels[0], q.Scale.Max, q.Scale.Labels[1])
			}
			if q.Kind == worksheet.KindMatrix {
				fmt.Printf("     rows: %s\n", strings.Join(q.Rows, ", "))
				fmt.Printf("     columns: %s\n", strings.Join(q.Columns, ", "))
			}
			if q.Rules != nil {
				var rules []string
				if q.Rules.MinLength > 0 {
					rules = append(rules, fmt.Sprintf("min %d chars", q.Rules.MinLength))
				}
				if q.Rules.MaxLength > 0 {
					rules = append(rules, fmt.Sprintf("max %d chars", q.Rules.MaxLength))
				}
				if q.Rules.Pattern != "" {
					rules = append(rules, fmt.Sprintf("pattern %s", q.Rules.Pattern))
				}
				if len(rules) > 0 {
					fmt.Printf("     rules: %s\n", strings.Join(rules, ", "))
				}
			}
		}
		fmt.Println()
	}

	fmt.Printf("── %d sections, %d questions ──\n", len(ws.Sections), ws.TotalQuestions())
	return nil
}
