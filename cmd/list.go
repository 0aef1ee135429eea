package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/foundry/internal/worksheet"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the worksheet catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")

		sheets := worksheet.All()
		if difficulty != "" {
			var filtered []*worksheet.Worksheet
			for _, ws := range sheets {
				if string(ws.Difficulty) == difficulty {
					filtered = append(filtered, ws)
				}
			}
			if len(filtered) == 0 {
				return fmt.Errorf("no worksheets found for difficulty %q", difficulty)
			}
			sheets = filtered
		}

		// Header.
		fmt.Printf("%-28s  %-44s  %-12s  %8s  %9s  %s\n",
			"ID", "Title", "Difficulty", "Sections", "Questions", "Est. time")
		fmt.Println(strings.Repeat("─", 118))

		for _, ws := range sheets {
			title := ws.Title
			if len(title) > 44 {
				title = title[:41] + "..."
			}
			fmt.Printf("%-28s  %-44s  %-12s  %8d  %9d  %s\n",
				ws.ID, title, ws.Difficulty,
				len(ws.Sections), ws.TotalQuestions(), ws.EstimatedTime)
		}

		fmt.Printf("\n%d worksheets\n", len(sheets))
		return nil
	},
}

func init() {
	listCmd.Flags().String("difficulty", "", "Filter by difficulty (beginner, intermediate, advanced)")
}
