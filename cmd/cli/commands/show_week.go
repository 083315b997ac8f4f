package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/demlikcoffee/shift-planner/pkg/core/services"
)

// ShowWeekCmd creates the showWeek command
func ShowWeekCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showWeek",
		Short: "Show the displayed week's shift grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := services.BuildWeekView(app.Ctx, app.Session, app.WeekStart, app.ReadOnly(), app.Logger)
			if err != nil {
				return fmt.Errorf("failed to build week view: %w", err)
			}

			mode := "Editing Mode"
			if view.ReadOnly {
				mode = "Viewing Mode (Read-Only)"
			}
			fmt.Printf("\n📅 %s — %s\n", view.Range, mode)
			fmt.Printf("Acting as: %s (%s)\n\n", app.ActorName, app.ActorRole)

			// Header row
			fmt.Printf("%-28s", "")
			for _, day := range view.Days {
				fmt.Printf("  %-14s", fmt.Sprintf("%s %d", day.Label, day.Date.Day()))
			}
			fmt.Println()
			fmt.Println(strings.Repeat("-", 28+7*16))

			for _, row := range view.Rows {
				label := fmt.Sprintf("%s (%s-%s)", row.Shift.Label, row.Shift.Start, row.Shift.End)
				fmt.Printf("%-28s", label)
				for _, cell := range row.Cells {
					fmt.Printf("  %-14s", cellSummary(cell))
				}
				fmt.Println()
			}
			fmt.Println()

			// Situation detail below the grid
			for _, row := range view.Rows {
				for _, cell := range row.Cells {
					for _, emp := range cell.People {
						sit, ok := cell.Situations[emp.ID]
						if !ok {
							continue
						}
						detail := make([]string, 0, 3)
						if sit.StartTime != "" {
							detail = append(detail, "starts "+sit.StartTime)
						}
						if sit.EndTime != "" {
							detail = append(detail, "ends "+sit.EndTime)
						}
						if sit.Note != "" {
							detail = append(detail, sit.Note)
						}
						fmt.Printf("⚠️  %s %s, %s: %s\n", cell.Day.Label, row.Shift.Label, emp.Name, strings.Join(detail, ", "))
					}
				}
			}

			return nil
		},
	}
}

// cellSummary compresses a cell to initials, flagging special situations
func cellSummary(cell services.WeekCell) string {
	if len(cell.People) == 0 {
		return "—"
	}

	parts := make([]string, 0, len(cell.People))
	for _, emp := range cell.People {
		entry := initials(emp.Name)
		if _, ok := cell.Situations[emp.ID]; ok {
			entry += "!"
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, ",")
}

// initials reduces "Zeynep Soysal" to "ZS"
func initials(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}

	first := string([]rune(parts[0])[0])
	if len(parts) == 1 {
		return strings.ToUpper(first)
	}
	last := string([]rune(parts[len(parts)-1])[0])
	return strings.ToUpper(first + last)
}
