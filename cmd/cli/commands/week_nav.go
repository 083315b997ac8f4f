package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/demlikcoffee/shift-planner/pkg/core/week"
)

// PrevWeekCmd creates the prevWeek command
func PrevWeekCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prevWeek",
		Short: "Display the previous week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setDisplayedWeek(app, app.WeekStart.AddDate(0, 0, -7))
			return nil
		},
	}
}

// NextWeekCmd creates the nextWeek command
func NextWeekCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "nextWeek",
		Short: "Display the next week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			setDisplayedWeek(app, app.WeekStart.AddDate(0, 0, 7))
			return nil
		},
	}
}

// GoWeekCmd creates the goWeek command
func GoWeekCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "goWeek <date>",
		Short: "Display the week containing the given date (format: 2006-01-02)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := time.ParseInLocation("2006-01-02", args[0], time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q (want 2006-01-02): %w", args[0], err)
			}

			setDisplayedWeek(app, week.StartOfWeek(date))
			return nil
		},
	}
}

// setDisplayedWeek replaces the displayed week and recomputes access. The
// assignment and situation stores are left untouched; only the freeze flag
// moves with the week.
func setDisplayedWeek(app *AppContext, weekStart time.Time) {
	app.WeekStart = weekStart
	app.RefreshAccess()

	mode := "editable"
	if app.ReadOnly() {
		mode = "read-only"
	}
	fmt.Printf("📅 Now displaying %s (%s)\n", week.FormatWeekRange(app.WeekStart), mode)
}
