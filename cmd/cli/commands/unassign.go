package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/model"
)

// UnassignCmd creates the unassign command
func UnassignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign <day 0-6> <shift> <employeeID>",
		Short: "Remove an employee from a shift slot (drops their special situation too)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number between 0 and 6: %w", err)
			}
			shiftKey := model.ShiftKey(args[1])
			employeeID := args[2]

			if app.ReadOnly() {
				fmt.Println("🔒 The displayed week is read-only; nothing was changed.")
				return nil
			}

			app.Logger.Debug("unassign command",
				zap.Int("day_index", dayIndex),
				zap.String("shift", args[1]),
				zap.String("employee_id", employeeID))

			if err := app.Session.Unassign(dayIndex, shiftKey, employeeID); err != nil {
				return fmt.Errorf("failed to unassign: %w", err)
			}

			fmt.Printf("✅ Removed %s from day %d %s\n", employeeID, dayIndex, shiftKey)
			return nil
		},
	}
}
