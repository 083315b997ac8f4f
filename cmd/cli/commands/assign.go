package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/model"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <day 0-6> <shift> <employeeID>",
		Short: "Assign an employee to a shift slot",
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

			app.Logger.Debug("assign command",
				zap.Int("day_index", dayIndex),
				zap.String("shift", args[1]),
				zap.String("employee_id", employeeID))

			if err := app.Session.Assign(dayIndex, shiftKey, employeeID); err != nil {
				return fmt.Errorf("failed to assign: %w", err)
			}

			people, err := app.Session.PeopleIn(dayIndex, shiftKey)
			if err != nil {
				return err
			}

			fmt.Printf("✅ Assigned %s to day %d %s (%d on shift)\n", employeeID, dayIndex, shiftKey, len(people))
			return nil
		},
	}
}
