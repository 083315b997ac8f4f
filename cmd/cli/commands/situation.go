package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/model"
	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
)

// SetSituationCmd creates the setSituation command
func SetSituationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setSituation <day 0-6> <shift> <employeeID>",
		Short: "Record a special situation (custom times and/or a note) for an assigned employee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayIndex, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be a number between 0 and 6: %w", err)
			}
			shiftKey := model.ShiftKey(args[1])
			employeeID := args[2]

			startTime, _ := cmd.Flags().GetString("start")
			endTime, _ := cmd.Flags().GetString("end")
			note, _ := cmd.Flags().GetString("note")

			if app.ReadOnly() {
				fmt.Println("🔒 The displayed week is read-only; nothing was changed.")
				return nil
			}

			app.Logger.Debug("setSituation command",
				zap.Int("day_index", dayIndex),
				zap.String("shift", args[1]),
				zap.String("employee_id", employeeID))

			sit := model.Situation{StartTime: startTime, EndTime: endTime, Note: note}
			err = app.Session.SetSituation(dayIndex, shiftKey, employeeID, sit)
			if errors.Is(err, schedule.ErrNotAssigned) {
				fmt.Printf("⚠️  %s is not assigned to day %d %s — assign them first.\n", employeeID, dayIndex, shiftKey)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to record situation: %w", err)
			}

			if sit.IsEmpty() {
				fmt.Printf("✅ Cleared situation for %s on day %d %s (nothing to record)\n", employeeID, dayIndex, shiftKey)
			} else {
				fmt.Printf("✅ Recorded situation for %s on day %d %s\n", employeeID, dayIndex, shiftKey)
			}
			return nil
		},
	}

	cmd.Flags().String("start", "", "Override start time, e.g. 20:00")
	cmd.Flags().String("end", "", "Override end time, e.g. 22:00")
	cmd.Flags().String("note", "", "Free-text note, e.g. 'Has an exam'")

	return cmd
}

// ClearSituationCmd creates the clearSituation command
func ClearSituationCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clearSituation <day 0-6> <shift> <employeeID>",
		Short: "Remove an employee's special situation for a slot",
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

			if err := app.Session.ClearSituation(dayIndex, shiftKey, employeeID); err != nil {
				return fmt.Errorf("failed to clear situation: %w", err)
			}

			fmt.Printf("✅ Cleared situation for %s on day %d %s\n", employeeID, dayIndex, shiftKey)
			return nil
		},
	}
}
