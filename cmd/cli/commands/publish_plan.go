package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/services"
)

// PublishPlanCmd creates the publishPlan command
func PublishPlanCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "publishPlan",
		Short: "Publish the displayed week's plan and notify staff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ReadOnly() {
				fmt.Println("🔒 Publishing is only available for the current week with edit rights.")
				return nil
			}

			app.Logger.Debug("publishPlan command", zap.Time("week_start", app.WeekStart))

			plan, err := services.PublishPlan(app.Ctx, app.Session, app.WeekStart, app.ActorRole, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to publish plan: %w", err)
			}

			if err := app.Notifier.Send(app.Ctx, plan.ID, plan.Message); err != nil {
				return fmt.Errorf("failed to send announcement: %w", err)
			}

			fmt.Printf("\n✅ Plan published for %s (%d special situation notes)\n", plan.WeekRange, plan.NoteCount)
			return nil
		},
	}
}
