package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
	"github.com/demlikcoffee/shift-planner/pkg/core/week"
)

// PublishedPlan is the announcement payload handed to the notification
// transport after a publish
type PublishedPlan struct {
	ID        string
	WeekRange string
	Message   string
	NoteCount int
}

// PublishPlan composes the weekly announcement: a base sentence naming the
// published week, plus one clause per recorded special situation. The
// output is deterministic for a fixed session and week; the session's
// situation order is already sorted by day, shift, and employee id.
// Composition is pure string work over the in-memory stores and never fails
// once the inputs exist; delivery is the transport's problem.
func PublishPlan(ctx context.Context, session *schedule.Session, weekStart time.Time, publisher string, logger *zap.Logger) (*PublishedPlan, error) {
	weekRange := week.FormatWeekRange(weekStart)

	logger.Debug("Composing publish announcement",
		zap.String("week_range", weekRange),
		zap.String("publisher", publisher))

	var b strings.Builder
	fmt.Fprintf(&b, "📢 Weekly shift plan updated! %s has published a new plan for the week of (%s). Please check your own shifts.",
		publisher, weekRange)

	entries := session.Situations()
	if len(entries) > 0 {
		clauses := make([]string, 0, len(entries))
		for _, entry := range entries {
			startTime := entry.Situation.StartTime
			if startTime == "" {
				startTime = entry.Shift.Start
			}

			dayLabel := week.DayLabel(week.Day(weekStart, entry.DayIndex))
			clause := fmt.Sprintf("%s, on %s will start their shift at %s", entry.Employee.Name, dayLabel, startTime)
			if entry.Situation.Note != "" {
				clause += fmt.Sprintf(" (%s)", entry.Situation.Note)
			}
			clauses = append(clauses, clause)
		}

		fmt.Fprintf(&b, " Important notes: %s.", strings.Join(clauses, "; "))
	}

	plan := &PublishedPlan{
		ID:        uuid.New().String(),
		WeekRange: weekRange,
		Message:   b.String(),
		NoteCount: len(entries),
	}

	logger.Info("Plan published",
		zap.String("plan_id", plan.ID),
		zap.String("week_range", weekRange),
		zap.Int("note_count", plan.NoteCount))

	return plan, nil
}
