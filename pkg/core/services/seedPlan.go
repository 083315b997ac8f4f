package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/internal/config"
	"github.com/demlikcoffee/shift-planner/pkg/core/model"
	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
)

// SeedResult summarizes what SeedPlan applied to the session
type SeedResult struct {
	Assignments int
	Situations  int
	Recurring   int
}

// SeedPlan populates a fresh session from the configured seed plan:
// fixed per-slot assignments, seeded special situations, and recurring
// assignments whose rrule matches a day of the displayed week.
// Seeding is idempotent; applying the same config twice leaves the
// session unchanged.
func SeedPlan(ctx context.Context, session *schedule.Session, cfg *config.Config, weekStart time.Time, logger *zap.Logger) (*SeedResult, error) {
	logger.Debug("Seeding session", zap.Time("week_start", weekStart))

	result := &SeedResult{}

	for _, seed := range cfg.SeedAssignments {
		for _, employeeID := range seed.Employees {
			if err := session.Assign(seed.Day, model.ShiftKey(seed.Shift), employeeID); err != nil {
				return nil, fmt.Errorf("failed to seed assignment for %s: %w", employeeID, err)
			}
			result.Assignments++
		}
	}

	for _, seed := range cfg.SeedSituations {
		sit := model.Situation{
			StartTime: seed.StartTime,
			EndTime:   seed.EndTime,
			Note:      seed.Note,
		}
		if err := session.SetSituation(seed.Day, model.ShiftKey(seed.Shift), seed.Employee, sit); err != nil {
			return nil, fmt.Errorf("failed to seed situation for %s: %w", seed.Employee, err)
		}
		result.Situations++
	}

	for i, recurring := range cfg.RecurringAssignments {
		dayIndices, err := matchWeekDays(recurring.RRule, weekStart)
		if err != nil {
			return nil, fmt.Errorf("failed to expand recurringAssignments[%d]: %w", i, err)
		}

		for _, dayIndex := range dayIndices {
			for _, employeeID := range recurring.Employees {
				if err := session.Assign(dayIndex, model.ShiftKey(recurring.Shift), employeeID); err != nil {
					return nil, fmt.Errorf("failed to apply recurringAssignments[%d]: %w", i, err)
				}
				result.Recurring++
			}
		}
	}

	logger.Info("Session seeded",
		zap.Int("assignments", result.Assignments),
		zap.Int("situations", result.Situations),
		zap.Int("recurring", result.Recurring))

	return result, nil
}

// matchWeekDays expands an rrule over the displayed week and maps each
// occurrence to its day index (0 = Monday)
func matchWeekDays(rruleStr string, weekStart time.Time) ([]int, error) {
	rule, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule: %w", err)
	}

	// Occurrence times come back in the rule's own timezone, so match on
	// calendar dates rather than instants
	indexByDate := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		indexByDate[weekStart.AddDate(0, 0, i).Format("2006-01-02")] = i
	}

	windowStart := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 0, 7).Add(-time.Second)

	var dayIndices []int
	for _, occurrence := range rule.Between(windowStart, windowEnd, true) {
		if dayIndex, ok := indexByDate[occurrence.Format("2006-01-02")]; ok {
			dayIndices = append(dayIndices, dayIndex)
		}
	}

	return dayIndices, nil
}
