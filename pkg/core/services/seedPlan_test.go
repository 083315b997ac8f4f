package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/internal/config"
	"github.com/demlikcoffee/shift-planner/pkg/core/model"
	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
)

func TestSeedPlan_AppliesDefaultConfig(t *testing.T) {
	cfg := config.Default()
	session := schedule.NewSession(cfg.Employees(), cfg.ShiftSet(), zap.NewNop())
	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	result, err := SeedPlan(context.Background(), session, cfg, weekStart, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 19, result.Assignments)
	assert.Equal(t, 1, result.Situations)

	people, err := session.PeopleIn(0, model.ShiftMorning)
	require.NoError(t, err)
	ids := make([]string, len(people))
	for i, emp := range people {
		ids[i] = emp.ID
	}
	assert.Equal(t, []string{"tunay", "zeynep", "ekin"}, ids)

	sit, ok := session.Situation(3, model.ShiftEvening, "eren")
	require.True(t, ok)
	assert.Equal(t, "20:00", sit.StartTime)
	assert.Equal(t, "Has an exam", sit.Note)
}

func TestSeedPlan_Idempotent(t *testing.T) {
	cfg := config.Default()
	session := schedule.NewSession(cfg.Employees(), cfg.ShiftSet(), zap.NewNop())
	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	_, err := SeedPlan(ctx, session, cfg, weekStart, zap.NewNop())
	require.NoError(t, err)
	firstPlan, err := PublishPlan(ctx, session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	_, err = SeedPlan(ctx, session, cfg, weekStart, zap.NewNop())
	require.NoError(t, err)
	secondPlan, err := PublishPlan(ctx, session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, firstPlan.Message, secondPlan.Message)

	people, err := session.PeopleIn(0, model.ShiftMorning)
	require.NoError(t, err)
	assert.Len(t, people, 3)
}

func TestSeedPlan_RecurringAssignments(t *testing.T) {
	cfg := config.Default()
	cfg.RecurringAssignments = []config.RecurringAssignment{
		{
			// Every Wednesday morning
			RRule:     "FREQ=WEEKLY;DTSTART=20240103T080000Z;BYDAY=WE",
			Shift:     "morning",
			Employees: []string{"zeynep"},
		},
	}
	require.NoError(t, config.Validate(cfg))

	session := schedule.NewSession(cfg.Employees(), cfg.ShiftSet(), zap.NewNop())
	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	result, err := SeedPlan(context.Background(), session, cfg, weekStart, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Recurring)

	// 2024-11-13 is the Wednesday of that week (day index 2)
	people, err := session.PeopleIn(2, model.ShiftMorning)
	require.NoError(t, err)

	ids := make([]string, len(people))
	for i, emp := range people {
		ids[i] = emp.ID
	}
	assert.Contains(t, ids, "zeynep")
}

func TestSeedPlan_SituationForUnassignedEmployeeFails(t *testing.T) {
	cfg := config.Default()
	cfg.SeedSituations = []config.SeedSituation{
		{Day: 6, Shift: "morning", Employee: "gizem", Note: "not on this slot"},
	}

	session := schedule.NewSession(cfg.Employees(), cfg.ShiftSet(), zap.NewNop())
	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	_, err := SeedPlan(context.Background(), session, cfg, weekStart, zap.NewNop())
	assert.ErrorIs(t, err, schedule.ErrNotAssigned)
}
