package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/model"
	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
)

func publishTestSession(t *testing.T) *schedule.Session {
	t.Helper()

	roster := []model.Employee{
		{ID: "alice", Name: "Alice Aydin", Rank: model.RankSenior, Role: "Manager"},
		{ID: "bob", Name: "Bob Bulut", Rank: model.RankExperienced, Role: "Experienced Barista"},
		{ID: "carol", Name: "Carol Celik", Rank: model.RankJunior, Role: "Junior Barista"},
	}
	return schedule.NewSession(roster, model.DefaultShifts(), zap.NewNop())
}

func TestPublishPlan_BaseSentenceOnly(t *testing.T) {
	session := publishTestSession(t)
	require.NoError(t, session.Assign(0, model.ShiftMorning, "alice"))

	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	plan, err := PublishPlan(context.Background(), session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "11 - 17 November 2024", plan.WeekRange)
	assert.Equal(t, 0, plan.NoteCount)
	assert.Contains(t, plan.Message, "Manager has published a new plan for the week of (11 - 17 November 2024)")
	assert.NotContains(t, plan.Message, "Important notes")
}

func TestPublishPlan_Deterministic(t *testing.T) {
	session := publishTestSession(t)
	require.NoError(t, session.Assign(1, model.ShiftEvening, "bob"))
	require.NoError(t, session.Assign(4, model.ShiftMorning, "carol"))
	require.NoError(t, session.SetSituation(1, model.ShiftEvening, "bob", model.Situation{StartTime: "20:00", Note: "Has an exam"}))
	require.NoError(t, session.SetSituation(4, model.ShiftMorning, "carol", model.Situation{Note: "Doctor's appointment"}))

	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	first, err := PublishPlan(context.Background(), session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)
	second, err := PublishPlan(context.Background(), session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, 2, first.NoteCount)
}

func TestPublishPlan_AddingOneSituationAddsOneClause(t *testing.T) {
	session := publishTestSession(t)
	require.NoError(t, session.Assign(1, model.ShiftEvening, "bob"))
	require.NoError(t, session.Assign(4, model.ShiftMorning, "carol"))
	require.NoError(t, session.SetSituation(1, model.ShiftEvening, "bob", model.Situation{StartTime: "20:00"}))

	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	before, err := PublishPlan(ctx, session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, session.SetSituation(4, model.ShiftMorning, "carol", model.Situation{Note: "leaves early"}))

	after, err := PublishPlan(ctx, session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, before.NoteCount+1, after.NoteCount)
	assert.Equal(t, strings.Count(before.Message, ";")+1, strings.Count(after.Message, ";"))
	assert.Contains(t, after.Message, "Carol Celik, on Fri")
	assert.NotContains(t, before.Message, "Carol Celik")
}

func TestPublishPlan_ClauseContent(t *testing.T) {
	session := publishTestSession(t)
	require.NoError(t, session.Assign(1, model.ShiftEvening, "bob"))
	require.NoError(t, session.SetSituation(1, model.ShiftEvening, "bob", model.Situation{StartTime: "20:00", Note: "Has an exam"}))

	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	plan, err := PublishPlan(context.Background(), session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	assert.Contains(t, plan.Message, "Important notes: Bob Bulut, on Tue will start their shift at 20:00 (Has an exam).")
}

func TestPublishPlan_DefaultsToShiftStart(t *testing.T) {
	session := publishTestSession(t)
	require.NoError(t, session.Assign(2, model.ShiftEvening, "carol"))
	require.NoError(t, session.SetSituation(2, model.ShiftEvening, "carol", model.Situation{Note: "covering the till"}))

	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	plan, err := PublishPlan(context.Background(), session, weekStart, "Senior Barista", zap.NewNop())
	require.NoError(t, err)

	// No start-time override, so the clause uses the evening shift's canonical start
	assert.Contains(t, plan.Message, "Carol Celik, on Wed will start their shift at 16:00 (covering the till)")
}

func TestPublishPlan_ClausesSortedByDayShiftEmployee(t *testing.T) {
	session := publishTestSession(t)
	require.NoError(t, session.Assign(3, model.ShiftMorning, "carol"))
	require.NoError(t, session.Assign(0, model.ShiftEvening, "bob"))
	require.NoError(t, session.Assign(0, model.ShiftMorning, "alice"))

	// Insert out of order; the composer must still emit day 0 morning first
	require.NoError(t, session.SetSituation(3, model.ShiftMorning, "carol", model.Situation{Note: "x"}))
	require.NoError(t, session.SetSituation(0, model.ShiftEvening, "bob", model.Situation{Note: "y"}))
	require.NoError(t, session.SetSituation(0, model.ShiftMorning, "alice", model.Situation{Note: "z"}))

	weekStart := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)

	plan, err := PublishPlan(context.Background(), session, weekStart, "Manager", zap.NewNop())
	require.NoError(t, err)

	alicePos := strings.Index(plan.Message, "Alice Aydin")
	bobPos := strings.Index(plan.Message, "Bob Bulut")
	carolPos := strings.Index(plan.Message, "Carol Celik")
	require.True(t, alicePos > 0 && bobPos > 0 && carolPos > 0)
	assert.Less(t, alicePos, bobPos)
	assert.Less(t, bobPos, carolPos)
}
