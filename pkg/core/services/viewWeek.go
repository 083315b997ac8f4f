package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/model"
	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
	"github.com/demlikcoffee/shift-planner/pkg/core/week"
)

// WeekDay describes one column of the weekly grid
type WeekDay struct {
	Index int
	Label string // "Mon".."Sun"
	Date  time.Time
}

// WeekCell describes one (day, shift) cell: the assigned team and any
// special situations keyed by employee id
type WeekCell struct {
	Day        WeekDay
	Shift      model.Shift
	People     []model.Employee
	Situations map[string]model.Situation
}

// WeekRow groups a shift's cells across the week
type WeekRow struct {
	Shift model.Shift
	Cells []WeekCell
}

// WeekView is the read model the presentation layer renders. It is built
// through the session's read operations only and never aliases the
// session's internal state.
type WeekView struct {
	WeekStart time.Time
	Range     string
	Days      []WeekDay
	Rows      []WeekRow
	ReadOnly  bool
}

// BuildWeekView assembles the full weekly grid for display
func BuildWeekView(ctx context.Context, session *schedule.Session, weekStart time.Time, readOnly bool, logger *zap.Logger) (*WeekView, error) {
	logger.Debug("Building week view",
		zap.Time("week_start", weekStart),
		zap.Bool("read_only", readOnly))

	days := make([]WeekDay, 7)
	for i := range days {
		date := week.Day(weekStart, i)
		days[i] = WeekDay{Index: i, Label: week.DayLabel(date), Date: date}
	}

	rows := make([]WeekRow, 0, len(session.Shifts()))
	for _, shift := range session.Shifts() {
		row := WeekRow{Shift: shift, Cells: make([]WeekCell, 0, 7)}

		for _, day := range days {
			people, err := session.PeopleIn(day.Index, shift.Key)
			if err != nil {
				return nil, fmt.Errorf("failed to read slot (%d, %s): %w", day.Index, shift.Key, err)
			}

			cell := WeekCell{
				Day:        day,
				Shift:      shift,
				People:     people,
				Situations: make(map[string]model.Situation),
			}
			for _, emp := range people {
				if sit, ok := session.Situation(day.Index, shift.Key, emp.ID); ok {
					cell.Situations[emp.ID] = sit
				}
			}

			row.Cells = append(row.Cells, cell)
		}

		rows = append(rows, row)
	}

	return &WeekView{
		WeekStart: weekStart,
		Range:     week.FormatWeekRange(weekStart),
		Days:      days,
		Rows:      rows,
		ReadOnly:  readOnly,
	}, nil
}
