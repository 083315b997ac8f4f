package schedule

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/pkg/core/model"
)

var (
	// ErrInvalidSlot marks a day index or shift key outside the configured grid
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrNotAssigned marks a situation edit for an employee not assigned to the slot
	ErrNotAssigned = errors.New("employee not assigned to slot")
)

// slotKey identifies a (day, shift) cell in the weekly grid
type slotKey struct {
	day   int
	shift model.ShiftKey
}

// Session owns one week's worth of shift assignments and special situations.
// It is created per scheduling session, mutated synchronously through its
// methods, and never persisted. A frozen session refuses all mutations.
type Session struct {
	roster     []model.Employee
	rosterByID map[string]model.Employee

	shifts      []model.Shift
	shiftsByKey map[model.ShiftKey]model.Shift
	shiftOrder  map[model.ShiftKey]int

	assignments map[slotKey][]string
	situations  map[slotKey]map[string]model.Situation

	frozen bool
	logger *zap.Logger
}

// NewSession creates an empty session over the given roster and shift set.
// The shift set is fixed for the lifetime of the session.
func NewSession(roster []model.Employee, shifts []model.Shift, logger *zap.Logger) *Session {
	s := &Session{
		roster:      roster,
		rosterByID:  make(map[string]model.Employee, len(roster)),
		shifts:      shifts,
		shiftsByKey: make(map[model.ShiftKey]model.Shift, len(shifts)),
		shiftOrder:  make(map[model.ShiftKey]int, len(shifts)),
		assignments: make(map[slotKey][]string),
		situations:  make(map[slotKey]map[string]model.Situation),
		logger:      logger,
	}

	for _, emp := range roster {
		s.rosterByID[emp.ID] = emp
	}
	for i, shift := range shifts {
		s.shiftsByKey[shift.Key] = shift
		s.shiftOrder[shift.Key] = i
	}

	return s
}

// Roster returns a copy of the session's roster in its configured order.
// Mutating the returned slice does not affect the session.
func (s *Session) Roster() []model.Employee {
	return slices.Clone(s.roster)
}

// Shifts returns a copy of the session's shift set in its configured order
func (s *Session) Shifts() []model.Shift {
	return slices.Clone(s.shifts)
}

// Shift looks up a shift definition by key
func (s *Session) Shift(key model.ShiftKey) (model.Shift, bool) {
	shift, ok := s.shiftsByKey[key]
	return shift, ok
}

// SetFrozen marks the session read-only (or editable again). Frozen sessions
// refuse every mutation with a log line instead of an error, so the
// presentation layer stays simple.
func (s *Session) SetFrozen(frozen bool) {
	s.frozen = frozen
}

// Frozen reports whether the session is read-only
func (s *Session) Frozen() bool {
	return s.frozen
}

func (s *Session) validateSlot(dayIndex int, shift model.ShiftKey) error {
	if dayIndex < 0 || dayIndex > 6 {
		return fmt.Errorf("%w: day index %d out of range [0,6]", ErrInvalidSlot, dayIndex)
	}
	if _, ok := s.shiftsByKey[shift]; !ok {
		return fmt.Errorf("%w: unknown shift key %q", ErrInvalidSlot, shift)
	}
	return nil
}

func (s *Session) refuseIfFrozen(op string, dayIndex int, shift model.ShiftKey, employeeID string) bool {
	if !s.frozen {
		return false
	}
	s.logger.Warn("Mutation refused: session is read-only",
		zap.String("op", op),
		zap.Int("day_index", dayIndex),
		zap.String("shift", string(shift)),
		zap.String("employee_id", employeeID))
	return true
}

// Assign adds the employee to the slot's team. Adding an employee who is
// already assigned is a no-op.
func (s *Session) Assign(dayIndex int, shift model.ShiftKey, employeeID string) error {
	if err := s.validateSlot(dayIndex, shift); err != nil {
		return err
	}
	if s.refuseIfFrozen("assign", dayIndex, shift, employeeID) {
		return nil
	}

	k := slotKey{day: dayIndex, shift: shift}
	for _, id := range s.assignments[k] {
		if id == employeeID {
			return nil
		}
	}
	s.assignments[k] = append(s.assignments[k], employeeID)

	s.logger.Debug("Employee assigned",
		zap.Int("day_index", dayIndex),
		zap.String("shift", string(shift)),
		zap.String("employee_id", employeeID))
	return nil
}

// Unassign removes the employee from the slot's team. Removing an absent
// employee is a no-op. Any special situation for the pair is deleted with
// the assignment.
func (s *Session) Unassign(dayIndex int, shift model.ShiftKey, employeeID string) error {
	if err := s.validateSlot(dayIndex, shift); err != nil {
		return err
	}
	if s.refuseIfFrozen("unassign", dayIndex, shift, employeeID) {
		return nil
	}

	k := slotKey{day: dayIndex, shift: shift}
	ids := s.assignments[k]
	for i, id := range ids {
		if id == employeeID {
			s.assignments[k] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(s.assignments[k]) == 0 {
		delete(s.assignments, k)
	}

	// A situation must never outlive the assignment it annotates
	s.deleteSituation(k, employeeID)
	return nil
}

// PeopleIn resolves the slot's assigned employee ids to roster records,
// preserving assignment order. Ids that no longer resolve are dropped.
func (s *Session) PeopleIn(dayIndex int, shift model.ShiftKey) ([]model.Employee, error) {
	if err := s.validateSlot(dayIndex, shift); err != nil {
		return nil, err
	}

	k := slotKey{day: dayIndex, shift: shift}
	people := make([]model.Employee, 0, len(s.assignments[k]))
	for _, id := range s.assignments[k] {
		if emp, ok := s.rosterByID[id]; ok {
			people = append(people, emp)
		}
	}
	return people, nil
}

// EligibleFor returns the roster members not yet assigned to the slot,
// in roster order. Shift-eligibility rules are advisory context for the
// scheduler and deliberately do not filter this list.
func (s *Session) EligibleFor(dayIndex int, shift model.ShiftKey) ([]model.Employee, error) {
	if err := s.validateSlot(dayIndex, shift); err != nil {
		return nil, err
	}

	k := slotKey{day: dayIndex, shift: shift}
	assigned := make(map[string]struct{}, len(s.assignments[k]))
	for _, id := range s.assignments[k] {
		assigned[id] = struct{}{}
	}

	eligible := make([]model.Employee, 0, len(s.roster))
	for _, emp := range s.roster {
		if _, ok := assigned[emp.ID]; !ok {
			eligible = append(eligible, emp)
		}
	}
	return eligible, nil
}

// SetSituation records a special situation for an employee on a slot they
// are assigned to. A situation with no start time, end time, or note is
// pruned rather than stored.
func (s *Session) SetSituation(dayIndex int, shift model.ShiftKey, employeeID string, sit model.Situation) error {
	if err := s.validateSlot(dayIndex, shift); err != nil {
		return err
	}
	if s.refuseIfFrozen("setSituation", dayIndex, shift, employeeID) {
		return nil
	}

	k := slotKey{day: dayIndex, shift: shift}
	if !s.isAssigned(k, employeeID) {
		return fmt.Errorf("%w: %s is not on day %d %s", ErrNotAssigned, employeeID, dayIndex, shift)
	}

	if sit.IsEmpty() {
		s.deleteSituation(k, employeeID)
		return nil
	}

	if s.situations[k] == nil {
		s.situations[k] = make(map[string]model.Situation)
	}
	s.situations[k][employeeID] = sit

	s.logger.Debug("Situation recorded",
		zap.Int("day_index", dayIndex),
		zap.String("shift", string(shift)),
		zap.String("employee_id", employeeID))
	return nil
}

// ClearSituation removes the employee's situation for the slot, if any
func (s *Session) ClearSituation(dayIndex int, shift model.ShiftKey, employeeID string) error {
	if err := s.validateSlot(dayIndex, shift); err != nil {
		return err
	}
	if s.refuseIfFrozen("clearSituation", dayIndex, shift, employeeID) {
		return nil
	}

	s.deleteSituation(slotKey{day: dayIndex, shift: shift}, employeeID)
	return nil
}

// HasSituation reports whether a situation exists for the pair
func (s *Session) HasSituation(dayIndex int, shift model.ShiftKey, employeeID string) bool {
	_, ok := s.Situation(dayIndex, shift, employeeID)
	return ok
}

// Situation returns the employee's situation for the slot, if present
func (s *Session) Situation(dayIndex int, shift model.ShiftKey, employeeID string) (model.Situation, bool) {
	sit, ok := s.situations[slotKey{day: dayIndex, shift: shift}][employeeID]
	return sit, ok
}

func (s *Session) isAssigned(k slotKey, employeeID string) bool {
	for _, id := range s.assignments[k] {
		if id == employeeID {
			return true
		}
	}
	return false
}

func (s *Session) deleteSituation(k slotKey, employeeID string) {
	if perEmployee, ok := s.situations[k]; ok {
		delete(perEmployee, employeeID)
		if len(perEmployee) == 0 {
			delete(s.situations, k)
		}
	}
}

// SituationEntry pairs a slot and employee with their recorded situation
type SituationEntry struct {
	DayIndex  int
	Shift     model.Shift
	Employee  model.Employee
	Situation model.Situation
}

// Situations returns every recorded situation, sorted by day index, then
// configured shift order, then employee id. The order is stable so that
// anything rendered from it is deterministic.
func (s *Session) Situations() []SituationEntry {
	var entries []SituationEntry
	for k, perEmployee := range s.situations {
		for id, sit := range perEmployee {
			emp, ok := s.rosterByID[id]
			if !ok {
				continue
			}
			entries = append(entries, SituationEntry{
				DayIndex:  k.day,
				Shift:     s.shiftsByKey[k.shift],
				Employee:  emp,
				Situation: sit,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DayIndex != entries[j].DayIndex {
			return entries[i].DayIndex < entries[j].DayIndex
		}
		if entries[i].Shift.Key != entries[j].Shift.Key {
			return s.shiftOrder[entries[i].Shift.Key] < s.shiftOrder[entries[j].Shift.Key]
		}
		return entries[i].Employee.ID < entries[j].Employee.ID
	})

	return entries
}
