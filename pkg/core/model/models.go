package model

// ShiftKey identifies one of the fixed shift types in the weekly grid
type ShiftKey string

const (
	ShiftMorning ShiftKey = "morning"
	ShiftEvening ShiftKey = "evening"
)

// Shift describes a shift type: its display label and canonical time window
type Shift struct {
	Key   ShiftKey
	Label string
	Start string // "08:00"
	End   string // "16:00"
}

// DefaultShifts returns the standard two-shift day used by the branches
func DefaultShifts() []Shift {
	return []Shift{
		{Key: ShiftMorning, Label: "Morning Shift", Start: "08:00", End: "16:00"},
		{Key: ShiftEvening, Label: "Evening Shift", Start: "16:00", End: "00:00"},
	}
}

// Rank is an employee's seniority level
type Rank string

const (
	RankSenior      Rank = "senior"
	RankExperienced Rank = "experienced"
	RankJunior      Rank = "junior"
)

func (r Rank) IsValid() bool {
	return r == RankSenior || r == RankExperienced || r == RankJunior
}

// Stars returns the seniority star count shown in the staff table
func (r Rank) Stars() int {
	switch r {
	case RankSenior:
		return 3
	case RankExperienced:
		return 2
	default:
		return 1
	}
}

func (r Rank) Label() string {
	switch r {
	case RankSenior:
		return "Senior Barista"
	case RankExperienced:
		return "Experienced Barista"
	default:
		return "Junior Barista"
	}
}

// ShiftRule is an employee's declared shift-type eligibility.
// It is advisory: schedulers see it next to the candidate, but assignment
// never enforces it.
type ShiftRule string

const (
	RuleMorningOnly      ShiftRule = "morning-only"
	RuleEveningOnly      ShiftRule = "evening-only"
	RuleMorningOrEvening ShiftRule = "morning-or-evening"
	RuleFlexible         ShiftRule = "flexible"
)

func (r ShiftRule) IsValid() bool {
	switch r {
	case RuleMorningOnly, RuleEveningOnly, RuleMorningOrEvening, RuleFlexible:
		return true
	}
	return false
}

func (r ShiftRule) Label() string {
	switch r {
	case RuleMorningOnly:
		return "Morning Shifts Only"
	case RuleEveningOnly:
		return "Evening Shifts Only"
	case RuleMorningOrEvening:
		return "Morning or Evening (No Nights)"
	default:
		return "Flexible (All Shifts)"
	}
}

// Employee represents one roster member
type Employee struct {
	ID   string
	Name string
	Rank Rank
	Role string    // display title, independent of Rank
	Rule ShiftRule // empty means flexible
}

// EffectiveRule resolves an unset rule to flexible
func (e Employee) EffectiveRule() ShiftRule {
	if e.Rule == "" {
		return RuleFlexible
	}
	return e.Rule
}

// Situation is a per-employee, per-slot schedule override ("special situation"):
// a custom start/end time and/or a free-text note
type Situation struct {
	StartTime string
	EndTime   string
	Note      string
}

// IsEmpty reports whether the situation carries no information.
// Empty situations are never stored.
func (s Situation) IsEmpty() bool {
	return s.StartTime == "" && s.EndTime == "" && s.Note == ""
}
