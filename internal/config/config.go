package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/demlikcoffee/shift-planner/pkg/core/model"
)

// ShiftDefinition configures one shift type of the weekly grid
type ShiftDefinition struct {
	Key   string `yaml:"key" validate:"required"`
	Label string `yaml:"label" validate:"required"`
	Start string `yaml:"start" validate:"required"`
	End   string `yaml:"end" validate:"required"`
}

// RosterEntry configures one employee
type RosterEntry struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required"`
	Rank string `yaml:"rank" validate:"required,oneof=senior experienced junior"`
	Role string `yaml:"role" validate:"required"`
	Rule string `yaml:"rule,omitempty" validate:"omitempty,oneof=morning-only evening-only morning-or-evening flexible"`
}

// SeedAssignment pre-populates one slot when a scheduling session starts
type SeedAssignment struct {
	Day       int      `yaml:"day" validate:"min=0,max=6"`
	Shift     string   `yaml:"shift" validate:"required"`
	Employees []string `yaml:"employees" validate:"required,min=1"`
}

// SeedSituation pre-populates one special situation. The employee must be
// seeded into the same slot by a SeedAssignment.
type SeedSituation struct {
	Day       int    `yaml:"day" validate:"min=0,max=6"`
	Shift     string `yaml:"shift" validate:"required"`
	Employee  string `yaml:"employee" validate:"required"`
	StartTime string `yaml:"startTime,omitempty"`
	EndTime   string `yaml:"endTime,omitempty"`
	Note      string `yaml:"note,omitempty"`
}

// RecurringAssignment pins employees to a shift on every weekday the rrule
// matches within the displayed week
type RecurringAssignment struct {
	RRule     string   `yaml:"rrule" validate:"required"`
	Shift     string   `yaml:"shift" validate:"required"`
	Employees []string `yaml:"employees" validate:"required,min=1"`
}

// Config represents the application configuration
type Config struct {
	Shifts               []ShiftDefinition     `yaml:"shifts" validate:"required,min=1,dive"`
	Roster               []RosterEntry         `yaml:"roster" validate:"required,min=1,dive"`
	PrivilegedRoles      []string              `yaml:"privilegedRoles" validate:"required,min=1"`
	SeedAssignments      []SeedAssignment      `yaml:"seedAssignments,omitempty" validate:"dive"`
	SeedSituations       []SeedSituation       `yaml:"seedSituations,omitempty" validate:"dive"`
	RecurringAssignments []RecurringAssignment `yaml:"recurringAssignments,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shift_planner_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and its cross-references:
// roster ids must be unique, seeds must name known shifts and employees,
// time windows must parse, and rrules must be syntactically valid.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	shiftKeys := make(map[string]bool, len(cfg.Shifts))
	for i, shift := range cfg.Shifts {
		if shiftKeys[shift.Key] {
			return fmt.Errorf("duplicate shift key %q in shifts[%d]", shift.Key, i)
		}
		shiftKeys[shift.Key] = true

		if err := validateClock(shift.Start); err != nil {
			return fmt.Errorf("invalid start time in shifts[%d]: %w", i, err)
		}
		if err := validateClock(shift.End); err != nil {
			return fmt.Errorf("invalid end time in shifts[%d]: %w", i, err)
		}
	}

	employeeIDs := make(map[string]bool, len(cfg.Roster))
	for i, entry := range cfg.Roster {
		if employeeIDs[entry.ID] {
			return fmt.Errorf("duplicate employee id %q in roster[%d]", entry.ID, i)
		}
		employeeIDs[entry.ID] = true
	}

	for i, seed := range cfg.SeedAssignments {
		if !shiftKeys[seed.Shift] {
			return fmt.Errorf("unknown shift key %q in seedAssignments[%d]", seed.Shift, i)
		}
		for _, id := range seed.Employees {
			if !employeeIDs[id] {
				return fmt.Errorf("unknown employee id %q in seedAssignments[%d]", id, i)
			}
		}
	}

	for i, seed := range cfg.SeedSituations {
		if !shiftKeys[seed.Shift] {
			return fmt.Errorf("unknown shift key %q in seedSituations[%d]", seed.Shift, i)
		}
		if !employeeIDs[seed.Employee] {
			return fmt.Errorf("unknown employee id %q in seedSituations[%d]", seed.Employee, i)
		}
		if seed.StartTime != "" {
			if err := validateClock(seed.StartTime); err != nil {
				return fmt.Errorf("invalid start time in seedSituations[%d]: %w", i, err)
			}
		}
		if seed.EndTime != "" {
			if err := validateClock(seed.EndTime); err != nil {
				return fmt.Errorf("invalid end time in seedSituations[%d]: %w", i, err)
			}
		}
	}

	for i, recurring := range cfg.RecurringAssignments {
		if _, err := rrule.StrToRRule(recurring.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringAssignments[%d]: %w", i, err)
		}
		if !shiftKeys[recurring.Shift] {
			return fmt.Errorf("unknown shift key %q in recurringAssignments[%d]", recurring.Shift, i)
		}
		for _, id := range recurring.Employees {
			if !employeeIDs[id] {
				return fmt.Errorf("unknown employee id %q in recurringAssignments[%d]", id, i)
			}
		}
	}

	return nil
}

// ShiftSet converts the configured shift definitions to domain shifts,
// preserving their configured order
func (c *Config) ShiftSet() []model.Shift {
	shifts := make([]model.Shift, len(c.Shifts))
	for i, def := range c.Shifts {
		shifts[i] = model.Shift{
			Key:   model.ShiftKey(def.Key),
			Label: def.Label,
			Start: def.Start,
			End:   def.End,
		}
	}
	return shifts
}

// Employees converts the configured roster entries to domain employees
func (c *Config) Employees() []model.Employee {
	employees := make([]model.Employee, len(c.Roster))
	for i, entry := range c.Roster {
		employees[i] = model.Employee{
			ID:   entry.ID,
			Name: entry.Name,
			Rank: model.Rank(entry.Rank),
			Role: entry.Role,
			Rule: model.ShiftRule(entry.Rule),
		}
	}
	return employees
}

// Default returns the built-in demo configuration used when no config file
// is present: the standard two-shift day, the demo roster, and the demo
// week's seed plan.
func Default() *Config {
	return &Config{
		Shifts: []ShiftDefinition{
			{Key: "morning", Label: "Morning Shift", Start: "08:00", End: "16:00"},
			{Key: "evening", Label: "Evening Shift", Start: "16:00", End: "00:00"},
		},
		Roster: []RosterEntry{
			{ID: "tunay", Name: "Tunay Kudun", Rank: "senior", Role: "Manager", Rule: "flexible"},
			{ID: "umut", Name: "Umut Alitkan", Rank: "senior", Role: "Senior Barista", Rule: "morning-or-evening"},
			{ID: "zeynep", Name: "Zeynep Soysal", Rank: "experienced", Role: "Experienced Barista", Rule: "flexible"},
			{ID: "nur", Name: "Nur Ozkan", Rank: "experienced", Role: "Experienced Barista", Rule: "morning-only"},
			{ID: "ekin", Name: "Ekin Yaganak", Rank: "junior", Role: "Junior Barista", Rule: "flexible"},
			{ID: "tugra", Name: "Tugra Guneysi", Rank: "junior", Role: "Junior Barista", Rule: "morning-only"},
			{ID: "eren", Name: "Eren Sen", Rank: "junior", Role: "Junior Barista", Rule: "flexible"},
			{ID: "ezel", Name: "Ezel Beycioglu", Rank: "junior", Role: "Junior Barista", Rule: "evening-only"},
			{ID: "gizem", Name: "Gizem Yildiz", Rank: "junior", Role: "Junior Barista", Rule: "flexible"},
		},
		PrivilegedRoles: []string{"Manager", "Senior Barista"},
		SeedAssignments: []SeedAssignment{
			{Day: 0, Shift: "morning", Employees: []string{"tunay", "zeynep", "ekin"}},
			{Day: 0, Shift: "evening", Employees: []string{"umut", "eren"}},
			{Day: 1, Shift: "morning", Employees: []string{"nur", "tugra"}},
			{Day: 2, Shift: "morning", Employees: []string{"tunay", "gizem"}},
			{Day: 3, Shift: "evening", Employees: []string{"zeynep", "eren", "ezel"}},
			{Day: 4, Shift: "morning", Employees: []string{"ekin", "umut"}},
			{Day: 5, Shift: "morning", Employees: []string{"umut", "nur"}},
			{Day: 6, Shift: "evening", Employees: []string{"tunay", "ekin", "tugra"}},
		},
		SeedSituations: []SeedSituation{
			{Day: 3, Shift: "evening", Employee: "eren", StartTime: "20:00", Note: "Has an exam"},
		},
	}
}

// validateClock checks a 24-hour "HH:MM" clock value
func validateClock(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("invalid clock value %q: %w", value, err)
	}
	return nil
}

// findConfigFile searches for shift_planner_config.yaml in the current
// directory and the home directory
func findConfigFile() (string, error) {
	configFileName := "shift_planner_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
