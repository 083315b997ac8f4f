package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit(t *testing.T) {
	policy := NewPolicy([]string{"Manager", "Senior Barista"})

	assert.True(t, policy.CanEdit("Manager"))
	assert.True(t, policy.CanEdit("Senior Barista"))
	assert.False(t, policy.CanEdit("Junior Barista"))
	assert.False(t, policy.CanEdit(""))
}

func TestIsReadOnly(t *testing.T) {
	policy := NewPolicy([]string{"Manager", "Senior Barista"})

	now := time.Date(2024, 11, 14, 10, 0, 0, 0, time.UTC) // Thursday
	currentMonday := time.Date(2024, 11, 11, 0, 0, 0, 0, time.UTC)
	lastMonday := currentMonday.AddDate(0, 0, -7)
	nextMonday := currentMonday.AddDate(0, 0, 7)

	tests := []struct {
		name      string
		role      string
		weekStart time.Time
		want      bool
	}{
		{"manager on current week may edit", "Manager", currentMonday, false},
		{"senior barista on current week may edit", "Senior Barista", currentMonday, false},
		{"unprivileged role is read-only even on the current week", "Junior Barista", currentMonday, true},
		{"past week is read-only even for a manager", "Manager", lastMonday, true},
		{"future week is read-only even for a manager", "Manager", nextMonday, true},
		{"past week and unprivileged role", "Junior Barista", lastMonday, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsReadOnly(tt.role, tt.weekStart, now))
		})
	}
}
