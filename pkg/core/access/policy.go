package access

import (
	"time"

	"github.com/demlikcoffee/shift-planner/pkg/core/week"
)

// Policy decides whether the displayed week's grid is editable for an actor.
// Only privileged roles may edit, and only the current week is ever editable;
// past and future weeks are read-only for everyone.
type Policy struct {
	privileged map[string]struct{}
}

// NewPolicy creates a policy from the set of roles allowed to edit
func NewPolicy(privilegedRoles []string) *Policy {
	p := &Policy{privileged: make(map[string]struct{}, len(privilegedRoles))}
	for _, role := range privilegedRoles {
		p.privileged[role] = struct{}{}
	}
	return p
}

// CanEdit reports whether the actor's role is in the privileged set
func (p *Policy) CanEdit(actorRole string) bool {
	_, ok := p.privileged[actorRole]
	return ok
}

// IsReadOnly reports whether the grid for the given week is read-only
// for the actor at the given time
func (p *Policy) IsReadOnly(actorRole string, weekStart, now time.Time) bool {
	return !p.CanEdit(actorRole) || !week.IsCurrentWeek(weekStart, now)
}
