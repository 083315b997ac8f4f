package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/internal/config"
	"github.com/demlikcoffee/shift-planner/pkg/clients/notifier"
	"github.com/demlikcoffee/shift-planner/pkg/core/access"
	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
)

// AppContext holds the application dependencies shared across all commands.
// It also carries the per-process scheduling state: the displayed week and
// the session owning the assignment and situation stores.
type AppContext struct {
	Cfg      *config.Config
	Session  *schedule.Session
	Policy   *access.Policy
	Notifier *notifier.Client
	Logger   *zap.Logger
	Ctx      context.Context

	ActorName string
	ActorRole string
	WeekStart time.Time
}

// ReadOnly reports whether the displayed week is read-only for the actor
func (a *AppContext) ReadOnly() bool {
	return a.Policy.IsReadOnly(a.ActorRole, a.WeekStart, time.Now())
}

// RefreshAccess recomputes the session freeze flag. Call it after week
// navigation, so a session frozen on a past week thaws when the actor
// returns to the current week.
func (a *AppContext) RefreshAccess() {
	readOnly := a.ReadOnly()
	a.Session.SetFrozen(readOnly)

	a.Logger.Debug("Access recomputed",
		zap.String("actor_role", a.ActorRole),
		zap.Time("week_start", a.WeekStart),
		zap.Bool("read_only", readOnly))
}
