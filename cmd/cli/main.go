package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/demlikcoffee/shift-planner/cmd/cli/commands"
	"github.com/demlikcoffee/shift-planner/internal/config"
	"github.com/demlikcoffee/shift-planner/pkg/clients/notifier"
	"github.com/demlikcoffee/shift-planner/pkg/core/access"
	"github.com/demlikcoffee/shift-planner/pkg/core/schedule"
	"github.com/demlikcoffee/shift-planner/pkg/core/services"
	"github.com/demlikcoffee/shift-planner/pkg/core/week"
	"github.com/demlikcoffee/shift-planner/pkg/utils/logging"
)

var (
	env        string
	configPath string
	actorName  string
	actorRole  string
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shift-planner",
		Short: "Demlik Coffee Shift Planner - Weekly shift scheduling for the branches",
		Long:  `A CLI tool for planning weekly shifts: assigning staff to morning and evening slots, tracking special situations, and publishing the plan to the team.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment name used for log files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: shift_planner_config.yaml lookup)")
	rootCmd.PersistentFlags().StringVar(&actorName, "actor-name", "", "Name of the acting user")
	rootCmd.PersistentFlags().StringVar(&actorRole, "actor-role", "", "Role of the acting user (required)")
	rootCmd.MarkPersistentFlagRequired("actor-role")

	// Add all commands
	rootCmd.AddCommand(commands.ShowWeekCmd(appRef()))
	rootCmd.AddCommand(commands.AssignCmd(appRef()))
	rootCmd.AddCommand(commands.UnassignCmd(appRef()))
	rootCmd.AddCommand(commands.SetSituationCmd(appRef()))
	rootCmd.AddCommand(commands.ClearSituationCmd(appRef()))
	rootCmd.AddCommand(commands.PublishPlanCmd(appRef()))
	rootCmd.AddCommand(commands.ListStaffCmd(appRef()))
	rootCmd.AddCommand(commands.PrevWeekCmd(appRef()))
	rootCmd.AddCommand(commands.NextWeekCmd(appRef()))
	rootCmd.AddCommand(commands.GoWeekCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating the empty shell the
// commands close over. It is filled in by initApp before any RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, policy, and the scheduling session
func initApp() error {
	a := appRef()
	a.Ctx = context.Background()

	// Initialize logger
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.Logger = logger

	a.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	a.Logger.Info("Loading configuration")
	switch {
	case configPath != "":
		a.Cfg, err = config.LoadFromPath(configPath)
	default:
		a.Cfg, err = config.Load()
		if err != nil {
			a.Logger.Info("No config file found, using built-in demo configuration")
			a.Cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Logger.Debug("Configuration loaded successfully",
		zap.Int("roster_size", len(a.Cfg.Roster)),
		zap.Int("shift_count", len(a.Cfg.Shifts)))

	// Resolve the acting user
	a.ActorRole = actorRole
	a.ActorName = actorName
	if a.ActorName == "" {
		a.ActorName = a.ActorRole
	}

	// Initialize access policy and the scheduling session for the current week
	a.Policy = access.NewPolicy(a.Cfg.PrivilegedRoles)
	a.WeekStart = week.StartOfWeek(time.Now())
	a.Session = schedule.NewSession(a.Cfg.Employees(), a.Cfg.ShiftSet(), a.Logger)

	a.Logger.Info("Seeding session from config", zap.Time("week_start", a.WeekStart))
	if _, err := services.SeedPlan(a.Ctx, a.Session, a.Cfg, a.WeekStart, a.Logger); err != nil {
		return fmt.Errorf("failed to seed session: %w", err)
	}

	// Notifier delivers publish announcements to stdout
	a.Notifier = notifier.NewClient(os.Stdout, a.Logger)

	a.RefreshAccess()
	a.Logger.Info("Session initialized",
		zap.String("actor", a.ActorName),
		zap.String("actor_role", a.ActorRole),
		zap.Bool("read_only", a.ReadOnly()))

	return nil
}
