package cli

import (
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/config"
	"github.com/alexanderramin/atajados/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items      service.ItemService
	Units      service.UnitService
	Progress   service.ProgressService
	Milestones service.MilestoneService
	Photos     service.PhotoService
	Reports    service.ReportService
	Import     service.ImportService
	Export     service.ExportService

	Config     *config.Config
	ConfigPath string
	Logger     zerolog.Logger
	Metrics    prometheus.Gatherer

	// IsInteractive reports whether prompts and the TUI may be used.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) hoursPerDay() int {
	if a.Config == nil {
		return 0
	}
	return a.Config.HoursPerDay
}

// NewRootCmd creates the top-level "atajados" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// dashboard on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	var showMetrics bool

	root := &cobra.Command{
		Use:           "atajados",
		Short:         "Construction progress tracker for water reservoir units",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd.Context(), app)
			}
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.Logger.Debug().Str("command", cmd.CommandPath()).Strs("args", args).Msg("cli_command")
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !showMetrics || app.Metrics == nil {
				return nil
			}
			families, err := app.Metrics.Gather()
			if err != nil {
				return fmt.Errorf("gathering metrics: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatMetrics(families))
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "Print use-case metrics after the command")

	root.AddCommand(
		newItemCmd(app),
		newUnitCmd(app),
		newProgressCmd(app),
		newMilestoneCmd(app),
		newPhotoCmd(app),
		newStatusCmd(app),
		newSummaryCmd(app),
		newScheduleCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newDashboardCmd(app),
		newConfigCmd(app),
	)

	return root
}
