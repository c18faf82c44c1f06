package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	defaultGanttWidth = 40
	// ganttTableWidth approximates the table columns left of the bars.
	ganttTableWidth = 90
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show project progress and unit counts by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Reports.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(view))
			return nil
		},
	}
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show per-unit progress, most recently recorded first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Reports.UnitSummaries(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(rows, domain.Today()))
			return nil
		},
	}
}

func newScheduleCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"gantt"},
		Short:   "Show the schedule derived from milestones and work intervals",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Reports.Schedule(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = ganttBarWidth(app)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGantt(view, app.hoursPerDay(), width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Bar width in columns (default from config or terminal)")

	return cmd
}

// ganttBarWidth prefers the configured width, then what is left of the
// terminal after the table columns.
func ganttBarWidth(app *App) int {
	if app.Config != nil && app.Config.GanttWidth > 0 {
		return app.Config.GanttWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= ganttTableWidth {
		return defaultGanttWidth
	}
	return max(w-ganttTableWidth, defaultGanttWidth/2)
}
