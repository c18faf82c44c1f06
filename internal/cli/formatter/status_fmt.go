package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/atajados/internal/contract"
)

const statusProgressBarWidth = 24

// FormatDashboard renders unit counts by status and overall progress.
func FormatDashboard(v *contract.DashboardView) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n\n", Bold("Project progress"), RenderProgress(v.ProjectProgress, statusProgressBarWidth)))

	headers := []string{"UNITS", "COUNT"}
	rows := [][]string{
		{"Total", Bold(fmt.Sprintf("%d", v.TotalUnits))},
		{StyleGreen.Render("Ejecutado"), fmt.Sprintf("%d", v.ExecutedUnits)},
		{StyleYellow.Render("En ejecución"), fmt.Sprintf("%d", v.InProgressUnits)},
		{StyleDim.Render("Pendiente"), fmt.Sprintf("%d", v.PendingUnits)},
	}
	b.WriteString(RenderTable(headers, rows, 1))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("budget:"), Bold(Money(v.TotalCost)),
		Dim("executed:"), Bold(Money(v.ExecutedCost))))
	return b.String()
}

// FormatSummary renders the per-unit summary. now anchors relative dates.
func FormatSummary(rows []contract.UnitSummary, now time.Time) string {
	if len(rows) == 0 {
		return Dim("No units found.") + "\n"
	}

	headers := []string{"UNIT", "STATUS", "LAST RECORD", "", "PROGRESS"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		last, rel := Dim("--"), ""
		if r.LastRecorded != nil {
			last = DateOrDash(r.LastRecorded)
			rel = Dim(RelativeDateFrom(*r.LastRecorded, now))
		}
		out = append(out, []string{
			r.Label,
			StatusIndicator(r.Unit.Status),
			last,
			rel,
			RenderProgress(r.Progress, 12),
		})
	}
	return RenderTable(headers, out)
}

// FormatImportResult renders a one-line import confirmation.
func FormatImportResult(r *contract.ImportResult) string {
	return fmt.Sprintf("%s imported %s %s from %s\n",
		StyleGreen.Render("✔"), Bold(fmt.Sprintf("%d", r.Created)), r.Kind, Dim(r.Source))
}
