package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/schedule"
)

const (
	minGanttWidth = 10
	barChar       = '━'
	milestoneChar = '◆'
	todayChar     = '┊'
	activityWidth = 36
)

// FormatGantt renders the schedule as a table with one ASCII bar per task
// over the view window, marking today when it falls inside the window.
func FormatGantt(v *contract.ScheduleView, hoursPerDay, barWidth int) string {
	if !v.HasWindow() {
		return Dim("No scheduled tasks.") + "\n"
	}
	barWidth = max(barWidth, minGanttWidth)

	headers := []string{"#", "ACTIVITY", "HOURS", "START", "END", "DAYS", v.From.Format(domain.DateLayout)}
	rows := make([][]string, 0, len(v.Sorted))
	for i, t := range v.Sorted {
		name := Truncate(t.Label, activityWidth)
		if t.IsMilestone() {
			name = StylePurple.Render(name)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			name,
			fmt.Sprintf("%d", t.Hours(hoursPerDay)),
			t.Start.Format(domain.DateLayout),
			t.End.Format(domain.DateLayout),
			fmt.Sprintf("%d", t.Days()),
			ganttBar(t, v.From, v.To, v.Today, barWidth),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 2, 5))
	b.WriteString(fmt.Sprintf("\n%s %s  %s %s → %s\n",
		Dim("today:"), StyleRed.Render(v.Today.Format(domain.DateLayout)),
		Dim("window:"), v.From.Format(domain.DateLayout), v.To.Format(domain.DateLayout)))
	return b.String()
}

// ganttColumn maps day to a bar column in [0, width).
func ganttColumn(day, from, to time.Time, width int) int {
	span := domain.DaysBetween(from, to)
	if span <= 0 {
		return 0
	}
	col := domain.DaysBetween(from, day) * (width - 1) / span
	return min(max(col, 0), width-1)
}

func ganttBar(t schedule.Task, from, to, today time.Time, width int) string {
	cells := []rune(strings.Repeat(" ", width))
	if !today.Before(from) && !today.After(to) {
		cells[ganttColumn(today, from, to, width)] = todayChar
	}

	start := ganttColumn(t.Start, from, to, width)
	if t.IsMilestone() {
		cells[start] = milestoneChar
		return StylePurple.Render(string(cells))
	}
	end := ganttColumn(t.End, from, to, width)
	for c := start; c <= end; c++ {
		cells[c] = barChar
	}
	return StyleBlue.Render(string(cells))
}
