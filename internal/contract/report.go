// Package contract holds the read models returned by report use cases.
package contract

import (
	"iter"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/progress"
	"github.com/alexanderramin/atajados/internal/schedule"
)

// DashboardView summarizes unit counts and overall completion.
type DashboardView struct {
	TotalUnits      int
	ExecutedUnits   int
	InProgressUnits int
	PendingUnits    int
	ProjectProgress float64
	TotalCost       float64
	ExecutedCost    float64
}

// UnitSummary is one row of the per-unit summary.
type UnitSummary struct {
	Unit         *domain.Unit
	Label        string
	LastRecorded *time.Time
	Progress     float64
}

// UnitDetail is a unit with its progress and per-item lines.
type UnitDetail struct {
	Unit     *domain.Unit
	Progress float64
	Lines    []progress.UnitLine
	Photos   []*domain.UnitPhoto
}

// ScheduleView carries the derived tasks and the caller's notion of today.
// Tasks is the lazy sequence; Sorted is a display copy ordered by start.
type ScheduleView struct {
	Tasks  iter.Seq[schedule.Task]
	Sorted []schedule.Task
	Today  time.Time
	From   time.Time
	To     time.Time
}

// HasWindow reports whether there is anything to draw.
func (v *ScheduleView) HasWindow() bool {
	return len(v.Sorted) > 0
}

// ItemReport is one line of the project cost breakdown.
type ItemReport = progress.ItemLine

// NewScheduleView materializes a sorted display copy of seq and its window.
func NewScheduleView(seq iter.Seq[schedule.Task], today time.Time) *ScheduleView {
	v := &ScheduleView{Tasks: seq, Sorted: schedule.Sorted(seq), Today: domain.Date(today)}
	v.From, v.To, _ = schedule.Window(v.Sorted)
	return v
}
