// Package schedule derives labeled time intervals from milestones and the
// work intervals of progress records.
package schedule

import (
	"iter"
	"slices"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
)

// DefaultHoursPerDay converts task days into estimated hours.
const DefaultHoursPerDay = 8

type Task struct {
	Label    string
	Start    time.Time
	End      time.Time
	Kind     domain.TaskKind
	SourceID int64
}

// Days is the whole-day length of the task; milestones are 0.
func (t Task) Days() int {
	return domain.DaysBetween(t.Start, t.End)
}

func (t Task) Hours(perDay int) int {
	if perDay <= 0 {
		perDay = DefaultHoursPerDay
	}
	return t.Days() * perDay
}

func (t Task) IsMilestone() bool {
	return t.Kind == domain.TaskMilestone
}

// Build returns a lazy, restartable sequence of tasks: milestones first, then
// one task per active item spanning its records' complete intervals. Labels
// are unique; the first task with a label wins. Milestones without a date,
// items without complete intervals, and inverted intervals produce nothing.
func Build(milestones []*domain.Milestone, items []*domain.CostItem, records []*domain.ProgressRecord) iter.Seq[Task] {
	return func(yield func(Task) bool) {
		seen := make(map[string]bool)
		emit := func(t Task) bool {
			if seen[t.Label] {
				return true
			}
			seen[t.Label] = true
			return yield(t)
		}

		for _, m := range milestones {
			if m == nil || m.Date.IsZero() {
				continue
			}
			if !emit(Task{Label: m.Name, Start: m.Date, End: m.Date, Kind: domain.TaskMilestone, SourceID: m.ID}) {
				return
			}
		}

		spans := itemSpans(records)
		for _, it := range items {
			if it == nil || !it.Active {
				continue
			}
			sp, ok := spans[it.ID]
			if !ok {
				continue
			}
			if !emit(Task{Label: it.Name, Start: sp.start, End: sp.end, Kind: domain.TaskItem, SourceID: it.ID}) {
				return
			}
		}
	}
}

type span struct {
	start, end time.Time
}

// itemSpans takes MIN(start) and MAX(end) over each item's complete intervals.
// Inverted intervals are skipped; validation rejects them on write, so only
// rows edited outside the service layer can carry one.
func itemSpans(records []*domain.ProgressRecord) map[int64]span {
	spans := make(map[int64]span)
	for _, r := range records {
		if r == nil || !r.HasInterval() || r.IntervalEnd.Before(*r.IntervalStart) {
			continue
		}
		sp, ok := spans[r.ItemID]
		if !ok {
			spans[r.ItemID] = span{start: *r.IntervalStart, end: *r.IntervalEnd}
			continue
		}
		if r.IntervalStart.Before(sp.start) {
			sp.start = *r.IntervalStart
		}
		if r.IntervalEnd.After(sp.end) {
			sp.end = *r.IntervalEnd
		}
		spans[r.ItemID] = sp
	}
	return spans
}

// Sorted collects seq ordered by start date, then end date; input order
// breaks remaining ties.
func Sorted(seq iter.Seq[Task]) []Task {
	tasks := slices.Collect(seq)
	slices.SortStableFunc(tasks, func(a, b Task) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})
	return tasks
}

// Window returns the display range padded by one day on each side. ok is
// false for an empty task list.
func Window(tasks []Task) (from, to time.Time, ok bool) {
	for i, t := range tasks {
		if i == 0 || t.Start.Before(from) {
			from = t.Start
		}
		if i == 0 || t.End.After(to) {
			to = t.End
		}
	}
	if len(tasks) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return from.AddDate(0, 0, -1), to.AddDate(0, 0, 1), true
}
