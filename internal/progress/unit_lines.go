package progress

import (
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
)

// UnitLine is an active item as seen from a single unit. Quantity and Cost
// are the unit's even share of the item.
type UnitLine struct {
	Item          *domain.CostItem
	Quantity      float64
	Cost          float64
	Percent       float64
	RecordedOn    *time.Time
	IntervalStart *time.Time
	IntervalEnd   *time.Time
}

// UnitLines lists the active items for unitID with its latest record, if any.
// unitCount below 1 is treated as 1.
func UnitLines(s Snapshot, unitID int64, unitCount int) []UnitLine {
	if unitCount < 1 {
		unitCount = 1
	}
	current := make(map[int64]*domain.ProgressRecord)
	for _, r := range Latest(s.Records) {
		if r.UnitID == unitID {
			current[r.ItemID] = r
		}
	}

	var lines []UnitLine
	for _, it := range s.Items {
		if !it.Active {
			continue
		}
		qty := it.Quantity / float64(unitCount)
		line := UnitLine{Item: it, Quantity: qty, Cost: qty * it.UnitPrice}
		if r, ok := current[it.ID]; ok {
			on := r.RecordedOn
			line.Percent = r.Percent
			line.RecordedOn = &on
			line.IntervalStart = r.IntervalStart
			line.IntervalEnd = r.IntervalEnd
		}
		lines = append(lines, line)
	}
	return lines
}

// LastRecorded returns the most recent RecordedOn for the unit, or nil.
func LastRecorded(records []*domain.ProgressRecord, unitID int64) *time.Time {
	var last *time.Time
	for _, r := range records {
		if r.UnitID != unitID || r.RecordedOn.IsZero() {
			continue
		}
		if last == nil || r.RecordedOn.After(*last) {
			on := r.RecordedOn
			last = &on
		}
	}
	return last
}
