// Package progress computes cost-weighted completion from a snapshot of
// items and progress records. Every function is pure.
package progress

import (
	"github.com/alexanderramin/atajados/internal/domain"
)

// Snapshot is the read-only input to every aggregation.
type Snapshot struct {
	Items   []*domain.CostItem
	Records []*domain.ProgressRecord
}

type pairKey struct {
	unitID int64
	itemID int64
}

// Latest keeps one record per (unit, item): the latest RecordedOn, ties to
// the highest ID, and among exact duplicates the one later in the slice.
// Output preserves the order in which pairs first appear.
func Latest(records []*domain.ProgressRecord) []*domain.ProgressRecord {
	idx := make(map[pairKey]int, len(records))
	out := make([]*domain.ProgressRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		k := pairKey{r.UnitID, r.ItemID}
		i, seen := idx[k]
		if !seen {
			idx[k] = len(out)
			out = append(out, r)
			continue
		}
		if !out[i].IsNewerThan(r) {
			out[i] = r
		}
	}
	return out
}

// ItemLine is one item's contribution to project progress.
type ItemLine struct {
	Item     *domain.CostItem
	Cost     float64
	Fraction float64
	Records  int
}

// Contribution is the executed cost of the item.
func (l ItemLine) Contribution() float64 {
	return l.Fraction * l.Cost
}

// ItemBreakdown returns one line per item in snapshot order. Inactive items
// use their manual progress; active items average their deduplicated
// records over all units, or 0 with no records.
func ItemBreakdown(s Snapshot) []ItemLine {
	byItem := make(map[int64][]*domain.ProgressRecord)
	for _, r := range Latest(s.Records) {
		byItem[r.ItemID] = append(byItem[r.ItemID], r)
	}

	lines := make([]ItemLine, 0, len(s.Items))
	for _, it := range s.Items {
		line := ItemLine{Item: it, Cost: it.Cost()}
		if !it.Active {
			line.Fraction = it.Progress / 100
		} else if recs := byItem[it.ID]; len(recs) > 0 {
			var sum float64
			for _, r := range recs {
				sum += r.Percent / 100
			}
			line.Fraction = sum / float64(len(recs))
			line.Records = len(recs)
		}
		lines = append(lines, line)
	}
	return lines
}

// ProjectProgress returns the cost-weighted completion percent in [0, 100].
// A project with no cost is 0% complete.
func ProjectProgress(s Snapshot) float64 {
	var total, executed float64
	for _, l := range ItemBreakdown(s) {
		total += l.Cost
		executed += l.Contribution()
	}
	if total == 0 {
		return 0
	}
	return clamp(executed / total * 100)
}

// UnitProgress returns the cost-weighted completion of one unit over active
// items. Items without a record for the unit count as 0% done.
func UnitProgress(s Snapshot, unitID int64) float64 {
	percent := make(map[int64]float64)
	for _, r := range Latest(s.Records) {
		if r.UnitID == unitID {
			percent[r.ItemID] = r.Percent
		}
	}

	var total, executed float64
	for _, it := range s.Items {
		if !it.Active {
			continue
		}
		c := it.Cost()
		total += c
		executed += c * percent[it.ID] / 100
	}
	if total == 0 {
		return 0
	}
	return clamp(executed / total * 100)
}

func clamp(pct float64) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}
