package domain

import "time"

// ProgressRecord is the percent completion of one item at one unit, as of a
// calendar date, with an optional work interval.
type ProgressRecord struct {
	ID            int64
	UnitID        int64
	ItemID        int64
	RecordedOn    time.Time
	Percent       float64
	IntervalStart *time.Time
	IntervalEnd   *time.Time
}

// HasInterval reports whether both interval endpoints are set.
func (r *ProgressRecord) HasInterval() bool {
	return r.IntervalStart != nil && r.IntervalEnd != nil
}

func (r *ProgressRecord) Validate() error {
	if err := ValidatePercent(r.Percent); err != nil {
		return err
	}
	if (r.IntervalStart == nil) != (r.IntervalEnd == nil) {
		return invalid("interval", "start and end must both be set or both be empty")
	}
	if r.HasInterval() && r.IntervalEnd.Before(*r.IntervalStart) {
		return invalid("interval", "end %s is before start %s",
			r.IntervalEnd.Format(DateLayout), r.IntervalStart.Format(DateLayout))
	}
	return nil
}

// IsNewerThan orders records of the same (unit, item): later RecordedOn
// wins, ties go to the higher ID.
func (r *ProgressRecord) IsNewerThan(o *ProgressRecord) bool {
	if !r.RecordedOn.Equal(o.RecordedOn) {
		return r.RecordedOn.After(o.RecordedOn)
	}
	return r.ID > o.ID
}
