package domain

import (
	"fmt"
	"time"
)

// Unit is a single field structure tracked by the project.
type Unit struct {
	ID              int64
	Number          int
	Location        string
	BeneficiaryName string
	NationalID      string
	CoordE          float64
	CoordN          float64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          UnitStatus
	Observations    string
}

// Label renders the selector text used across the UI.
func (u *Unit) Label() string {
	return fmt.Sprintf("%d – %s", u.Number, u.BeneficiaryName)
}

func (u *Unit) Validate() error {
	if u.Number < 0 {
		return invalid("number", "must not be negative, got %d", u.Number)
	}
	switch u.Status {
	case UnitPending, UnitInProgress, UnitExecuted:
	default:
		return invalid("status", "unknown status %q", u.Status)
	}
	if u.StartDate != nil && u.EndDate != nil && u.EndDate.Before(*u.StartDate) {
		return invalid("end_date", "must not be before start_date")
	}
	return nil
}
