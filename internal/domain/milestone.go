package domain

import (
	"strings"
	"time"
)

type Milestone struct {
	ID    int64
	Name  string
	Date  time.Time
	Notes string
}

func (m *Milestone) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if m.Date.IsZero() {
		return invalid("date", "is required")
	}
	return nil
}

type UnitPhoto struct {
	ID           int64
	UnitID       int64
	Path         string
	OriginalName string
	AddedAt      time.Time
}
