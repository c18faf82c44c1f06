package domain

import (
	"fmt"
	"strings"
)

type UnitStatus string

const (
	UnitPending    UnitStatus = "pending"
	UnitInProgress UnitStatus = "in_progress"
	UnitExecuted   UnitStatus = "executed"
)

// unitStatusAliases maps accepted spellings, including the Spanish labels
// used on field sheets, to the canonical status.
var unitStatusAliases = map[string]UnitStatus{
	"pending":      UnitPending,
	"pendiente":    UnitPending,
	"in_progress":  UnitInProgress,
	"in-progress":  UnitInProgress,
	"in progress":  UnitInProgress,
	"en ejecución": UnitInProgress,
	"en ejecucion": UnitInProgress,
	"executed":     UnitExecuted,
	"ejecutado":    UnitExecuted,
}

// ParseUnitStatus normalizes s into a UnitStatus. Empty input means pending.
func ParseUnitStatus(s string) (UnitStatus, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return UnitPending, nil
	}
	if st, ok := unitStatusAliases[key]; ok {
		return st, nil
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", s)}
}

// Label returns the Spanish display label.
func (s UnitStatus) Label() string {
	switch s {
	case UnitExecuted:
		return "Ejecutado"
	case UnitInProgress:
		return "En ejecución"
	default:
		return "Pendiente"
	}
}

type TaskKind string

const (
	TaskMilestone TaskKind = "milestone"
	TaskItem      TaskKind = "item"
)
