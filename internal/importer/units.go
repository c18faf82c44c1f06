package importer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/atajados/internal/domain"
)

var unitAliases = map[string]string{
	"number":           "number",
	"numero":           "number",
	"nro":              "number",
	"n":                "number",
	"atajado":          "number",
	"comunidad":        "location",
	"location":         "location",
	"beneficiario":     "beneficiary",
	"beneficiary":      "beneficiary",
	"beneficiary_name": "beneficiary",
	"ci":               "national_id",
	"national_id":      "national_id",
	"coord_e":          "coord_e",
	"este":             "coord_e",
	"coord_n":          "coord_n",
	"norte":            "coord_n",
	"estado":           "status",
	"status":           "status",
	"observaciones":    "observations",
	"observations":     "observations",
}

// ParseUnits converts a unit roster table into units. Coordinates and status
// are optional; the unit number is required.
func ParseUnits(t *Table) ([]*domain.Unit, error) {
	cols := resolveColumns(t.Header, unitAliases)
	if !cols.has("number") {
		return nil, fmt.Errorf("missing column for number")
	}

	var (
		units []*domain.Unit
		errs  []error
	)
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		line := i + 2
		u := &domain.Unit{
			Location:        cols.get(row, "location"),
			BeneficiaryName: cols.get(row, "beneficiary"),
			NationalID:      cols.get(row, "national_id"),
			Observations:    cols.get(row, "observations"),
		}
		var rowErrs []error

		n, err := strconv.Atoi(cols.get(row, "number"))
		if err != nil {
			rowErrs = append(rowErrs, &domain.ValidationError{Field: "number", Reason: fmt.Sprintf("%q is not an integer", cols.get(row, "number"))})
		}
		u.Number = n

		for _, c := range []struct {
			field string
			dst   *float64
		}{{"coord_e", &u.CoordE}, {"coord_n", &u.CoordN}} {
			raw := cols.get(row, c.field)
			if raw == "" {
				continue
			}
			v, err := domain.ParseAmount(c.field, raw)
			if err != nil {
				rowErrs = append(rowErrs, err)
				continue
			}
			*c.dst = v
		}

		st, err := domain.ParseUnitStatus(cols.get(row, "status"))
		if err != nil {
			rowErrs = append(rowErrs, err)
		}
		u.Status = st

		if len(rowErrs) == 0 {
			if err := u.Validate(); err != nil {
				rowErrs = append(rowErrs, err)
			}
		}
		for _, e := range rowErrs {
			errs = append(errs, fmt.Errorf("row %d: %w", line, e))
		}
		units = append(units, u)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return units, nil
}
