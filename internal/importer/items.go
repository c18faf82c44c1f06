package importer

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/atajados/internal/domain"
)

var itemAliases = map[string]string{
	"descripcion":     "name",
	"description":     "name",
	"name":            "name",
	"item":            "name",
	"unidad":          "unit",
	"unit":            "unit",
	"und":             "unit",
	"cant":            "quantity",
	"cantidad":        "quantity",
	"quantity":        "quantity",
	"qty":             "quantity",
	"pu":              "unit_price",
	"precio_unitario": "unit_price",
	"unit_price":      "unit_price",
	"price":           "unit_price",
}

// ParseItems converts a bill-of-quantities table into inactive cost items
// with zero progress. Every row problem is collected; on any error no items
// are returned.
func ParseItems(t *Table) ([]*domain.CostItem, error) {
	cols := resolveColumns(t.Header, itemAliases)
	var errs []error
	for _, field := range []string{"name", "quantity", "unit_price"} {
		if !cols.has(field) {
			errs = append(errs, fmt.Errorf("missing column for %s", field))
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	var items []*domain.CostItem
	for i, row := range t.Rows {
		if blank(row) {
			continue
		}
		line := i + 2
		it := &domain.CostItem{
			Name:          cols.get(row, "name"),
			UnitOfMeasure: cols.get(row, "unit"),
		}
		var rowErrs []error
		q, err := domain.ParseAmount("quantity", cols.get(row, "quantity"))
		if err != nil {
			rowErrs = append(rowErrs, err)
		}
		p, err := domain.ParseAmount("unit_price", cols.get(row, "unit_price"))
		if err != nil {
			rowErrs = append(rowErrs, err)
		}
		it.Quantity, it.UnitPrice = q, p
		if len(rowErrs) == 0 {
			if err := it.Validate(); err != nil {
				rowErrs = append(rowErrs, err)
			}
		}
		for _, e := range rowErrs {
			errs = append(errs, fmt.Errorf("row %d: %w", line, e))
		}
		items = append(items, it)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return items, nil
}
