package domain

import "strings"

// CostItem is one bill-of-quantities line. Progress is the manual global
// completion used only while the item is inactive.
type CostItem struct {
	ID            int64
	Name          string
	UnitOfMeasure string
	Quantity      float64
	UnitPrice     float64
	Active        bool
	Progress      float64
}

func (c *CostItem) Cost() float64 {
	return c.Quantity * c.UnitPrice
}

func (c *CostItem) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", "must not be empty")
	}
	if err := validateNonNegative("quantity", c.Quantity); err != nil {
		return err
	}
	if err := validateNonNegative("unit_price", c.UnitPrice); err != nil {
		return err
	}
	return ValidatePercent(c.Progress)
}
