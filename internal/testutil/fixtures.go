package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
)

var unitNumberCounter atomic.Int64

// Date parses YYYY-MM-DD and panics on malformed input.
func Date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("testutil.Date(%q): %v", s, err))
	}
	return t
}

// Cost item options
type ItemOption func(*domain.CostItem)

func WithCost(quantity, unitPrice float64) ItemOption {
	return func(it *domain.CostItem) {
		it.Quantity = quantity
		it.UnitPrice = unitPrice
	}
}

func WithActive(active bool) ItemOption {
	return func(it *domain.CostItem) {
		it.Active = active
	}
}

func WithItemProgress(pct float64) ItemOption {
	return func(it *domain.CostItem) {
		it.Progress = pct
	}
}

func WithUnitOfMeasure(u string) ItemOption {
	return func(it *domain.CostItem) {
		it.UnitOfMeasure = u
	}
}

// NewTestItem returns an active item costing 100.
func NewTestItem(name string, opts ...ItemOption) *domain.CostItem {
	it := &domain.CostItem{
		Name:          name,
		UnitOfMeasure: "gl",
		Quantity:      1,
		UnitPrice:     100,
		Active:        true,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Unit options
type UnitOption func(*domain.Unit)

func WithUnitStatus(s domain.UnitStatus) UnitOption {
	return func(u *domain.Unit) {
		u.Status = s
	}
}

func WithUnitNumber(n int) UnitOption {
	return func(u *domain.Unit) {
		u.Number = n
	}
}

func WithLocation(loc string) UnitOption {
	return func(u *domain.Unit) {
		u.Location = loc
	}
}

func NewTestUnit(beneficiary string, opts ...UnitOption) *domain.Unit {
	u := &domain.Unit{
		Number:          int(unitNumberCounter.Add(1)),
		Location:        "Comunidad Test",
		BeneficiaryName: beneficiary,
		Status:          domain.UnitPending,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Progress record options
type RecordOption func(*domain.ProgressRecord)

func WithRecordedOn(d time.Time) RecordOption {
	return func(r *domain.ProgressRecord) {
		r.RecordedOn = d
	}
}

func WithInterval(start, end time.Time) RecordOption {
	return func(r *domain.ProgressRecord) {
		r.IntervalStart = &start
		r.IntervalEnd = &end
	}
}

func WithRecordID(id int64) RecordOption {
	return func(r *domain.ProgressRecord) {
		r.ID = id
	}
}

func NewTestRecord(unitID, itemID int64, percent float64, opts ...RecordOption) *domain.ProgressRecord {
	r := &domain.ProgressRecord{
		UnitID:     unitID,
		ItemID:     itemID,
		Percent:    percent,
		RecordedOn: Date("2024-03-01"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func NewTestMilestone(name string, date time.Time) *domain.Milestone {
	return &domain.Milestone{Name: name, Date: date}
}
