package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5", 12.5, true},
		{"12,5", 12.5, true},
		{" 40 ", 40, true},
		{"1.234,5", 1234.5, true},
		{"1,234.50", 1234.5, true},
		{"12,500.00", 12500, true},
		{"1.234.567,25", 1234567.25, true},
		{"1,234,567", 1234567, true},
		{"1.234.567", 1234567, true},
		{"0,125", 0.125, true},
		{"1,2345", 1.2345, true},
		{"-3,75", -3.75, true},
		{"1,234", 0, false},
		{"999,000", 0, false},
		{"1,2.3,4", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount("quantity", tc.in)
		if !tc.ok {
			require.Error(t, err, "input=%q", tc.in)
			assert.ErrorIs(t, err, ErrValidation)
			continue
		}
		require.NoError(t, err, "input=%q", tc.in)
		assert.InDelta(t, tc.want, got, 1e-9, "input=%q", tc.in)
	}
}

func TestParsePercent(t *testing.T) {
	v, err := ParsePercent("75%")
	require.NoError(t, err)
	assert.Equal(t, 75.0, v)

	_, err = ParsePercent("150")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParsePercent("-1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCostItem_Validate(t *testing.T) {
	ok := CostItem{Name: "Excavación", Quantity: 10, UnitPrice: 2}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 20.0, ok.Cost())

	cases := map[string]CostItem{
		"empty name":     {Name: "  ", Quantity: 1},
		"negative qty":   {Name: "a", Quantity: -1},
		"negative price": {Name: "a", UnitPrice: -0.5},
		"progress > 100": {Name: "a", Progress: 101},
	}
	for name, c := range cases {
		err := c.Validate()
		var ve *ValidationError
		require.True(t, errors.As(err, &ve), name)
		assert.ErrorIs(t, err, ErrValidation, name)
	}
}

func TestProgressRecord_Validate(t *testing.T) {
	r := ProgressRecord{Percent: 50, IntervalStart: ptr(day("2024-01-01")), IntervalEnd: ptr(day("2024-01-10"))}
	require.NoError(t, r.Validate())
	assert.True(t, r.HasInterval())

	half := ProgressRecord{Percent: 50, IntervalStart: ptr(day("2024-01-01"))}
	assert.ErrorIs(t, half.Validate(), ErrValidation)

	reversed := ProgressRecord{Percent: 50, IntervalStart: ptr(day("2024-01-10")), IntervalEnd: ptr(day("2024-01-01"))}
	assert.ErrorIs(t, reversed.Validate(), ErrValidation)

	over := ProgressRecord{Percent: 150}
	assert.ErrorIs(t, over.Validate(), ErrValidation)
}

func TestProgressRecord_IsNewerThan(t *testing.T) {
	a := &ProgressRecord{ID: 1, RecordedOn: day("2024-02-01")}
	b := &ProgressRecord{ID: 2, RecordedOn: day("2024-01-01")}
	assert.True(t, a.IsNewerThan(b))
	assert.False(t, b.IsNewerThan(a))

	c := &ProgressRecord{ID: 3, RecordedOn: day("2024-02-01")}
	assert.True(t, c.IsNewerThan(a))
}

func TestParseUnitStatus(t *testing.T) {
	cases := map[string]UnitStatus{
		"":             UnitPending,
		"Pendiente":    UnitPending,
		"En ejecución": UnitInProgress,
		"in_progress":  UnitInProgress,
		"EJECUTADO":    UnitExecuted,
		"executed":     UnitExecuted,
	}
	for in, want := range cases {
		got, err := ParseUnitStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseUnitStatus("demolished")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUnit_Label(t *testing.T) {
	u := Unit{Number: 12, BeneficiaryName: "Juan Mamani"}
	assert.Equal(t, "12 – Juan Mamani", u.Label())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 9, DaysBetween(day("2024-01-01"), day("2024-01-10")))
	assert.Equal(t, 0, DaysBetween(day("2024-01-01"), day("2024-01-01")))
	assert.Equal(t, 29, DaysBetween(day("2024-02-01"), day("2024-03-01")))
	assert.Equal(t, -9, DaysBetween(day("2024-01-10"), day("2024-01-01")))
	assert.Equal(t, 118338, DaysBetween(day("1700-01-01"), day("2024-01-01")))
}
