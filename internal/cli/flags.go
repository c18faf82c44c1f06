package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/spf13/pflag"
)

// dateFlag is an optional YYYY-MM-DD flag. An empty value clears it.
type dateFlag struct {
	t *time.Time
}

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string { return domain.FormatDate(f.t) }

func (f *dateFlag) Set(s string) error {
	if s == "" {
		f.t = nil
		return nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return err
	}
	f.t = &t
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// Time returns the parsed date, nil when unset or cleared.
func (f *dateFlag) Time() *time.Time { return f.t }

// numberFlag parses through the domain coercion helpers, so both "12.5"
// and "12,5" are accepted.
type numberFlag struct {
	parse func(string) (float64, error)
	typ   string
	v     float64
}

var _ pflag.Value = (*numberFlag)(nil)

func newAmountFlag(field string) *numberFlag {
	return &numberFlag{
		parse: func(s string) (float64, error) { return domain.ParseAmount(field, s) },
		typ:   "number",
	}
}

func newPercentFlag() *numberFlag {
	return &numberFlag{parse: domain.ParsePercent, typ: "percent"}
}

func (f *numberFlag) String() string { return strconv.FormatFloat(f.v, 'f', -1, 64) }

func (f *numberFlag) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	f.v = v
	return nil
}

func (f *numberFlag) Type() string { return f.typ }

// statusFlag accepts the canonical statuses and their Spanish labels.
type statusFlag struct {
	s domain.UnitStatus
}

var _ pflag.Value = (*statusFlag)(nil)

func (f *statusFlag) String() string { return string(f.s) }

func (f *statusFlag) Set(s string) error {
	st, err := domain.ParseUnitStatus(s)
	if err != nil {
		return err
	}
	f.s = st
	return nil
}

func (f *statusFlag) Type() string { return "status" }

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}
