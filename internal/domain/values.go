package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces user text into a finite number. Both "12.5" and the
// comma-decimal "12,5" are accepted. When both separators appear the last
// one is the decimal mark, so "1.234,5" and "1,234.5" agree. A lone comma
// followed by exactly three digits ("1,234") could be either and is
// rejected.
func ParseAmount(field, s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, invalid(field, "value is required")
	}
	raw = strings.ReplaceAll(raw, " ", "")
	norm, ok := normalizeDecimal(raw)
	if !ok {
		return 0, invalid(field, "%q is ambiguous, write 1234.5 or 1.234,5", s)
	}
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, invalid(field, "%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "%q is not a finite number", s)
	}
	return v, nil
}

// normalizeDecimal rewrites raw with '.' as the only decimal mark and no
// grouping. ok is false only for an ambiguous single comma group.
func normalizeDecimal(raw string) (string, bool) {
	comma, dot := strings.LastIndex(raw, ","), strings.LastIndex(raw, ".")
	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			return strings.Replace(strings.ReplaceAll(raw, ".", ""), ",", ".", 1), true
		}
		return strings.ReplaceAll(raw, ",", ""), true
	case comma >= 0:
		if strings.Count(raw, ",") > 1 {
			return strings.ReplaceAll(raw, ",", ""), true
		}
		if isThousandsGroup(raw[:comma], raw[comma+1:]) {
			return "", false
		}
		return strings.Replace(raw, ",", ".", 1), true
	case dot >= 0 && strings.Count(raw, ".") > 1:
		return strings.ReplaceAll(raw, ".", ""), true
	}
	return raw, true
}

// isThousandsGroup reports whether head,tail reads as one thousands group:
// one to three leading digits without a leading zero, then three digits.
func isThousandsGroup(head, tail string) bool {
	head = strings.TrimLeft(head, "+-")
	if len(tail) != 3 || len(head) == 0 || len(head) > 3 || head[0] == '0' {
		return false
	}
	return allDigits(head) && allDigits(tail)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParsePercent coerces text such as "50", "50%" or "12,5" and checks the range.
func ParsePercent(s string) (float64, error) {
	v, err := ParseAmount("percent", strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return 0, err
	}
	if err := ValidatePercent(v); err != nil {
		return 0, err
	}
	return v, nil
}

func ValidatePercent(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("percent", "must be a finite number")
	}
	if v < 0 || v > 100 {
		return invalid("percent", "%g is outside [0, 100]", v)
	}
	return nil
}

func validateNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "must be a finite number")
	}
	if v < 0 {
		return invalid(field, "must not be negative, got %g", v)
	}
	return nil
}
