package coercer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	apperrors "courseeda/internal/errors"
)

// Enrollment counts are written as "500", "1.2k" or "4.75m". Only unsigned
// decimal numerals are accepted, so signs, spaces and exponents are rejected.
var (
	decimalPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)
	integerPattern = regexp.MustCompile(`^\d+$`)
)

const (
	thousand = 1_000
	million  = 1_000_000
)

// ParseEnrollment converts a human-readable enrollment count into an integer.
// The first suffix found wins: "k" multiplies by 1,000, then "m" by 1,000,000;
// without a suffix the value must be a plain integer. Scaled values are truncated toward zero.
func ParseEnrollment(value string) (int, error) {
	switch {
	case strings.Contains(value, "k"):
		return parseScaled(value, "k", thousand)
	case strings.Contains(value, "m"):
		return parseScaled(value, "m", million)
	}

	if !integerPattern.MatchString(value) {
		return 0, apperrors.InvalidValue("invalid enrollment count %q: not an integer", value)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.InvalidValue("invalid enrollment count %q: %v", value, err)
	}
	return n, nil
}

func parseScaled(value, suffix string, multiplier float64) (int, error) {
	number := strings.ReplaceAll(value, suffix, "")
	if !decimalPattern.MatchString(number) {
		return 0, apperrors.InvalidValue("invalid enrollment count %q: %q is not a decimal number", value, number)
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, apperrors.InvalidValue("invalid enrollment count %q: %v", value, err)
	}

	scaled := math.Trunc(f * multiplier)
	if scaled >= math.MaxInt {
		return 0, apperrors.InvalidValue("invalid enrollment count %q: out of range", value)
	}
	return int(scaled), nil
}
