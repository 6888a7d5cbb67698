// Package timeutil converts between "HH:MM" clock text and minutes since midnight
// and knows the 15-minute agenda grid.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// GridStepMinutes is the distance between two grid boundaries.
	GridStepMinutes = 15

	// MinutesPerDay is the length of a day in minutes.
	MinutesPerDay = 24 * 60

	// ShortGapMinMinutes and ShortGapMaxMinutes bound IsShortGap as [min, max).
	ShortGapMinMinutes = 15
	ShortGapMaxMinutes = 30
)

// FormatError is returned for clock text that cannot be parsed.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timeutil: malformed time %q: %s", e.Value, e.Reason)
}

// ToMinutes parses "HH:MM" (one or two hour digits) into minutes since midnight.
func ToMinutes(text string) (int, error) {
	hh, mm, ok := strings.Cut(text, ":")
	if !ok {
		return 0, &FormatError{Value: text, Reason: "missing ':' separator"}
	}
	if len(hh) < 1 || len(hh) > 2 || !isDigits(hh) {
		return 0, &FormatError{Value: text, Reason: "hour is not numeric"}
	}
	if len(mm) != 2 || !isDigits(mm) {
		return 0, &FormatError{Value: text, Reason: "minute is not numeric"}
	}

	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	if hour > 23 {
		return 0, &FormatError{Value: text, Reason: "hour out of range"}
	}
	if minute > 59 {
		return 0, &FormatError{Value: text, Reason: "minute out of range"}
	}

	return hour*60 + minute, nil
}

// ToText formats minutes since midnight as zero-padded "HH:MM", wrapping past midnight.
func ToText(minutes int) string {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// NextGridBoundary returns the smallest multiple of GridStepMinutes that is >= minutes.
func NextGridBoundary(minutes int) int {
	if r := minutes % GridStepMinutes; r != 0 {
		if minutes < 0 {
			return minutes - r
		}
		return minutes + GridStepMinutes - r
	}
	return minutes
}

// IsShortGap reports whether end-start lies in [15, 30).
//
// This is not the fit-slot acceptance rule (that one is [10, 30], see
// agenda.DetectFitSlots). The two thresholds disagree and are kept apart on purpose.
func IsShortGap(startMinutes, endMinutes int) bool {
	gap := endMinutes - startMinutes
	return gap >= ShortGapMinMinutes && gap < ShortGapMaxMinutes
}

// Normalize reduces any of the clock representations the backend sends to "HH:MM":
//
//	"09:00", "09:00:00", "2025-03-10T09:00:00.000Z", "2025-03-10T09:00:00-03:00", "2025-03-10 09:00:00"
//
// Timestamps keep their wall clock; no time zone conversion happens.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &FormatError{Value: raw, Reason: "empty"}
	}

	// Дата + время: берём только часть после разделителя
	if i := strings.IndexAny(s, "T "); i >= 0 {
		s = s[i+1:]
	}

	// Отрезаем дробные секунды и зону
	if i := strings.IndexAny(s, ".Z+-"); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
	case 3:
		if len(parts[2]) != 2 || !isDigits(parts[2]) {
			return "", &FormatError{Value: raw, Reason: "second is not numeric"}
		}
		if sec, _ := strconv.Atoi(parts[2]); sec > 59 {
			return "", &FormatError{Value: raw, Reason: "second out of range"}
		}
	default:
		return "", &FormatError{Value: raw, Reason: "unrecognized layout"}
	}

	minutes, err := ToMinutes(parts[0] + ":" + parts[1])
	if err != nil {
		return "", &FormatError{Value: raw, Reason: err.(*FormatError).Reason}
	}

	return ToText(minutes), nil
}

// ParseClock normalizes raw and converts it to minutes since midnight.
func ParseClock(raw string) (int, error) {
	text, err := Normalize(raw)
	if err != nil {
		return 0, err
	}
	return ToMinutes(text)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
