package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format identifies a supported custom date layout.
type Format string

// The two supported custom formats. Both accept "/" or "-" as separator.
const (
	DayMonthYear Format = "DD/MM/YYYY"
	MonthDayYear Format = "MM/DD/YYYY"
)

// Errors returned by this package.
var (
	// ErrEmptyDateString is returned for empty or all-whitespace input.
	ErrEmptyDateString = errors.New("empty date string")
	// ErrUnsupportedFormat is returned for a Format outside the supported set.
	ErrUnsupportedFormat = errors.New("unsupported date format")
	// ErrInvalidDate is returned when the input does not represent a real
	// calendar date in the requested format.
	ErrInvalidDate = errors.New("invalid date")
)

// isoLayouts are tried in order by ParseISO.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Supported reports whether f is one of the recognised custom formats.
func Supported(f Format) bool {
	return f == DayMonthYear || f == MonthDayYear
}

// ParseCustom parses value according to format and returns the resulting
// date at midnight UTC.
//
// The value must split on "/" or "-" into exactly three numeric parts. The
// assembled date is validated by round-trip: if normalising it changes the
// year, month, or day (as happens for "31/02/2024"), ParseCustom returns
// [ErrInvalidDate].
//
// An empty value or an unsupported format is a contract violation and
// fails fast with [ErrEmptyDateString] or [ErrUnsupportedFormat].
func ParseCustom(value string, format Format) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrEmptyDateString
	}
	if !Supported(format) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q has %d parts, want 3", ErrInvalidDate, trimmed, len(parts))
	}

	numbers := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: non-numeric part %q", ErrInvalidDate, part)
		}
		numbers[i] = n
	}

	var day, month, year int
	switch format {
	case DayMonthYear:
		day, month, year = numbers[0], numbers[1], numbers[2]
	case MonthDayYear:
		month, day, year = numbers[0], numbers[1], numbers[2]
	}

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if parsed.Year() != year || parsed.Month() != time.Month(month) || parsed.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q does not exist in the calendar", ErrInvalidDate, trimmed)
	}
	return parsed, nil
}

// ParseISO parses an ISO-8601 date or timestamp, trying RFC 3339, then a
// timezone-less timestamp, then a bare date. Returns [ErrInvalidDate] when
// no layout matches.
func ParseISO(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrEmptyDateString
	}
	for _, layout := range isoLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not ISO-8601", ErrInvalidDate, trimmed)
}

// Detect tries ISO-8601 first and then each custom format in order,
// returning the first successful parse. The boolean result reports whether
// any attempt succeeded; Detect never returns an error because an
// unparsable string simply means "not a date" to the caller.
func Detect(value string, formats []Format) (time.Time, bool) {
	if parsed, err := ParseISO(value); err == nil {
		return parsed, true
	}
	for _, format := range formats {
		if parsed, err := ParseCustom(value, format); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
