package calendar

import (
	"strconv"
	"strings"
)

// ParseSegment parses s as a decimal integer and reports whether it lies
// within [min, max]. Surrounding whitespace is ignored. Fractions, empty
// strings and non-numeric text are rejected with ok set to false.
func ParseSegment(s string, min, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	if n < min || n > max {
		return 0, false
	}
	return n, true
}

// ValidYear parses a year segment within the calendar's range.
func (c Calendar) ValidYear(s string) (int, bool) {
	return ParseSegment(s, c.minYear, c.maxYear)
}

// ValidMonth parses a month segment (1-12).
func (c Calendar) ValidMonth(s string) (int, bool) {
	return ParseSegment(s, 1, 12)
}

// ValidDay parses a day segment against the length of the given month.
// The month and year must already have been validated; if either is not
// ok, no day is valid.
func (c Calendar) ValidDay(s string, month int, monthOK bool, year int, yearOK bool) (int, bool) {
	if !monthOK || !yearOK {
		return 0, false
	}
	return ParseSegment(s, 1, DaysInMonth(month, IsLeapYear(year)))
}
