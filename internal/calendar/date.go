package calendar

import (
	"fmt"
	"strings"
)

// Separator splits the day, month and year segments of a date string.
const Separator = "/"

// Date is a validated calendar day. Values are only produced by
// Calendar.Parse, so a non-zero Date always satisfies the calendar's
// range and month-length rules.
type Date struct {
	day   int
	month int
	year  int
}

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Month returns the month number (1-12).
func (d Date) Month() int { return d.month }

// Year returns the year.
func (d Date) Year() int { return d.year }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%d", d.day, d.month, d.year)
}

// Parse converts a D/M/Y string into a Date. The year is validated first,
// then the month, then the day against that month and year. It returns
// false unless all three segments are valid.
func (c Calendar) Parse(s string) (Date, bool) {
	parts := strings.Split(s, Separator)
	if len(parts) != 3 {
		return Date{}, false
	}

	year, yearOK := c.ValidYear(parts[2])
	month, monthOK := c.ValidMonth(parts[1])
	day, dayOK := c.ValidDay(parts[0], month, monthOK, year, yearOK)
	if !yearOK || !monthOK || !dayOK {
		return Date{}, false
	}

	return Date{day: day, month: month, year: year}, true
}

// contains reports whether every field of d is within the calendar.
func (c Calendar) contains(d Date) bool {
	if d.year < c.minYear || d.year > c.maxYear {
		return false
	}
	if d.month < 1 || d.month > 12 {
		return false
	}
	return d.day >= 1 && d.day <= DaysInMonth(d.month, IsLeapYear(d.year))
}

// DayCount returns the number of days from 1 January of the calendar's
// first year up to and including d, so the first day counts as 1. It
// returns false for a Date that does not belong to the calendar, such as
// the zero Date or one parsed by a calendar with a wider range.
func (c Calendar) DayCount(d Date) (int, bool) {
	if !c.contains(d) {
		return 0, false
	}

	days := 0
	for year := c.minYear; year < d.year; year++ {
		days += daysInYear(year)
	}
	leap := IsLeapYear(d.year)
	for month := 1; month < d.month; month++ {
		days += DaysInMonth(month, leap)
	}
	return days + d.day, true
}
