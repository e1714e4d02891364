package calendar

// daysPerMonth is indexed by month number; index 0 is unused.
var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of month (1-12). It returns 0 for any
// other month, which no day number can satisfy.
func DaysInMonth(month int, leap bool) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && leap {
		return 29
	}
	return daysPerMonth[month]
}

// daysInYear returns 366 for leap years and 365 otherwise.
func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
