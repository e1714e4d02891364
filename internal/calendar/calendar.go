package calendar

import "fmt"

const (
	// MinYear is the first year supported by the default calendar.
	MinYear = 1900
	// MaxYear is the last year supported by the default calendar.
	MaxYear = 2999
)

// Calendar holds the inclusive year range that dates must fall within.
// The zero value is not usable; build one with New or use Default.
type Calendar struct {
	minYear int
	maxYear int
}

// Default is the calendar covering MinYear through MaxYear.
var Default = Calendar{minYear: MinYear, maxYear: MaxYear}

// New returns a calendar covering the years minYear through maxYear.
func New(minYear, maxYear int) (Calendar, error) {
	if minYear > maxYear {
		return Calendar{}, fmt.Errorf("invalid year range: min year %d is after max year %d", minYear, maxYear)
	}
	return Calendar{minYear: minYear, maxYear: maxYear}, nil
}

// MinYear returns the first supported year.
func (c Calendar) MinYear() int { return c.minYear }

// MaxYear returns the last supported year.
func (c Calendar) MaxYear() int { return c.maxYear }

// String renders the supported range, e.g. "1/1/1900-31/12/2999".
func (c Calendar) String() string {
	return fmt.Sprintf("1/1/%d-31/12/%d", c.minYear, c.maxYear)
}
