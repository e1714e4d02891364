package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/daysbetween/internal/calendar"
	"github.com/specialistvlad/daysbetween/internal/normalize"
)

// DefaultPrompt is printed before each line is read in interactive mode.
const DefaultPrompt = "Please enter 2 dates..."

// Model is the unified representation of the application configuration.
type Model struct {
	Calendar Calendar
	Console  Console
	HTTP     HTTP
}

// Calendar configures the supported year range.
type Calendar struct {
	MinYear int
	MaxYear int
}

// Console configures the interactive front-end.
type Console struct {
	Prompt     string
	Separators []string
}

// HTTP configures the optional JSON API.
type HTTP struct {
	Port      int     // 0 disables the server
	RateLimit float64 // requests per second per client IP
	Burst     int
}

// Default returns the built-in configuration.
func Default() *Model {
	return &Model{
		Calendar: Calendar{
			MinYear: calendar.MinYear,
			MaxYear: calendar.MaxYear,
		},
		Console: Console{
			Prompt:     DefaultPrompt,
			Separators: append([]string(nil), normalize.DefaultWords...),
		},
		HTTP: HTTP{
			RateLimit: 2,
			Burst:     4,
		},
	}
}

// Validate checks the model for values the application cannot run with.
func (m *Model) Validate() error {
	var errs []error
	if _, err := calendar.New(m.Calendar.MinYear, m.Calendar.MaxYear); err != nil {
		errs = append(errs, err)
	}
	if m.Calendar.MinYear < 1 {
		errs = append(errs, fmt.Errorf("min year must be positive, got %d", m.Calendar.MinYear))
	}
	if m.HTTP.Port < 0 || m.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http port must be between 0 and 65535, got %d", m.HTTP.Port))
	}
	if m.HTTP.RateLimit <= 0 {
		errs = append(errs, fmt.Errorf("http rate limit must be positive, got %v", m.HTTP.RateLimit))
	}
	if m.HTTP.Burst < 1 {
		errs = append(errs, fmt.Errorf("http burst must be at least 1, got %d", m.HTTP.Burst))
	}
	return errors.Join(errs...)
}

// NewCalendar builds the calendar described by the model.
func (m *Model) NewCalendar() (calendar.Calendar, error) {
	return calendar.New(m.Calendar.MinYear, m.Calendar.MaxYear)
}
