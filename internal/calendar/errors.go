package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrParse      = errors.New("could not parse date(s)")
	ErrConversion = errors.New("could not convert date(s) to days")
	ErrUsage      = errors.New("exactly two dates are required")
)

// ParseError reports the input strings that are not valid dates.
type ParseError struct {
	Inputs []string
}

func (e *ParseError) Error() string {
	return ErrParse.Error() + ": " + strings.Join(e.Inputs, " ")
}

// Is makes errors.Is(err, ErrParse) succeed.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConversionError reports parsed dates that could not be turned into a
// day count.
type ConversionError struct {
	Inputs []string
}

func (e *ConversionError) Error() string {
	return ErrConversion.Error() + ": " + strings.Join(e.Inputs, " ")
}

// Is makes errors.Is(err, ErrConversion) succeed.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// UsageError reports a call with the wrong number of dates.
type UsageError struct {
	Count int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("found %d date(s), %s", e.Count, ErrUsage.Error())
}

// Is makes errors.Is(err, ErrUsage) succeed.
func (e *UsageError) Is(target error) bool { return target == ErrUsage }
