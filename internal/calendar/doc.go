// Package calendar implements day-count arithmetic over a proleptic
// Gregorian calendar restricted to a fixed range of years.
//
// Everything in this package is pure. A Calendar is an immutable value and
// is safe for concurrent use; no function logs or touches global state.
// Failures are reported as values: segment parsing returns an ok flag, and
// the day-difference calculation returns one of ParseError, ConversionError
// or UsageError.
package calendar
