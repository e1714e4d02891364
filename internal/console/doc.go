// Package console implements the interactive line-oriented front-end: it
// reads lines, normalizes them, dispatches the help and exit commands and
// prints the number of days between the two dates entered.
package console
