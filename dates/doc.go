// Package dates parses date strings in the small set of formats the
// cleaning pipeline understands: ISO-8601 timestamps and two explicit
// day-first / month-first slash formats. Custom-format parsing validates
// the calendar date by round-trip, so rollover artifacts such as
// "31/02/2024" are rejected rather than silently shifted into March.
package dates
