// Package rangeutil resolves the date-range shortcuts used by history
// reads ("today", "yesterday", a date, a datetime, or a pair of either)
// into half-open [start, end) DateTime intervals, grounded on the
// teacher's small closed-grammar duration parsing
// (TableOptionTTL/TableOptionTTLJobInterval in internal/parser/mysql) and
// on the Python original's his_read range argument handling.
package rangeutil

import (
	"strings"
	"time"

	"haystack/internal/core"
	"haystack/internal/herr"
	"haystack/internal/tz"
	"haystack/internal/zinc"
)

// Range is a half-open time interval. Unbounded is true when the input was
// empty/null, representing (-inf, +inf); Start/End are then zero values
// and must not be used.
type Range struct {
	Start     core.DateTime
	End       core.DateTime
	Unbounded bool
}

// Resolve parses input against the shapes in spec.md §4.7, evaluating
// "today"/"yesterday" relative to now in the given IANA location.
func Resolve(input string, loc *time.Location) (Range, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Range{Unbounded: true}, nil
	}

	now := time.Now().In(loc)

	switch input {
	case "today":
		return dayRange(now, loc), nil
	case "yesterday":
		return dayRange(now.AddDate(0, 0, -1), loc), nil
	}

	if strings.Contains(input, ",") {
		parts := strings.SplitN(input, ",", 2)
		start, err := parseEndpoint(strings.TrimSpace(parts[0]), loc)
		if err != nil {
			return Range{}, err
		}
		end, err := parseEndpoint(strings.TrimSpace(parts[1]), loc)
		if err != nil {
			return Range{}, err
		}
		return Range{Start: start, End: end}, nil
	}

	return parseSingle(input, loc)
}

func parseSingle(input string, loc *time.Location) (Range, error) {
	if isDateOnly(input) {
		d, err := parseDateLiteral(input)
		if err != nil {
			return Range{}, err
		}
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
		return dayRange(t, loc), nil
	}
	dt, err := parseDateTimeLiteral(input, loc)
	if err != nil {
		return Range{}, err
	}
	end := core.DateTimeFromTime(dt.UTC().Add(time.Second), tz.ShortName(loc.String()))
	return Range{Start: dt, End: end}, nil
}

func parseEndpoint(input string, loc *time.Location) (core.DateTime, error) {
	if isDateOnly(input) {
		d, err := parseDateLiteral(input)
		if err != nil {
			return core.DateTime{}, err
		}
		t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
		return core.DateTimeFromTime(t, tz.ShortName(loc.String())), nil
	}
	return parseDateTimeLiteral(input, loc)
}

func isDateOnly(s string) bool {
	return len(s) == 10 && strings.Count(s, "-") == 2 && !strings.Contains(s, "T")
}

func parseDateLiteral(s string) (core.Date, error) {
	v, err := zinc.ParseScalar(s)
	if err != nil {
		return core.Date{}, err
	}
	d, ok := v.(core.Date)
	if !ok {
		return core.Date{}, &herr.ParseError{Fragment: s, Msg: "expected a date"}
	}
	return d, nil
}

func parseDateTimeLiteral(s string, loc *time.Location) (core.DateTime, error) {
	v, err := zinc.ParseScalar(s)
	if err != nil {
		return core.DateTime{}, err
	}
	dt, ok := v.(core.DateTime)
	if !ok {
		return core.DateTime{}, &herr.ParseError{Fragment: s, Msg: "expected a dateTime"}
	}
	_ = loc
	return dt, nil
}

// dayRange returns [start of day, start of next day) in loc, for the day
// containing t.
func dayRange(t time.Time, loc *time.Location) Range {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	short := tz.ShortName(loc.String())
	return Range{
		Start: core.DateTimeFromTime(start, short),
		End:   core.DateTimeFromTime(end, short),
	}
}

// Contains reports whether instant (compared as a UTC instant) falls
// within [r.Start, r.End), or is true unconditionally when r is Unbounded.
func (r Range) Contains(instant core.DateTime) bool {
	if r.Unbounded {
		return true
	}
	u := instant.UTC()
	return !u.Before(r.Start.UTC()) && u.Before(r.End.UTC())
}
