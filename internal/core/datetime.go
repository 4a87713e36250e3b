package core

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day or zone component.
type Date struct {
	Year  int
	Month int // 1-12
	Day   int
}

func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func (d Date) Kind() Kind { return KindDate }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) Equal(o Val) bool {
	od, ok := o.(Date)
	return ok && od == d
}

func (d Date) Less(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Time is a time-of-day with no date or zone component.
type Time struct {
	Hour   int
	Minute int
	Second int
	Nanos  int
}

func NewTime(hour, minute, second, nanos int) Time {
	return Time{Hour: hour, Minute: minute, Second: second, Nanos: nanos}
}

func (t Time) Kind() Kind { return KindTime }

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanos != 0 {
		frac := fmt.Sprintf("%09d", t.Nanos)
		for len(frac) > 0 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
		s += "." + frac
	}
	return s
}

func (t Time) Equal(o Val) bool {
	ot, ok := o.(Time)
	return ok && ot == t
}

// DateTime is an instant tied to a named Haystack timezone. TZName follows
// the short Haystack zone-name convention (e.g. "New_York", "UTC"); Offset
// is the zone's UTC offset in seconds at this instant, carried alongside
// TZName because Zinc/JSON both encode the numeric offset explicitly rather
// than requiring a tz database lookup to round-trip.
type DateTime struct {
	Date   Date
	Time   Time
	TZName string
	Offset int
}

func NewDateTime(date Date, t Time, tzName string, offsetSeconds int) DateTime {
	return DateTime{Date: date, Time: t, TZName: tzName, Offset: offsetSeconds}
}

func (dt DateTime) Kind() Kind { return KindDateTime }

func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%s%s %s", dt.Date.String(), dt.Time.String(), offsetString(dt.Offset), dt.TZName)
}

func (dt DateTime) Equal(o Val) bool {
	odt, ok := o.(DateTime)
	return ok && odt == dt
}

// UTC converts to a standard library time.Time in UTC, losing the TZName
// label but preserving the instant. Used by the filter evaluator and the
// date-range resolver for interval arithmetic.
func (dt DateTime) UTC() time.Time {
	loc := time.FixedZone(dt.TZName, dt.Offset)
	t := time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day,
		dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Nanos, loc)
	return t.UTC()
}

// Before reports whether dt occurs strictly before other, comparing the
// underlying instants rather than the display zone.
func (dt DateTime) Before(other DateTime) bool {
	return dt.UTC().Before(other.UTC())
}

func offsetString(seconds int) string {
	if seconds == 0 {
		return "Z"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// DateTimeFromTime builds a DateTime from a standard library time.Time,
// using the zone's abbreviated name as TZName unless tzName is supplied.
func DateTimeFromTime(t time.Time, tzName string) DateTime {
	_, offset := t.Zone()
	name := tzName
	if name == "" {
		name, _ = t.Zone()
	}
	return DateTime{
		Date:   NewDate(t.Year(), int(t.Month()), t.Day()),
		Time:   NewTime(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()),
		TZName: name,
		Offset: offset,
	}
}
