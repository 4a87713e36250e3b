// Package tz resolves Haystack's short timezone names (e.g. "New_York")
// against the IANA tz database. Haystack DateTime literals carry the short
// form alone; this package is the one place that knows how to turn that
// into a *time.Location.
package tz

import (
	"fmt"
	"strings"
	"time"
)

// table maps the common Haystack short names to their IANA zones.
// Grounded on the static lookup-table idiom the teacher uses for SQL
// row-format keywords.
var table = map[string]string{
	"UTC":          "UTC",
	"New_York":     "America/New_York",
	"Chicago":      "America/Chicago",
	"Denver":       "America/Denver",
	"Los_Angeles":  "America/Los_Angeles",
	"Anchorage":    "America/Anchorage",
	"Honolulu":     "Pacific/Honolulu",
	"Phoenix":      "America/Phoenix",
	"London":       "Europe/London",
	"Paris":        "Europe/Paris",
	"Berlin":       "Europe/Berlin",
	"Madrid":       "Europe/Madrid",
	"Rome":         "Europe/Rome",
	"Moscow":       "Europe/Moscow",
	"Tokyo":        "Asia/Tokyo",
	"Shanghai":     "Asia/Shanghai",
	"Hong_Kong":    "Asia/Hong_Kong",
	"Singapore":    "Asia/Singapore",
	"Kolkata":      "Asia/Kolkata",
	"Dubai":        "Asia/Dubai",
	"Sydney":       "Australia/Sydney",
	"Melbourne":    "Australia/Melbourne",
	"Brisbane":     "Australia/Brisbane",
	"Auckland":     "Pacific/Auckland",
	"Sao_Paulo":    "America/Sao_Paulo",
	"Mexico_City":  "America/Mexico_City",
	"Toronto":      "America/Toronto",
	"Vancouver":    "America/Vancouver",
	"Johannesburg": "Africa/Johannesburg",
	"Cairo":        "Africa/Cairo",
}

// reverse maps an IANA zone back to its Haystack short name, built once
// from table.
var reverse = func() map[string]string {
	m := make(map[string]string, len(table))
	for short, iana := range table {
		m[iana] = short
	}
	return m
}()

// Load resolves a Haystack short timezone name to a *time.Location. If
// short is not in the table it falls back to a direct time.LoadLocation
// call (works for short names that are already valid IANA zone IDs, e.g.
// "UTC"), then to a basename scan, per spec.md's "resolve by searching
// IANA zones whose basename equals the short form".
func Load(short string) (*time.Location, error) {
	if iana, ok := table[short]; ok {
		loc, err := time.LoadLocation(iana)
		if err == nil {
			return loc, nil
		}
	}
	if loc, err := time.LoadLocation(short); err == nil {
		return loc, nil
	}
	for _, candidate := range knownZones {
		if basename(candidate) == short {
			if loc, err := time.LoadLocation(candidate); err == nil {
				return loc, nil
			}
		}
	}
	return nil, fmt.Errorf("tz: unknown short name %q", short)
}

// ShortName returns the Haystack short name for an IANA zone, falling back
// to the zone's basename when it isn't in the reverse table.
func ShortName(iana string) string {
	if short, ok := reverse[iana]; ok {
		return short
	}
	return basename(iana)
}

func basename(iana string) string {
	i := strings.LastIndexByte(iana, '/')
	if i < 0 {
		return iana
	}
	return iana[i+1:]
}

// knownZones is a closed fallback search list; it deliberately mirrors the
// IANA values of table rather than trying to enumerate the full tz database,
// since time.LoadLocation has no directory-listing API to search against.
var knownZones = func() []string {
	out := make([]string, 0, len(table))
	for _, iana := range table {
		out = append(out, iana)
	}
	return out
}()
