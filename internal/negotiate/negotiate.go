// Package negotiate implements HTTP Accept-header format negotiation for
// the three codecs, grounded on internal/dialect's capability-registry
// pattern generalized from a fixed `--format` flag to full Accept parsing.
package negotiate

import (
	"mime"
	"sort"
	"strconv"
	"strings"

	"haystack/internal/herr"
)

// Format identifies a supported wire format.
type Format string

const (
	Zinc Format = "zinc"
	JSON Format = "json"
	CSV  Format = "csv"
)

// mimeTypes maps each Format to its canonical media type, per spec.md §6.1.
var mimeTypes = map[Format]string{
	Zinc: "text/zinc",
	JSON: "application/json",
	CSV:  "text/csv",
}

// preference is the tie-break order among equally-weighted Accept entries:
// csv > zinc > json.
var preference = []Format{CSV, Zinc, JSON}

type weighted struct {
	mediaType string
	q         float64
}

// Negotiate parses an HTTP Accept header and returns the best matching
// Format among the ones this server supports, applying csv > zinc > json
// preference on ties. Returns *herr.NotAcceptableError if nothing matches.
func Negotiate(accept string) (Format, error) {
	if strings.TrimSpace(accept) == "" {
		return Zinc, nil
	}

	entries, err := parseAccept(accept)
	if err != nil {
		return "", &herr.NotAcceptableError{Accept: accept}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].q > entries[j].q })

	best := Format("")
	bestQ := -1.0
	for _, e := range entries {
		if e.q <= 0 {
			continue
		}
		for _, f := range matchingFormats(e.mediaType) {
			if e.q > bestQ || (e.q == bestQ && rank(f) < rank(best)) {
				best, bestQ = f, e.q
			}
		}
	}
	if best == "" {
		return "", &herr.NotAcceptableError{Accept: accept}
	}
	return best, nil
}

func rank(f Format) int {
	for i, p := range preference {
		if p == f {
			return i
		}
	}
	return len(preference)
}

func matchingFormats(mediaType string) []Format {
	if mediaType == "*/*" {
		return preference
	}
	var out []Format
	for f, mt := range mimeTypes {
		if mediaType == mt || matchesWildcardSubtype(mediaType, mt) {
			out = append(out, f)
		}
	}
	return out
}

func matchesWildcardSubtype(pattern, mt string) bool {
	if !strings.HasSuffix(pattern, "/*") {
		return false
	}
	return strings.HasPrefix(mt, strings.TrimSuffix(pattern, "*"))
}

func parseAccept(accept string) ([]weighted, error) {
	var out []weighted
	for _, part := range strings.Split(accept, ",") {
		mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		q := 1.0
		if qs, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(qs, 64); err == nil {
				q = parsed
			}
		}
		out = append(out, weighted{mediaType: mt, q: q})
	}
	if len(out) == 0 {
		return nil, &herr.NotAcceptableError{Accept: accept}
	}
	return out, nil
}

// MimeType returns the canonical media type for f.
func MimeType(f Format) string {
	return mimeTypes[f]
}
