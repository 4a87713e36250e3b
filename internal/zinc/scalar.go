package zinc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"haystack/internal/core"
	"haystack/internal/herr"
	"haystack/internal/tz"
)

var (
	dateRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	timeRe     = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(?:\.(\d+))?$`)
	dateTimeRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:\.(\d+))?(Z|[+-]\d{2}:\d{2})$`)
	numberRe   = regexp.MustCompile(`^-?(?:\d[\d_]*)(?:\.\d+)?(?:[eE][+-]?\d+)?(%|[A-Za-z_/°$]+)?$`)
)

// parseNumberLike classifies a raw "number-like" lexer token (see
// Lexer.readNumberLike) as a Number, Date, or Time literal. DateTime
// literals are classified the same way but the caller (the Parser, which
// has token lookahead) is responsible for then consuming a following bare
// word as the TZ name.
func parseNumberLike(raw string) (core.Val, error) {
	if raw == "INF" {
		return core.NewNumber(inf(1), ""), nil
	}
	if raw == "-INF" {
		return core.NewNumber(inf(-1), ""), nil
	}
	if raw == "NaN" {
		return core.NewNumber(nan(), ""), nil
	}
	if m := dateTimeRe.FindStringSubmatch(raw); m != nil {
		return parseDateTimeMatch(m, "")
	}
	if m := dateRe.FindStringSubmatch(raw); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return core.NewDate(y, mo, d), nil
	}
	if m := timeRe.FindStringSubmatch(raw); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		s, _ := strconv.Atoi(m[3])
		nanos := fracToNanos(m[4])
		return core.NewTime(h, mi, s, nanos), nil
	}
	if m := numberRe.FindStringSubmatch(raw); m != nil {
		unit := m[1]
		numPart := strings.TrimSuffix(raw, unit)
		numPart = strings.ReplaceAll(numPart, "_", "")
		f, err := strconv.ParseFloat(numPart, 64)
		if err != nil {
			return nil, &herr.ParseError{Fragment: raw, Msg: "malformed number"}
		}
		return core.NewNumber(f, unit), nil
	}
	return nil, &herr.ParseError{Fragment: raw, Msg: "unrecognized number/date/time literal"}
}

// parseDateTimeWithTZ combines a dateTimeRe match with an explicit TZ name
// token that followed it, resolving the offset/TZ-name conflict per
// spec.md: "if the offset does not match the TZ, the TZ name wins."
func parseDateTimeWithTZ(raw, tzName string) (core.Val, error) {
	m := dateTimeRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, &herr.ParseError{Fragment: raw, Msg: "malformed dateTime literal"}
	}
	return parseDateTimeMatch(m, tzName)
}

func parseDateTimeMatch(m []string, tzName string) (core.Val, error) {
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	h, _ := strconv.Atoi(m[4])
	mi, _ := strconv.Atoi(m[5])
	s, _ := strconv.Atoi(m[6])
	nanos := fracToNanos(m[7])
	offsetSecs, err := parseOffset(m[8])
	if err != nil {
		return nil, err
	}

	name := tzName
	if name == "" {
		if m[8] == "Z" {
			name = "UTC"
		} else {
			name = tz.ShortName(fmt.Sprintf("Etc/GMT%+d", -offsetSecs/3600))
		}
	} else if loc, err := tz.Load(name); err == nil {
		// The TZ name wins over a mismatched numeric offset: recompute the
		// offset by asking the zone what it actually observes at this wall
		// clock instant. This can differ from the literal's offset if the
		// author hand-wrote a stale or DST-inconsistent value.
		t := computeWallClock(y, mo, d, h, mi, s, nanos, loc)
		_, actual := t.Zone()
		offsetSecs = actual
	}

	return core.NewDateTime(core.NewDate(y, mo, d), core.NewTime(h, mi, s, nanos), name, offsetSecs), nil
}

func parseOffset(s string) (int, error) {
	if s == "Z" {
		return 0, nil
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	h, err1 := strconv.Atoi(s[1:3])
	m, err2 := strconv.Atoi(s[4:6])
	if err1 != nil || err2 != nil {
		return 0, &herr.ParseError{Fragment: s, Msg: "malformed offset"}
	}
	return sign * (h*3600 + m*60), nil
}

func fracToNanos(frac string) int {
	if frac == "" {
		return 0
	}
	for len(frac) < 9 {
		frac += "0"
	}
	frac = frac[:9]
	n, _ := strconv.Atoi(frac)
	return n
}
