// Package jsoncodec implements the JSON encoding of the Haystack data
// model: scalars other than null/bool are disambiguated with a short
// string prefix, since plain JSON has no tag types. Grounded on the
// teacher's internal/output json formatter: hand-built payload values fed
// through the stdlib encoding/json package rather than a bespoke encoder.
package jsoncodec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"haystack/internal/core"
	"haystack/internal/herr"
)

// gridPayload is the wire shape of a Grid: {"meta":{...},"cols":[...],"rows":[...]}.
type gridPayload struct {
	Meta map[string]interface{}   `json:"meta"`
	Cols []colPayload             `json:"cols"`
	Rows []map[string]interface{} `json:"rows"`
}

type colPayload struct {
	Name string                 `json:"name"`
	Meta map[string]interface{} `json:"-"`
}

// MarshalJSON flattens colPayload.Meta alongside "name", matching
// Haystack's convention of per-column metadata living inline in the column
// object rather than nested under a "meta" key.
func (c colPayload) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(c.Meta)+1)
	for k, v := range c.Meta {
		m[k] = v
	}
	m["name"] = c.Name
	return json.Marshal(m)
}

func (c *colPayload) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	name, _ := m["name"].(string)
	delete(m, "name")
	c.Name = name
	c.Meta = m
	return nil
}

// DumpGrid renders g as JSON bytes.
func DumpGrid(g *core.Grid) ([]byte, error) {
	return json.Marshal(encodeGrid(g))
}

// ParseGrid parses JSON bytes into a Grid.
func ParseGrid(data []byte) (*core.Grid, error) {
	var payload gridPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &herr.ParseError{Msg: "malformed JSON: " + err.Error()}
	}
	return decodeGrid(payload)
}

func encodeGrid(g *core.Grid) gridPayload {
	payload := gridPayload{Meta: encodeDictMap(g.Meta)}
	payload.Meta["ver"] = g.Version
	for _, c := range g.Cols() {
		payload.Cols = append(payload.Cols, colPayload{Name: c.Name, Meta: encodeDictMap(c.Meta)})
	}
	for _, row := range g.Rows() {
		payload.Rows = append(payload.Rows, encodeDictMap(row))
	}
	return payload
}

func decodeGrid(payload gridPayload) (*core.Grid, error) {
	version := "3.0"
	if v, ok := payload.Meta["ver"]; ok {
		if s, ok := v.(string); ok {
			version = s
		}
	}
	g := core.NewGrid(version)
	for name, raw := range payload.Meta {
		if name == "ver" {
			continue
		}
		v, err := DecodeVal(raw)
		if err != nil {
			return nil, err
		}
		g.Meta.Set(name, v)
	}
	for _, c := range payload.Cols {
		meta := core.NewDict()
		for name, raw := range c.Meta {
			v, err := DecodeVal(raw)
			if err != nil {
				return nil, err
			}
			meta.Set(name, v)
		}
		if err := g.AddCol(c.Name, meta); err != nil {
			return nil, err
		}
	}
	for _, rowRaw := range payload.Rows {
		row := core.NewDict()
		for name, raw := range rowRaw {
			v, err := DecodeVal(raw)
			if err != nil {
				return nil, err
			}
			row.Set(name, v)
		}
		if err := g.AddRow(row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func encodeDictMap(d *core.Dict) map[string]interface{} {
	m := make(map[string]interface{}, d.Len())
	for _, name := range d.Names() {
		v, _ := d.Get(name)
		m[name] = EncodeVal(v)
	}
	return m
}

// EncodeVal converts a core.Val into a JSON-marshalable Go value per the
// prefix table in spec.md §4.4.
func EncodeVal(v core.Val) interface{} {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case core.Null:
		return nil
	case core.Marker:
		return "m:"
	case core.NA:
		return "z:"
	case core.Remove:
		return "x:"
	case core.Bool:
		return bool(t)
	case core.Number:
		s := "n:" + formatNumber(t.Value)
		if t.Unit != "" {
			s += " " + t.Unit
		}
		return s
	case core.Str:
		// A plain string that happens to look like "xx:..." is, per
		// spec.md §4.4, still decoded as a plain String on the other side
		// when the prefix isn't one of the known table entries; no escaping
		// is needed here.
		return string(t)
	case core.Uri:
		return "u:" + string(t)
	case core.Ref:
		s := "r:" + t.Name
		if t.HasValue {
			s += " " + t.Value
		}
		return s
	case core.Date:
		return "d:" + t.String()
	case core.Time:
		return "h:" + t.String()
	case core.DateTime:
		return "t:" + t.Date.String() + "T" + t.Time.String() + offsetSuffix(t) + " " + t.TZName
	case core.Coordinate:
		return fmt.Sprintf("c:%s,%s", formatNumber(t.Lat), formatNumber(t.Long))
	case core.XStr:
		return "x:" + t.Type + ":" + t.Encoded()
	case core.Bin:
		return "b:" + string(t)
	case core.List:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = EncodeVal(e)
		}
		return out
	case *core.Dict:
		return encodeDictMap(t)
	case *core.Grid:
		return encodeGrid(t)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func offsetSuffix(dt core.DateTime) string {
	s := dt.String()
	// dt.String() is "<date>T<time><offset> <tz>"; extract just <offset>.
	datePart := dt.Date.String() + "T" + dt.Time.String()
	rest := strings.TrimPrefix(s, datePart)
	sp := strings.IndexByte(rest, ' ')
	if sp < 0 {
		return rest
	}
	return rest[:sp]
}

// DecodeVal parses a JSON-decoded Go value (string/bool/nil/float64/
// []interface{}/map[string]interface{}) into a core.Val per the prefix
// table. Grids are only valid at the top level via ParseGrid but a nested
// grid value (map with "cols") is also accepted here for round-tripping
// nested-grid cells.
func DecodeVal(raw interface{}) (core.Val, error) {
	switch t := raw.(type) {
	case nil:
		return core.Null{}, nil
	case bool:
		return core.Bool(t), nil
	case float64:
		return core.NewNumber(t, ""), nil
	case []interface{}:
		list := make(core.List, len(t))
		for i, e := range t {
			v, err := DecodeVal(e)
			if err != nil {
				return nil, err
			}
			list[i] = v
		}
		return list, nil
	case map[string]interface{}:
		if _, ok := t["cols"]; ok {
			return decodeNestedGrid(t)
		}
		d := core.NewDict()
		for name, e := range t {
			v, err := DecodeVal(e)
			if err != nil {
				return nil, err
			}
			d.Set(name, v)
		}
		return d, nil
	case string:
		return decodeString(t)
	default:
		return nil, &herr.ParseError{Msg: fmt.Sprintf("unrecognized JSON value %v", raw)}
	}
}

func decodeNestedGrid(m map[string]interface{}) (core.Val, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return ParseGrid(data)
}

func decodeString(s string) (core.Val, error) {
	switch {
	case s == "m:":
		return core.MarkerVal, nil
	case s == "z:":
		return core.NAVal, nil
	case s == "x:":
		return core.RemoveVal, nil
	case strings.HasPrefix(s, "x:"):
		// "x:Type:data" is XStr; "x:" alone (handled above) is Remove. The
		// presence of a second colon is the disambiguator spec.md leaves as
		// an open question.
		rest := s[2:]
		i := strings.IndexByte(rest, ':')
		if i < 0 {
			return nil, &herr.ParseError{Fragment: s, Msg: "malformed XStr, expected x:Type:data"}
		}
		return core.NewXStr(rest[:i], rest[i+1:])
	case strings.HasPrefix(s, "n:"):
		return decodeNumber(s[2:])
	case strings.HasPrefix(s, "u:"):
		return core.Uri(s[2:]), nil
	case strings.HasPrefix(s, "r:"):
		return decodeRef(s[2:])
	case strings.HasPrefix(s, "d:"):
		return decodeDate(s[2:])
	case strings.HasPrefix(s, "h:"):
		return decodeTime(s[2:])
	case strings.HasPrefix(s, "t:"):
		return decodeDateTime(s[2:])
	case strings.HasPrefix(s, "c:"):
		return decodeCoord(s[2:])
	case strings.HasPrefix(s, "b:"):
		return core.Bin(s[2:]), nil
	default:
		return core.Str(s), nil
	}
}

func decodeNumber(s string) (core.Val, error) {
	parts := strings.SplitN(s, " ", 2)
	f, err := parseFloatSpecial(parts[0])
	if err != nil {
		return nil, &herr.ParseError{Fragment: s, Msg: "malformed number"}
	}
	unit := ""
	if len(parts) == 2 {
		unit = parts[1]
	}
	return core.NewNumber(f, unit), nil
}

func decodeRef(s string) (core.Val, error) {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) == 2 {
		return core.NewRefDisplay(parts[0], parts[1])
	}
	return core.NewRef(parts[0])
}

func decodeDate(s string) (core.Val, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(s, "%04d-%02d-%02d", &y, &m, &d); err != nil {
		return nil, &herr.ParseError{Fragment: s, Msg: "malformed date"}
	}
	return core.NewDate(y, m, d), nil
}

func decodeTime(s string) (core.Val, error) {
	var h, mi, sec int
	var frac string
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		frac = s[dot+1:]
		s = s[:dot]
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d:%02d", &h, &mi, &sec); err != nil {
		return nil, &herr.ParseError{Fragment: s, Msg: "malformed time"}
	}
	nanos := 0
	if frac != "" {
		for len(frac) < 9 {
			frac += "0"
		}
		n, _ := strconv.Atoi(frac[:9])
		nanos = n
	}
	return core.NewTime(h, mi, sec, nanos), nil
}

func decodeDateTime(s string) (core.Val, error) {
	parts := strings.SplitN(s, " ", 2)
	if len(parts) != 2 {
		return nil, &herr.ParseError{Fragment: s, Msg: "malformed dateTime, expected '<iso> <tz>'"}
	}
	iso, tzName := parts[0], parts[1]
	tIdx := strings.IndexByte(iso, 'T')
	if tIdx < 0 {
		return nil, &herr.ParseError{Fragment: s, Msg: "malformed dateTime, missing T separator"}
	}
	dateVal, err := decodeDate(iso[:tIdx])
	if err != nil {
		return nil, err
	}
	rest := iso[tIdx+1:]
	offsetStr := "Z"
	var timePart string
	if strings.HasSuffix(rest, "Z") {
		timePart = strings.TrimSuffix(rest, "Z")
	} else if i := strings.LastIndexAny(rest, "+-"); i > 0 {
		timePart = rest[:i]
		offsetStr = rest[i:]
	} else {
		timePart = rest
	}
	timeVal, err := decodeTime(timePart)
	if err != nil {
		return nil, err
	}
	offsetSecs := 0
	if offsetStr != "Z" {
		sign := 1
		if offsetStr[0] == '-' {
			sign = -1
		}
		var oh, om int
		fmt.Sscanf(offsetStr[1:], "%02d:%02d", &oh, &om)
		offsetSecs = sign * (oh*3600 + om*60)
	}
	return core.NewDateTime(dateVal.(core.Date), timeVal.(core.Time), tzName, offsetSecs), nil
}

func decodeCoord(s string) (core.Val, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, &herr.ParseError{Fragment: s, Msg: "malformed coordinate"}
	}
	lat, err1 := strconv.ParseFloat(parts[0], 64)
	long, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return nil, &herr.ParseError{Fragment: s, Msg: "malformed coordinate"}
	}
	return core.NewCoordinate(lat, long), nil
}

func parseFloatSpecial(s string) (float64, error) {
	switch s {
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	default:
		return strconv.ParseFloat(s, 64)
	}
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
