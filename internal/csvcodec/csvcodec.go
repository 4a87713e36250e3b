// Package csvcodec implements the lossy CSV encoding: a flat header row
// plus data rows, no grid or column metadata, no nested grids. Cell
// parsing delegates to the Zinc scalar grammar for anything that isn't one
// of CSV's own special forms, grounded on the Python original's
// csvparser.parse_scalar (try the Zinc grammar, fall back to a plain
// string on failure).
package csvcodec

import (
	"encoding/csv"
	"strings"

	"haystack/internal/core"
	"haystack/internal/herr"
	"haystack/internal/zinc"
)

const markerChar = "✓"

// ParseGrid parses CSV text into a Grid. The first row is the column list;
// every subsequent row is a data row.
func ParseGrid(text string) (*core.Grid, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, &herr.ParseError{Msg: "malformed CSV: " + err.Error()}
	}
	if len(records) == 0 {
		return core.NewGrid("3.0"), nil
	}

	g := core.NewGrid("3.0")
	headers := records[0]
	for _, h := range headers {
		if err := g.AddCol(h, nil); err != nil {
			return nil, err
		}
	}

	for _, record := range records[1:] {
		if len(record) > len(headers) {
			return nil, &herr.ParseError{Msg: "row has more cells than header columns"}
		}
		row := core.NewDict()
		for i, cell := range record {
			v, err := parseCell(cell)
			if err != nil {
				return nil, err
			}
			if core.IsNull(v) {
				continue
			}
			row.Set(headers[i], v)
		}
		if err := g.AddRow(row); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func parseCell(cell string) (core.Val, error) {
	switch {
	case cell == "":
		return core.Null{}, nil
	case cell == markerChar:
		return core.MarkerVal, nil
	case cell == "true":
		return core.Bool(true), nil
	case cell == "false":
		return core.Bool(false), nil
	case strings.HasPrefix(cell, "@"):
		rest := cell[1:]
		parts := strings.SplitN(rest, " ", 2)
		if len(parts) == 2 {
			return core.NewRefDisplay(parts[0], parts[1])
		}
		return core.NewRef(parts[0])
	}
	v, err := zinc.ParseScalar(cell)
	if err != nil {
		// Not a recognized Zinc scalar: treat the cell as a plain string,
		// matching csvparser.parse_scalar's except-fallback.
		return core.Str(cell), nil
	}
	return v, nil
}

// DumpGrid renders g as CSV text. Grid and column metadata, and any nested
// grid cells, are silently dropped — CSV cannot represent them.
func DumpGrid(g *core.Grid) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	cols := g.Cols()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Name
	}
	if err := w.Write(headers); err != nil {
		return "", err
	}

	for _, row := range g.Rows() {
		record := make([]string, len(cols))
		for i, c := range cols {
			v, ok := row.Get(c.Name)
			if !ok || core.IsNull(v) {
				continue
			}
			record[i] = dumpCell(v)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func dumpCell(v core.Val) string {
	switch t := v.(type) {
	case core.Marker:
		return markerChar
	case core.Bool:
		if t {
			return "true"
		}
		return "false"
	case core.Ref:
		if t.HasValue {
			return "@" + t.Name + " " + t.Value
		}
		return "@" + t.Name
	case core.Str:
		// Plain text, unquoted by us: encoding/csv applies RFC-4180 quoting
		// itself when the cell needs it (embedded comma, quote, newline).
		return string(t)
	case *core.Grid:
		return ""
	default:
		return zinc.DumpScalar(v)
	}
}
