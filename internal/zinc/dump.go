package zinc

import (
	"fmt"
	"strconv"
	"strings"

	"haystack/internal/core"
)

// DumpGrid renders g in canonical Zinc text form. Dumping then re-parsing
// must produce an equal grid (the round-trip property in spec.md §8).
func DumpGrid(g *core.Grid) string {
	var sb strings.Builder
	dumpGrid(&sb, g)
	return sb.String()
}

func dumpGrid(sb *strings.Builder, g *core.Grid) {
	sb.WriteString("ver:")
	sb.WriteString(strconv.Quote(g.Version))
	for _, name := range g.Meta.Names() {
		v, _ := g.Meta.Get(name)
		sb.WriteByte(' ')
		dumpTag(sb, name, v)
	}
	sb.WriteByte('\n')

	cols := g.Cols()
	for i, c := range cols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.Name)
		for _, name := range c.Meta.Names() {
			v, _ := c.Meta.Get(name)
			sb.WriteByte(' ')
			dumpTag(sb, name, v)
		}
	}
	sb.WriteByte('\n')

	for _, row := range g.Rows() {
		for i, c := range cols {
			if i > 0 {
				sb.WriteByte(',')
			}
			v, ok := row.Get(c.Name)
			if !ok || core.IsNull(v) {
				continue
			}
			dumpScalar(sb, v)
		}
		sb.WriteByte('\n')
	}
}

func dumpTag(sb *strings.Builder, name string, v core.Val) {
	sb.WriteString(name)
	if _, ok := v.(core.Marker); ok {
		return
	}
	sb.WriteByte(':')
	dumpScalar(sb, v)
}

// DumpScalar renders a single scalar in canonical Zinc form; exported for
// the CSV codec, which uses it for every non-special cell.
func DumpScalar(v core.Val) string {
	var sb strings.Builder
	dumpScalar(&sb, v)
	return sb.String()
}

func dumpScalar(sb *strings.Builder, v core.Val) {
	switch t := v.(type) {
	case core.Null:
		// Null grid cells are omitted by the caller (empty cell); a Null
		// dumped standalone or inside a list or dict is written as N.
		sb.WriteString("N")
	case core.Marker:
		sb.WriteString("M")
	case core.NA:
		sb.WriteString("NA")
	case core.Remove:
		sb.WriteString("R")
	case core.Bool:
		sb.WriteString(t.String())
	case core.Number:
		sb.WriteString(t.String())
	case core.Str:
		sb.WriteString(dumpString(string(t)))
	case core.Uri:
		sb.WriteByte('`')
		sb.WriteString(string(t))
		sb.WriteByte('`')
	case core.Ref:
		sb.WriteByte('@')
		sb.WriteString(t.Name)
		if t.HasValue {
			sb.WriteByte(' ')
			sb.WriteString(dumpString(t.Value))
		}
	case core.Date:
		sb.WriteString(t.String())
	case core.Time:
		sb.WriteString(t.String())
	case core.DateTime:
		sb.WriteString(t.String())
	case core.Coordinate:
		sb.WriteString(t.Wire())
	case core.XStr:
		sb.WriteString(t.String())
	case core.Bin:
		sb.WriteString("Bin(")
		sb.WriteString(string(t))
		sb.WriteByte(')')
	case core.List:
		sb.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			dumpScalar(sb, e)
		}
		sb.WriteByte(']')
	case *core.Dict:
		sb.WriteByte('{')
		for i, name := range t.Names() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			v, _ := t.Get(name)
			dumpTag(sb, name, v)
		}
		sb.WriteByte('}')
	case *core.Grid:
		sb.WriteString("<<\n")
		dumpGrid(sb, t)
		sb.WriteString(">>")
	default:
		sb.WriteString(fmt.Sprintf("%v", v))
	}
}

func dumpString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '$':
			sb.WriteString(`\$`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
