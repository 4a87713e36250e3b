package core

import (
	"fmt"

	"haystack/internal/herr"
)

// Column is a named grid column carrying its own metadata dict (units,
// display name, and other per-column tags).
type Column struct {
	Name string
	Meta *Dict
}

// Grid is the central tagged-entity container: an ordered set of columns,
// each with its own metadata, and an ordered set of rows, each a Dict keyed
// by column name. Grid is itself a Val so it can nest inside other grids'
// cells (the Zinc "<< >>" form).
type Grid struct {
	Version string
	Meta    *Dict
	cols    []Column
	colIdx  map[string]int
	rows    []*Dict
}

// NewGrid returns an empty grid with the given version tag (typically
// "3.0") and no columns or rows.
func NewGrid(version string) *Grid {
	return &Grid{
		Version: version,
		Meta:    NewDict(),
		colIdx:  make(map[string]int),
	}
}

func (g *Grid) Kind() Kind { return KindGrid }

// AddCol appends a column. A duplicate name is a structural violation of
// the grid, not a malformed-input condition, so it is reported as a
// SchemaError rather than a ParseError.
func (g *Grid) AddCol(name string, meta *Dict) error {
	if _, exists := g.colIdx[name]; exists {
		return &herr.SchemaError{Msg: fmt.Sprintf("duplicate column %q", name)}
	}
	if meta == nil {
		meta = NewDict()
	}
	g.colIdx[name] = len(g.cols)
	g.cols = append(g.cols, Column{Name: name, Meta: meta})
	return nil
}

// Cols returns the columns in declaration order.
func (g *Grid) Cols() []Column {
	out := make([]Column, len(g.cols))
	copy(out, g.cols)
	return out
}

// Col returns the column named name and whether it exists.
func (g *Grid) Col(name string) (Column, bool) {
	i, ok := g.colIdx[name]
	if !ok {
		return Column{}, false
	}
	return g.cols[i], true
}

func (g *Grid) NumCols() int { return len(g.cols) }
func (g *Grid) NumRows() int { return len(g.rows) }

// AddRow appends row, validating that every tag name in it names a known
// column. A codec parsing untrusted input that encounters a tag naming no
// declared column reports it as a ParseError (malformed document); code
// building a grid programmatically against columns it controls will never
// hit this path. Missing columns are left absent rather than filled with an
// explicit Null, matching Dict's has/missing distinction.
func (g *Grid) AddRow(row *Dict) error {
	for _, name := range row.Names() {
		if _, ok := g.colIdx[name]; !ok {
			return &herr.ParseError{Fragment: name, Msg: "row references unknown column"}
		}
	}
	g.rows = append(g.rows, row)
	return nil
}

// Row returns the row at index i.
func (g *Grid) Row(i int) *Dict {
	return g.rows[i]
}

// Rows returns the rows in order.
func (g *Grid) Rows() []*Dict {
	out := make([]*Dict, len(g.rows))
	copy(out, g.rows)
	return out
}

// Cell returns the value of col in row i, or Null if absent.
func (g *Grid) Cell(i int, col string) Val {
	v, ok := g.rows[i].Get(col)
	if !ok {
		return Null{}
	}
	return v
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%d cols, %d rows)", len(g.cols), len(g.rows))
}

// Equal compares version, grid meta, column set (name + meta, order-
// sensitive since column order is observable through Cols/Cell), and rows
// in order.
func (g *Grid) Equal(o Val) bool {
	og, ok := o.(*Grid)
	if !ok || og.Version != g.Version || len(og.cols) != len(g.cols) || len(og.rows) != len(g.rows) {
		return false
	}
	if !g.Meta.Equal(og.Meta) {
		return false
	}
	for i, c := range g.cols {
		oc := og.cols[i]
		if c.Name != oc.Name || !c.Meta.Equal(oc.Meta) {
			return false
		}
	}
	for i, r := range g.rows {
		if !r.Equal(og.rows[i]) {
			return false
		}
	}
	return true
}
