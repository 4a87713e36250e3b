package zinc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haystack/internal/core"
)

func TestParseSimpleGrid(t *testing.T) {
	input := "ver:\"3.0\"\nname,val\n\"hello\",\n"
	g, err := ParseGrid(input)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumCols())
	assert.Equal(t, 1, g.NumRows())
	assert.Equal(t, core.Str("hello"), g.Cell(0, "name"))
	assert.True(t, core.IsNull(g.Cell(0, "val")))
}

func TestParseDateTimeAndNumberWithUnit(t *testing.T) {
	input := "ver:\"3.0\"\nts,v\n2020-01-02T03:04:05Z UTC,42°C\n"
	g, err := ParseGrid(input)
	require.NoError(t, err)
	dt, ok := g.Cell(0, "ts").(core.DateTime)
	require.True(t, ok)
	assert.Equal(t, "UTC", dt.TZName)
	assert.Equal(t, 2020, dt.Date.Year)

	num, ok := g.Cell(0, "v").(core.Number)
	require.True(t, ok)
	assert.Equal(t, 42.0, num.Value)
	assert.Equal(t, "°C", num.Unit)
}

func TestRoundTripSimpleGrid(t *testing.T) {
	g := core.NewGrid("3.0")
	require.NoError(t, g.AddCol("name", nil))
	require.NoError(t, g.AddCol("val", nil))
	require.NoError(t, g.AddRow(core.NewDict().Set("name", core.Str("hello"))))

	dumped := DumpGrid(g)
	reparsed, err := ParseGrid(dumped)
	require.NoError(t, err)
	assert.True(t, g.Equal(reparsed))
}

func TestParseScalarForCSVDelegation(t *testing.T) {
	v, err := ParseScalar("42")
	require.NoError(t, err)
	n, ok := v.(core.Number)
	require.True(t, ok)
	assert.Equal(t, 42.0, n.Value)

	_, err = ParseScalar("not a valid scalar @@@")
	assert.Error(t, err)
}

func TestParseCoordinate(t *testing.T) {
	input := "ver:\"3.0\"\ngeo\nC(37.5,-122.3)\n"
	g, err := ParseGrid(input)
	require.NoError(t, err)
	c, ok := g.Cell(0, "geo").(core.Coordinate)
	require.True(t, ok)
	assert.InDelta(t, 37.5, c.Lat, 0.0001)
	assert.InDelta(t, -122.3, c.Long, 0.0001)
}

func TestParseListAndDict(t *testing.T) {
	input := "ver:\"3.0\"\na,b\n[1,2,3],{x:1 y}\n"
	g, err := ParseGrid(input)
	require.NoError(t, err)
	l, ok := g.Cell(0, "a").(core.List)
	require.True(t, ok)
	assert.Len(t, l, 3)

	d, ok := g.Cell(0, "b").(*core.Dict)
	require.True(t, ok)
	assert.True(t, d.Has("y"))
}

func TestDuplicateColumnIsSchemaError(t *testing.T) {
	_, err := ParseGrid("ver:\"3.0\"\nid,id\n")
	assert.Error(t, err)
}

func TestParseNestedGrid(t *testing.T) {
	input := "ver:\"3.0\"\na,b\n1,<<\nver:\"3.0\"\nx\n9\n>>\n"
	g, err := ParseGrid(input)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumRows())

	inner, ok := g.Cell(0, "b").(*core.Grid)
	require.True(t, ok)
	assert.Equal(t, 1, inner.NumRows())
	num, ok := inner.Cell(0, "x").(core.Number)
	require.True(t, ok)
	assert.Equal(t, 9.0, num.Value)
}

func TestRoundTripNestedGrid(t *testing.T) {
	inner := core.NewGrid("3.0")
	require.NoError(t, inner.AddCol("x", nil))
	require.NoError(t, inner.AddRow(core.NewDict().Set("x", core.NewNumber(9, ""))))

	outer := core.NewGrid("3.0")
	require.NoError(t, outer.AddCol("a", nil))
	require.NoError(t, outer.AddCol("b", nil))
	require.NoError(t, outer.AddRow(core.NewDict().Set("a", core.NewNumber(1, "")).Set("b", inner)))

	dumped := DumpGrid(outer)
	reparsed, err := ParseGrid(dumped)
	require.NoError(t, err)
	assert.True(t, outer.Equal(reparsed))
}

func TestParseTwoSiblingNestedGridsAfterEachOther(t *testing.T) {
	input := "ver:\"3.0\"\ng\n<<\nver:\"3.0\"\nx\n1\n>>\n<<\nver:\"3.0\"\nx\n2\n>>\n"
	g, err := ParseGrid(input)
	require.NoError(t, err)
	require.Equal(t, 2, g.NumRows())
	first, ok := g.Cell(0, "g").(*core.Grid)
	require.True(t, ok)
	assert.Equal(t, core.NewNumber(1, ""), first.Cell(0, "x"))
	second, ok := g.Cell(1, "g").(*core.Grid)
	require.True(t, ok)
	assert.Equal(t, core.NewNumber(2, ""), second.Cell(0, "x"))
}

func TestRecursionDepthGuard(t *testing.T) {
	// Build a deeply nested grid literal exceeding maxNestDepth.
	inner := "ver:\"3.0\"\na\n1\n"
	for i := 0; i < maxNestDepth+2; i++ {
		inner = "ver:\"3.0\"\na\n<<\n" + inner + ">>\n"
	}
	_, err := ParseGrid(inner)
	assert.Error(t, err)
}
