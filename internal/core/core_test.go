package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarEqualityCrossKind(t *testing.T) {
	assert.False(t, Str("x").Equal(Uri("x")))
	assert.False(t, Str("x").Equal(Bin("x")))
	assert.True(t, Str("x").Equal(Str("x")))
	assert.True(t, MarkerVal.Equal(MarkerVal))
	assert.False(t, MarkerVal.Equal(NAVal))
}

func TestNumberEqualityAndFormat(t *testing.T) {
	n1 := NewNumber(10, "kW")
	n2 := NewNumber(10, "kW")
	assert.True(t, n1.Equal(n2))
	assert.False(t, n1.Equal(NewNumber(10, "W")))
	assert.Equal(t, "10.0kW", n1.String())

	nan := NewNumber(nanValue(), "")
	assert.False(t, nan.Equal(nan), "NaN must not equal itself, matching IEEE-754")
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestRefValidation(t *testing.T) {
	_, err := NewRef("bad name!")
	assert.Error(t, err)

	r, err := NewRef("site1")
	require.NoError(t, err)
	assert.Equal(t, "@site1", r.String())
}

func TestRefOrderingByNameOnly(t *testing.T) {
	a, _ := NewRef("aaa")
	b, _ := NewRef("bbb")
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestDictOrderIndependentEquality(t *testing.T) {
	d1 := NewDict().Set("a", Str("1")).Set("b", Str("2"))
	d2 := NewDict().Set("b", Str("2")).Set("a", Str("1"))
	assert.True(t, d1.Equal(d2))
	assert.Equal(t, []string{"a", "b"}, d1.Names())
	assert.Equal(t, []string{"b", "a"}, d2.Names())
}

func TestDictHasVsMissing(t *testing.T) {
	d := NewDict().Set("present", MarkerVal)
	assert.True(t, d.Has("present"))
	assert.False(t, d.Has("absent"))
	_, ok := d.Get("absent")
	assert.False(t, ok)
}

func TestListOrderSensitiveEquality(t *testing.T) {
	l1 := List{Str("a"), Str("b")}
	l2 := List{Str("b"), Str("a")}
	assert.False(t, l1.Equal(l2))
	assert.True(t, l1.Equal(List{Str("a"), Str("b")}))
}

func TestGridDuplicateColumnIsSchemaError(t *testing.T) {
	g := NewGrid("3.0")
	require.NoError(t, g.AddCol("id", nil))
	err := g.AddCol("id", nil)
	assert.Error(t, err)
}

func TestGridRowUnknownColumnIsParseError(t *testing.T) {
	g := NewGrid("3.0")
	require.NoError(t, g.AddCol("id", nil))
	row := NewDict().Set("ghost", MarkerVal)
	err := g.AddRow(row)
	assert.Error(t, err)
}

func TestGridCellMissingIsNull(t *testing.T) {
	g := NewGrid("3.0")
	require.NoError(t, g.AddCol("id", nil))
	require.NoError(t, g.AddCol("dis", nil))
	require.NoError(t, g.AddRow(NewDict().Set("id", Str("a"))))
	assert.True(t, IsNull(g.Cell(0, "dis")))
}

func TestGridEqual(t *testing.T) {
	build := func() *Grid {
		g := NewGrid("3.0")
		_ = g.AddCol("id", nil)
		_ = g.AddRow(NewDict().Set("id", Str("a")))
		return g
	}
	assert.True(t, build().Equal(build()))
}

func TestCoordinateHashXOR(t *testing.T) {
	c1 := NewCoordinate(37.5, -122.3)
	c2 := NewCoordinate(37.5, -122.3)
	assert.Equal(t, Hash(c1), Hash(c2))
}

func TestCoordinateStringRoundsToSixDecimalsButWirePreservesPrecision(t *testing.T) {
	c := NewCoordinate(37.54321987, -122.30000001)
	assert.Equal(t, "C(37.54322,-122.3)", c.String())
	assert.Equal(t, "C(37.54321987,-122.30000001)", c.Wire())
	// Full precision survives on the value itself regardless of display form.
	assert.Equal(t, 37.54321987, c.Lat)
}

func TestXStrBytesHex(t *testing.T) {
	x, err := NewXStr("hex", "deadbeef")
	require.NoError(t, err)
	b, err := x.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)
}

func TestXStrInvalidHexFailsAtConstruction(t *testing.T) {
	_, err := NewXStr("hex", "not-hex!")
	assert.Error(t, err)
}

func TestXStrRoundTripsThroughEncodedForm(t *testing.T) {
	x, err := NewXStr("hex", "DEADBEEF")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", x.Encoded())
}

func TestDateTimeBefore(t *testing.T) {
	early := NewDateTime(NewDate(2024, 1, 1), NewTime(0, 0, 0, 0), "UTC", 0)
	late := NewDateTime(NewDate(2024, 1, 2), NewTime(0, 0, 0, 0), "UTC", 0)
	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
}
