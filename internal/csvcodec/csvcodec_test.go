package csvcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haystack/internal/core"
)

func TestParseRowWithMarkerBoolRefAndEmpty(t *testing.T) {
	text := "a,b,c,d\n✓,,true,@x\n"
	g, err := ParseGrid(text)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumRows())

	assert.Equal(t, core.MarkerVal, g.Cell(0, "a"))
	assert.True(t, core.IsNull(g.Cell(0, "b")))
	assert.Equal(t, core.Bool(true), g.Cell(0, "c"))
	ref, ok := g.Cell(0, "d").(core.Ref)
	require.True(t, ok)
	assert.Equal(t, "x", ref.Name)
}

func TestParseFallsBackToStringOnUnparsableScalar(t *testing.T) {
	text := "a\nhello world\n"
	g, err := ParseGrid(text)
	require.NoError(t, err)
	assert.Equal(t, core.Str("hello world"), g.Cell(0, "a"))
}

func TestExtraColumnsIsParseError(t *testing.T) {
	text := "a,b\n1,2,3\n"
	_, err := ParseGrid(text)
	assert.Error(t, err)
}

func TestRoundTripMetadataFreeGrid(t *testing.T) {
	g := core.NewGrid("3.0")
	require.NoError(t, g.AddCol("a", nil))
	require.NoError(t, g.AddCol("b", nil))
	require.NoError(t, g.AddRow(core.NewDict().Set("a", core.MarkerVal).Set("b", core.Bool(true))))

	dumped, err := DumpGrid(g)
	require.NoError(t, err)
	reparsed, err := ParseGrid(dumped)
	require.NoError(t, err)
	assert.True(t, g.Equal(reparsed))
}
