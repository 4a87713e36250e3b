package jsoncodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haystack/internal/core"
)

func TestEncodeRefWithDisplay(t *testing.T) {
	r, err := core.NewRefDisplay("abc", "Boiler 1")
	require.NoError(t, err)
	assert.Equal(t, "r:abc Boiler 1", EncodeVal(r))
}

func TestEncodeNumberNoUnit(t *testing.T) {
	assert.Equal(t, "n:3.14", EncodeVal(core.NewNumber(3.14, "")))
}

func TestEncodeNumberNegInfWithUnit(t *testing.T) {
	assert.Equal(t, "n:-INF m", EncodeVal(core.NewNumber(math.Inf(-1), "m")))
}

func TestXStrVsRemoveDisambiguation(t *testing.T) {
	v, err := DecodeVal("x:")
	require.NoError(t, err)
	assert.Equal(t, core.RemoveVal, v)

	v, err = DecodeVal("x:Hex:deadbeef")
	require.NoError(t, err)
	xs, ok := v.(core.XStr)
	require.True(t, ok)
	assert.Equal(t, "Hex", xs.Type)
	assert.Equal(t, "deadbeef", xs.Encoded())
}

func TestXStrKnownHexEncodingDecodesAndRejectsMalformed(t *testing.T) {
	v, err := DecodeVal("x:hex:deadbeef")
	require.NoError(t, err)
	xs, ok := v.(core.XStr)
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, xs.Raw)
	assert.Equal(t, "deadbeef", xs.Encoded())

	_, err = DecodeVal("x:hex:zz")
	assert.Error(t, err)
}

func TestRoundTripGrid(t *testing.T) {
	g := core.NewGrid("3.0")
	require.NoError(t, g.AddCol("id", nil))
	require.NoError(t, g.AddCol("dis", nil))
	require.NoError(t, g.AddRow(core.NewDict().Set("id", mustRef(t, "a")).Set("dis", core.Str("A"))))

	data, err := DumpGrid(g)
	require.NoError(t, err)
	reparsed, err := ParseGrid(data)
	require.NoError(t, err)
	assert.True(t, g.Equal(reparsed))
}

func mustRef(t *testing.T, name string) core.Ref {
	r, err := core.NewRef(name)
	require.NoError(t, err)
	return r
}

func TestDecodeMarkerNAMarkerPrefixes(t *testing.T) {
	v, _ := DecodeVal("m:")
	assert.Equal(t, core.MarkerVal, v)
	v, _ = DecodeVal("z:")
	assert.Equal(t, core.NAVal, v)
}

func TestDecodePlainStringNotPrefixed(t *testing.T) {
	v, err := DecodeVal("plain string")
	require.NoError(t, err)
	assert.Equal(t, core.Str("plain string"), v)
}
