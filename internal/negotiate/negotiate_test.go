package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualWeightPrefersCSVThenZincThenJSON(t *testing.T) {
	f, err := Negotiate("text/csv, text/zinc, application/json")
	require.NoError(t, err)
	assert.Equal(t, CSV, f)
}

func TestExplicitQValuesOverridePreference(t *testing.T) {
	f, err := Negotiate("text/csv;q=0.1, application/json;q=0.9")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)
}

func TestNoMatchIsNotAcceptable(t *testing.T) {
	_, err := Negotiate("application/xml")
	assert.Error(t, err)
}

func TestWildcardAcceptsAnything(t *testing.T) {
	f, err := Negotiate("*/*")
	require.NoError(t, err)
	assert.Equal(t, CSV, f)
}

func TestEmptyAcceptDefaultsToZinc(t *testing.T) {
	f, err := Negotiate("")
	require.NoError(t, err)
	assert.Equal(t, Zinc, f)
}
