package rangeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyInputIsUnbounded(t *testing.T) {
	r, err := Resolve("", time.UTC)
	require.NoError(t, err)
	assert.True(t, r.Unbounded)
}

func TestDatePairIsHalfOpenDayRange(t *testing.T) {
	r, err := Resolve("2024-06-15,2024-06-16", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 2024, r.Start.Date.Year)
	assert.Equal(t, 15, r.Start.Date.Day)
	assert.Equal(t, 16, r.End.Date.Day)
}

func TestPointDateTimeIsOneSecondWindow(t *testing.T) {
	r, err := Resolve("2024-06-15T10:00:00Z", time.UTC)
	require.NoError(t, err)
	assert.False(t, r.Unbounded)
	diff := r.End.UTC().Sub(r.Start.UTC())
	assert.Equal(t, time.Second, diff)
}

func TestMalformedRangeIsError(t *testing.T) {
	_, err := Resolve("not-a-date", time.UTC)
	assert.Error(t, err)
}
