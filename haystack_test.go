package haystack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type upperRegistry struct{}

func (upperRegistry) Resolve(label string) (string, bool) {
	if label == "degC" {
		return "°C", true
	}
	return "", false
}

func TestDefaultRegistryResolvesNothing(t *testing.T) {
	SetUnitRegistry(nil)
	_, ok := ResolveUnit("degC")
	assert.False(t, ok)
}

func TestCustomRegistryIsConsulted(t *testing.T) {
	SetUnitRegistry(upperRegistry{})
	defer SetUnitRegistry(nil)
	sym, ok := ResolveUnit("degC")
	assert.True(t, ok)
	assert.Equal(t, "°C", sym)
}
