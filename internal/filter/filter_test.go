package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haystack/internal/core"
)

func mustRef(t *testing.T, name string) core.Ref {
	r, err := core.NewRef(name)
	require.NoError(t, err)
	return r
}

func buildWorld(t *testing.T, cityValue string) (*core.Dict, Lookup) {
	entity := core.NewDict().Marker("site").Set("equipRef", mustRef(t, "eq1"))
	eq1 := core.NewDict().Set("siteRef", mustRef(t, "s1"))
	s1 := core.NewDict().Set("geoCity", core.Str(cityValue))

	lookup := func(ref core.Ref) (*core.Dict, bool) {
		switch ref.Name {
		case "eq1":
			return eq1, true
		case "s1":
			return s1, true
		default:
			return nil, false
		}
	}
	return entity, lookup
}

func TestPathTraversalScenario(t *testing.T) {
	expr, err := Parse(`site and equipRef->siteRef->geoCity == "Chicago"`)
	require.NoError(t, err)

	entity, lookup := buildWorld(t, "Chicago")
	assert.True(t, Eval(expr, entity, lookup))

	entity2, lookup2 := buildWorld(t, "Detroit")
	assert.False(t, Eval(expr, entity2, lookup2))
}

func TestUnresolvableRefIsFalseNotError(t *testing.T) {
	expr, err := Parse(`site and equipRef->siteRef->geoCity == "Chicago"`)
	require.NoError(t, err)

	entity := core.NewDict().Marker("site").Set("equipRef", mustRef(t, "ghost"))
	lookup := func(core.Ref) (*core.Dict, bool) { return nil, false }
	assert.False(t, Eval(expr, entity, lookup))
}

func TestMalformedFilterIsParseError(t *testing.T) {
	_, err := Parse(`site and and`)
	assert.Error(t, err)
}

func TestNotPathMeansMissing(t *testing.T) {
	expr, err := Parse(`not dis`)
	require.NoError(t, err)

	present := core.NewDict().Set("dis", core.Str("x"))
	absent := core.NewDict()
	assert.False(t, Eval(expr, present, nil))
	assert.True(t, Eval(expr, absent, nil))
}

func TestAndIsSubsetOrIsSuperset(t *testing.T) {
	a := core.NewDict().Marker("alpha")
	ab := core.NewDict().Marker("alpha").Marker("beta")

	exprAnd, err := Parse("alpha and beta")
	require.NoError(t, err)
	exprOr, err := Parse("alpha or beta")
	require.NoError(t, err)

	assert.False(t, Eval(exprAnd, a, nil))
	assert.True(t, Eval(exprAnd, ab, nil))
	assert.True(t, Eval(exprOr, a, nil))
	assert.True(t, Eval(exprOr, ab, nil))
}

func TestCrossTypeComparisonFalseExceptEquality(t *testing.T) {
	expr, err := Parse(`val == "x"`)
	require.NoError(t, err)
	entity := core.NewDict().Set("val", core.NewNumber(1, ""))
	assert.False(t, Eval(expr, entity, nil))

	exprNe, err := Parse(`val != "x"`)
	require.NoError(t, err)
	assert.True(t, Eval(exprNe, entity, nil))
}
