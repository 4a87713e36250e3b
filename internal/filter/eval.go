package filter

import "haystack/internal/core"

// Lookup resolves a Ref to the entity it names. Returning ok=false means
// the ref could not be resolved; per spec.md §4.6 this is never an error,
// it just makes the containing predicate false.
type Lookup func(ref core.Ref) (*core.Dict, bool)

// Eval evaluates expr against entity, following Ref path segments through
// lookup. It never returns an error: a syntactically valid filter always
// produces a boolean, even when data is missing or path traversal dead-ends.
func Eval(expr Expr, entity *core.Dict, lookup Lookup) bool {
	switch e := expr.(type) {
	case Or:
		for _, t := range e.Terms {
			if Eval(t, entity, lookup) {
				return true
			}
		}
		return false
	case And:
		for _, t := range e.Terms {
			if !Eval(t, entity, lookup) {
				return false
			}
		}
		return true
	case Not:
		return !Eval(e.Expr, entity, lookup)
	case Has:
		v, ok := resolvePath(e.Path, entity, lookup)
		return ok && !core.IsNull(v)
	case Cmp:
		v, ok := resolvePath(e.Path, entity, lookup)
		if !ok {
			return false
		}
		return compare(v, e.Op, e.Value)
	default:
		return false
	}
}

// resolvePath walks path segments, following a Ref intermediate through
// lookup. A non-Ref intermediate (any path segment but the last resolving
// to something other than a Ref) short-circuits to not-found, matching
// spec.md's "Non-Ref intermediates short-circuit to false."
func resolvePath(path []string, entity *core.Dict, lookup Lookup) (core.Val, bool) {
	cur := entity
	for i, name := range path {
		v, ok := cur.Get(name)
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		ref, ok := v.(core.Ref)
		if !ok {
			return nil, false
		}
		if lookup == nil {
			return nil, false
		}
		next, ok := lookup(ref)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

func compare(a core.Val, op Op, b core.Val) bool {
	switch op {
	case OpEq:
		return valOrNull(a).Equal(valOrNull(b))
	case OpNe:
		return !valOrNull(a).Equal(valOrNull(b))
	}

	switch av := a.(type) {
	case core.Number:
		bv, ok := b.(core.Number)
		if !ok || av.Unit != bv.Unit {
			return false
		}
		return numOp(av.Value, op, bv.Value)
	case core.Str:
		bv, ok := b.(core.Str)
		if !ok {
			return false
		}
		return strOp(string(av), op, string(bv))
	case core.Date:
		bv, ok := b.(core.Date)
		if !ok {
			return false
		}
		return dateOp(av, op, bv)
	case core.DateTime:
		bv, ok := b.(core.DateTime)
		if !ok {
			return false
		}
		return dateTimeOp(av, op, bv)
	case core.Ref:
		bv, ok := b.(core.Ref)
		if !ok {
			return false
		}
		return strOp(av.Name, op, bv.Name)
	default:
		return false
	}
}

func valOrNull(v core.Val) core.Val {
	if v == nil {
		return core.Null{}
	}
	return v
}

func numOp(a float64, op Op, b float64) bool {
	switch op {
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	default:
		return false
	}
}

func strOp(a string, op Op, b string) bool {
	switch op {
	case OpLt:
		return a < b
	case OpLe:
		return a <= b
	case OpGt:
		return a > b
	case OpGe:
		return a >= b
	default:
		return false
	}
}

func dateOp(a core.Date, op Op, b core.Date) bool {
	switch op {
	case OpLt:
		return a.Less(b)
	case OpLe:
		return a.Less(b) || a.Equal(b)
	case OpGt:
		return b.Less(a)
	case OpGe:
		return b.Less(a) || a.Equal(b)
	default:
		return false
	}
}

func dateTimeOp(a core.DateTime, op Op, b core.DateTime) bool {
	switch op {
	case OpLt:
		return a.Before(b)
	case OpLe:
		return a.Before(b) || a.Equal(b)
	case OpGt:
		return b.Before(a)
	case OpGe:
		return b.Before(a) || a.Equal(b)
	default:
		return false
	}
}
