package core

import "strings"

// List is an ordered, heterogeneous sequence of values.
type List []Val

func (l List) Kind() Kind { return KindList }

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Equal compares element-by-element in order; List is the one composite
// kind where order is part of identity (unlike Dict, whose key order is
// display-only).
func (l List) Equal(o Val) bool {
	ol, ok := o.(List)
	if !ok || len(ol) != len(l) {
		return false
	}
	for i := range l {
		if !valOrNull(l[i]).Equal(valOrNull(ol[i])) {
			return false
		}
	}
	return true
}

func valOrNull(v Val) Val {
	if v == nil {
		return Null{}
	}
	return v
}
