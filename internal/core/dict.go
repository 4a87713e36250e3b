package core

import "strings"

// Dict is a set of name/value tags. Insertion order is retained purely for
// deterministic re-dumping (Zinc/JSON both emit columns and dict keys in a
// stable order); it plays no role in Equal, which compares the tag set
// only. Dict backs both a standalone scalar value and the per-column/grid
// metadata carried by Grid.
type Dict struct {
	order []string
	m     map[string]Val
}

// NewDict returns an empty Dict ready for Set calls.
func NewDict() *Dict {
	return &Dict{m: make(map[string]Val)}
}

// Set assigns name to val, appending name to the iteration order on first
// use and leaving the existing position unchanged on update.
func (d *Dict) Set(name string, val Val) *Dict {
	if d.m == nil {
		d.m = make(map[string]Val)
	}
	if _, exists := d.m[name]; !exists {
		d.order = append(d.order, name)
	}
	d.m[name] = val
	return d
}

// Marker is shorthand for Set(name, MarkerVal).
func (d *Dict) Marker(name string) *Dict {
	return d.Set(name, MarkerVal)
}

// Remove deletes name from the dict, if present.
func (d *Dict) Remove(name string) {
	if _, ok := d.m[name]; !ok {
		return
	}
	delete(d.m, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Get returns the value for name and whether it is present. A present tag
// whose value is Null is distinct from an absent tag (IsNull(Null{}) is
// true either way, so callers that only care about "is there a value"
// should check the ok result).
func (d *Dict) Get(name string) (Val, bool) {
	if d.m == nil {
		return nil, false
	}
	v, ok := d.m[name]
	return v, ok
}

// Has reports whether name is present and is not Null.
func (d *Dict) Has(name string) bool {
	v, ok := d.Get(name)
	return ok && !IsNull(v)
}

// Names returns the tag names in insertion order.
func (d *Dict) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len reports the number of tags.
func (d *Dict) Len() int {
	return len(d.order)
}

func (d *Dict) Kind() Kind { return KindDict }

func (d *Dict) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range d.order {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v := d.m[name]
		if _, ok := v.(Marker); ok {
			sb.WriteString(name)
			continue
		}
		sb.WriteString(name)
		sb.WriteByte(':')
		sb.WriteString(v.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equal compares the tag sets irrespective of insertion order: two Dicts
// are equal iff they have the same names, each mapping to Equal values.
func (d *Dict) Equal(o Val) bool {
	od, ok := o.(*Dict)
	if !ok || od.Len() != d.Len() {
		return false
	}
	for name, v := range d.m {
		ov, ok := od.m[name]
		if !ok || !valOrNull(v).Equal(valOrNull(ov)) {
			return false
		}
	}
	return true
}

// Clone returns a deep-enough copy: a new Dict with the same order and tag
// values (tag values themselves are not deep-copied, since every Val in
// this package is immutable once constructed).
func (d *Dict) Clone() *Dict {
	nd := &Dict{
		order: append([]string(nil), d.order...),
		m:     make(map[string]Val, len(d.m)),
	}
	for k, v := range d.m {
		nd.m[k] = v
	}
	return nd
}
