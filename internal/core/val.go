package core

// Val is the common interface implemented by every Haystack scalar
// (including the composite List, Dict, and Grid variants). Equality and
// hashing are structural and value-preserving across codecs, per the data
// model invariants.
type Val interface {
	// Kind reports which scalar variant this value is.
	Kind() Kind
	// String renders the value in its canonical Zinc-like form, used for
	// logging and as the basis of the Zinc dumper.
	String() string
	// Equal reports whether other is the same Kind and carries the same
	// structural value. Values of different Kinds are never equal, even
	// when they wrap the same underlying text (String, Uri, Bin).
	Equal(other Val) bool
}

// Null represents the absence of a value in a cell, distinct from the
// Marker/NA/Remove singletons.
type Null struct{}

func (Null) Kind() Kind        { return KindNull }
func (Null) String() string    { return "N" }
func (Null) Equal(o Val) bool  { _, ok := o.(Null); return ok }

// IsNull reports whether v is Null or the untyped nil (a missing cell read
// back from a Grid is represented as Null{}, but callers sometimes carry a
// bare nil Val around; both mean "no value").
func IsNull(v Val) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Marker is the singleton "tag present" sentinel. It is hashable and
// immutable; copying (which in Go just means passing the zero-size value
// around) is idempotent since there is nothing to mutate.
type Marker struct{}

func (Marker) Kind() Kind       { return KindMarker }
func (Marker) String() string   { return "M" }
func (Marker) Equal(o Val) bool { _, ok := o.(Marker); return ok }

// MarkerVal is the single logical Marker instance.
var MarkerVal = Marker{}

// NA is the singleton "not available" sentinel.
type NA struct{}

func (NA) Kind() Kind       { return KindNA }
func (NA) String() string   { return "NA" }
func (NA) Equal(o Val) bool { _, ok := o.(NA); return ok }

// NAVal is the single logical NA instance.
var NAVal = NA{}

// Remove is the singleton "delete this tag" sentinel used in diff grids.
type Remove struct{}

func (Remove) Kind() Kind       { return KindRemove }
func (Remove) String() string   { return "R" }
func (Remove) Equal(o Val) bool { _, ok := o.(Remove); return ok }

// RemoveVal is the single logical Remove instance.
var RemoveVal = Remove{}

// Bool is a true/false scalar.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "T"
	}
	return "F"
}
func (b Bool) Equal(o Val) bool {
	ob, ok := o.(Bool)
	return ok && ob == b
}

// Str is Unicode text. It is a distinct type from Uri and Bin even though
// all three wrap a Go string: the data model treats them as disjoint
// scalar kinds (spec invariant: String(s) != Uri(s) != Bin(s)).
type Str string

func (s Str) Kind() Kind     { return KindStr }
func (s Str) String() string { return string(s) }
func (s Str) Equal(o Val) bool {
	os, ok := o.(Str)
	return ok && os == s
}

// Uri is Unicode text distinguished by type from Str.
type Uri string

func (u Uri) Kind() Kind     { return KindUri }
func (u Uri) String() string { return string(u) }
func (u Uri) Equal(o Val) bool {
	ou, ok := o.(Uri)
	return ok && ou == u
}

// Bin is a MIME-type string tag distinguished from Str.
type Bin string

func (b Bin) Kind() Kind     { return KindBin }
func (b Bin) String() string { return "Bin(" + string(b) + ")" }
func (b Bin) Equal(o Val) bool {
	ob, ok := o.(Bin)
	return ok && ob == b
}
