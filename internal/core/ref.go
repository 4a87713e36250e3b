package core

import (
	"fmt"
	"regexp"
	"strconv"
)

var refNameRe = regexp.MustCompile(`^[A-Za-z0-9_:\-.~]+$`)

// Ref is an identifier referring to another entity, with an optional
// human-readable display value.
type Ref struct {
	Name     string
	Value    string
	HasValue bool
}

// NewRef validates name against the Haystack ref-name grammar at
// construction time; an invalid name is a construction-time failure, per
// the data model invariants.
func NewRef(name string) (Ref, error) {
	return NewRefWithValue(name, "", false)
}

// NewRefDisplay constructs a Ref with a human-readable display value.
func NewRefDisplay(name, value string) (Ref, error) {
	return NewRefWithValue(name, value, true)
}

func NewRefWithValue(name, value string, hasValue bool) (Ref, error) {
	if !refNameRe.MatchString(name) {
		return Ref{}, fmt.Errorf("core: invalid ref name %q", name)
	}
	return Ref{Name: name, Value: value, HasValue: hasValue || value != ""}, nil
}

func (r Ref) Kind() Kind { return KindRef }

func (r Ref) String() string {
	if r.HasValue {
		return "@" + r.Name + " " + strconv.Quote(r.Value)
	}
	return "@" + r.Name
}

// Equal compares (name, has_value, value) strictly.
func (r Ref) Equal(o Val) bool {
	or, ok := o.(Ref)
	return ok && or.Name == r.Name && or.HasValue == r.HasValue && or.Value == r.Value
}

// Less orders Refs by name only, per the data model invariants.
func (r Ref) Less(other Ref) bool {
	return r.Name < other.Name
}
