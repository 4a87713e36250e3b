// Package core contains the single source of truth for the Haystack data
// model: the closed set of scalar value types and the tagged-row Grid
// container that holds them. It provides equality, ordering, and hashing
// semantics that every codec and the filter evaluator rely on.
package core

// Kind identifies which of the closed set of Haystack scalar variants a
// Val holds.
type Kind string

const (
	KindNull     Kind = "null"
	KindMarker   Kind = "marker"
	KindNA       Kind = "na"
	KindRemove   Kind = "remove"
	KindBool     Kind = "bool"
	KindNumber   Kind = "number"
	KindStr      Kind = "str"
	KindUri      Kind = "uri"
	KindRef      Kind = "ref"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindDateTime Kind = "dateTime"
	KindCoord    Kind = "coord"
	KindXStr     Kind = "xstr"
	KindBin      Kind = "bin"
	KindList     Kind = "list"
	KindDict     Kind = "dict"
	KindGrid     Kind = "grid"
)
