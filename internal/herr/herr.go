// Package herr defines the small, closed set of error types shared across
// the codecs, the filter evaluator, and the Grid container. Callers use
// errors.As to recover the concrete type when they need to react
// differently.
package herr

import "fmt"

// ParseError reports a malformed document at a specific source position.
// Line and Col are 1-based; Col counts runes, not bytes.
type ParseError struct {
	Line     int
	Col      int
	Fragment string
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at %d:%d near %q: %s", e.Line, e.Col, e.Fragment, e.Msg)
	}
	return fmt.Sprintf("parse error near %q: %s", e.Fragment, e.Msg)
}

// SchemaError reports a structural violation of the Grid invariants, such
// as a duplicate column name. A row tag naming an unknown column is
// reported by Grid.AddRow as a ParseError instead.
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Msg
}

// UnsupportedFormatError reports a codec or content-type that has no
// registered handler.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q", e.Format)
}

// NotAcceptableError reports that none of the server's supported formats
// satisfy a request's Accept header.
type NotAcceptableError struct {
	Accept string
}

func (e *NotAcceptableError) Error() string {
	return fmt.Sprintf("not acceptable: no supported format satisfies %q", e.Accept)
}
