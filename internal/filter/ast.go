// Package filter implements the row-selection predicate language: a
// lexer/parser pair grounded on the same rune-scanning shape as
// internal/zinc (itself grounded on the pack's T-SQL lexer), and an
// evaluator that walks the resulting tree the way the teacher's semantic
// validation pass walks a table/column tree, returning bool/error pairs.
package filter

import "haystack/internal/core"

// Op is a comparison operator.
type Op string

const (
	OpEq Op = "=="
	OpNe Op = "!="
	OpLt Op = "<"
	OpLe Op = "<="
	OpGt Op = ">"
	OpGe Op = ">="
)

// Expr is a node in the filter AST.
type Expr interface {
	isExpr()
}

// Or is a left-to-right, short-circuiting disjunction.
type Or struct {
	Terms []Expr
}

// And is a left-to-right, short-circuiting conjunction.
type And struct {
	Terms []Expr
}

// Not negates its operand: the atom after "not", which is a Has path (the
// "missing := not path" form), a comparison, or a parenthesized filter.
type Not struct {
	Expr Expr
}

// Has is true iff Path resolves to a present, non-null value.
type Has struct {
	Path []string
}

// Cmp compares the value at Path against a literal Scalar using Op.
type Cmp struct {
	Path  []string
	Op    Op
	Value core.Val
}

func (Or) isExpr()  {}
func (And) isExpr() {}
func (Not) isExpr() {}
func (Has) isExpr() {}
func (Cmp) isExpr() {}
