package filter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"haystack/internal/core"
	"haystack/internal/herr"
	"haystack/internal/zinc"
)

// Parser recursive-descends over the filter grammar in spec.md §4.6, one
// token of lookahead, the same shape as internal/zinc.Parser.
type Parser struct {
	l       *lexer
	curTok  token
	peekTok token
}

func newParser(input string) *Parser {
	p := &Parser{l: newLexer(input)}
	p.next()
	p.next()
	return p
}

// Parse parses a complete filter expression.
func Parse(input string) (Expr, error) {
	p := newParser(input)
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.curTok.typ != tEOF {
		return nil, p.err("unexpected trailing input")
	}
	return expr, nil
}

func (p *Parser) next() {
	p.curTok = p.peekTok
	p.peekTok = p.l.next()
}

func (p *Parser) err(msg string) error {
	col := utf8.RuneCountInString(p.l.input[:p.curTok.pos]) + 1
	return &herr.ParseError{Col: col, Fragment: p.curTok.literal, Msg: msg}
}

func (p *Parser) parseOr() (Expr, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	terms := []Expr{first}
	for p.curTok.typ == tID && p.curTok.literal == "or" {
		p.next()
		t, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return Or{Terms: terms}, nil
}

func (p *Parser) parseAnd() (Expr, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Expr{first}
	for p.curTok.typ == tID && p.curTok.literal == "and" {
		p.next()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return And{Terms: terms}, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	if p.curTok.typ == tID && p.curTok.literal == "not" {
		p.next()
		inner, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return Not{Expr: inner}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Expr, error) {
	if p.curTok.typ == tLParen {
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.curTok.typ != tRParen {
			return nil, p.err("expected )")
		}
		p.next()
		return inner, nil
	}
	path, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	op, ok := p.opToken()
	if !ok {
		return Has{Path: path}, nil
	}
	p.next()
	val, err := p.parseScalar()
	if err != nil {
		return nil, err
	}
	return Cmp{Path: path, Op: op, Value: val}, nil
}

func (p *Parser) opToken() (Op, bool) {
	switch p.curTok.typ {
	case tEq:
		return OpEq, true
	case tNe:
		return OpNe, true
	case tLt:
		return OpLt, true
	case tLe:
		return OpLe, true
	case tGt:
		return OpGt, true
	case tGe:
		return OpGe, true
	default:
		return "", false
	}
}

func (p *Parser) parsePath() ([]string, error) {
	if p.curTok.typ != tID || isKeyword(p.curTok.literal) {
		return nil, p.err("expected identifier")
	}
	path := []string{p.curTok.literal}
	p.next()
	for p.curTok.typ == tArrow {
		p.next()
		if p.curTok.typ != tID || isKeyword(p.curTok.literal) {
			return nil, p.err("expected identifier after ->")
		}
		path = append(path, p.curTok.literal)
		p.next()
	}
	return path, nil
}

func isKeyword(s string) bool {
	return s == "and" || s == "or" || s == "not"
}

func (p *Parser) parseScalar() (core.Val, error) {
	switch p.curTok.typ {
	case tString:
		v := core.Str(p.curTok.literal)
		p.next()
		return v, nil
	case tRef:
		name := strings.TrimPrefix(p.curTok.literal, "@")
		p.next()
		rest := strings.SplitN(name, " ", 2)
		if len(rest) == 2 {
			v, err := core.NewRefDisplay(rest[0], rest[1])
			return v, err
		}
		v, err := core.NewRef(name)
		return v, err
	case tNumber:
		raw := p.curTok.literal
		p.next()
		return zinc.ParseScalar(raw)
	case tID:
		switch p.curTok.literal {
		case "true":
			p.next()
			return core.Bool(true), nil
		case "false":
			p.next()
			return core.Bool(false), nil
		default:
			return nil, p.err("expected scalar literal")
		}
	default:
		return nil, p.err(fmt.Sprintf("expected scalar literal, got %q", p.curTok.literal))
	}
}
