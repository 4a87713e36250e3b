// Package zinc implements the lexer, recursive-descent parser, and dumper
// for Haystack's native Zinc text format, plus the scalar grammar shared
// with the CSV codec.
package zinc

import (
	"fmt"
	"strconv"

	"haystack/internal/core"
	"haystack/internal/herr"
)

// maxNestDepth bounds recursive nested-grid parsing, per the resource
// model's recursion guard.
const maxNestDepth = 32

// Parser walks a token stream produced by a Lexer and builds a core.Grid.
// curTok/peekTok give one token of lookahead, enough for the whole Zinc
// grammar since no production needs more.
type Parser struct {
	l       *Lexer
	curTok  Token
	peekTok Token
	depth   int
}

// NewParser returns a Parser reading from input.
func NewParser(input string) *Parser {
	p := &Parser{l: New(input)}
	p.next()
	p.next()
	return p
}

// ParseGrid parses input as a complete Zinc grid.
func ParseGrid(input string) (*core.Grid, error) {
	return NewParser(input).parseGrid()
}

// ParseScalar parses a single scalar value from text, used directly by the
// CSV codec's cell parser (spec.md §4.5: CSV delegates non-special cells
// to the Zinc scalar grammar).
func ParseScalar(text string) (core.Val, error) {
	p := NewParser(text)
	v, err := p.parseScalar()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (p *Parser) next() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) err(msg string) error {
	return &herr.ParseError{Line: p.curTok.Line, Col: p.curTok.Column, Fragment: p.curTok.Literal, Msg: msg}
}

func (p *Parser) expect(t TokenType) (Token, error) {
	if p.curTok.Type != t {
		return Token{}, p.err(fmt.Sprintf("expected %s, got %s", t, p.curTok.Type))
	}
	tok := p.curTok
	p.next()
	return tok, nil
}

func (p *Parser) parseGrid() (*core.Grid, error) {
	if _, err := p.expectWord("ver"); err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	verTok, err := p.expect(STRING)
	if err != nil {
		return nil, err
	}
	g := core.NewGrid(verTok.Literal)

	// Optional grid-level metadata tags before the header newline.
	for p.curTok.Type == ID {
		name, v, err := p.parseTag()
		if err != nil {
			return nil, err
		}
		g.Meta.Set(name, v)
	}
	if _, err := p.expect(NEWLINE); err != nil {
		return nil, err
	}

	if err := p.parseCols(g); err != nil {
		return nil, err
	}
	if _, err := p.expect(NEWLINE); err != nil {
		return nil, err
	}

	// GT2 closes an enclosing nested grid (parseNestedGrid calls parseGrid
	// recursively); it is never part of a row, so the loop must stop there
	// exactly like it stops at EOF.
	for p.curTok.Type != EOF && p.curTok.Type != GT2 {
		if p.curTok.Type == NEWLINE {
			p.next()
			continue
		}
		row, err := p.parseRow(g)
		if err != nil {
			return nil, err
		}
		if err := g.AddRow(row); err != nil {
			return nil, err
		}
		if p.curTok.Type == NEWLINE {
			p.next()
		}
	}
	return g, nil
}

func (p *Parser) expectWord(word string) (Token, error) {
	if p.curTok.Type != ID || p.curTok.Literal != word {
		return Token{}, p.err("expected " + word)
	}
	tok := p.curTok
	p.next()
	return tok, nil
}

func (p *Parser) parseCols(g *core.Grid) error {
	for {
		nameTok, err := p.expect(ID)
		if err != nil {
			return err
		}
		meta := core.NewDict()
		for p.curTok.Type == ID {
			name, v, err := p.parseTag()
			if err != nil {
				return err
			}
			meta.Set(name, v)
		}
		if err := g.AddCol(nameTok.Literal, meta); err != nil {
			return err
		}
		if p.curTok.Type != COMMA {
			return nil
		}
		p.next()
	}
}

// parseTag parses "id" (marker) or "id:scalar".
func (p *Parser) parseTag() (string, core.Val, error) {
	nameTok, err := p.expect(ID)
	if err != nil {
		return "", nil, err
	}
	if p.curTok.Type != COLON {
		return nameTok.Literal, core.MarkerVal, nil
	}
	p.next()
	v, err := p.parseScalar()
	if err != nil {
		return "", nil, err
	}
	return nameTok.Literal, v, nil
}

func (p *Parser) parseRow(g *core.Grid) (*core.Dict, error) {
	row := core.NewDict()
	cols := g.Cols()
	i := 0
	for {
		v, err := p.parseCell()
		if err != nil {
			return nil, err
		}
		if i < len(cols) && !core.IsNull(v) {
			row.Set(cols[i].Name, v)
		}
		i++
		if p.curTok.Type != COMMA {
			return row, nil
		}
		p.next()
	}
}

func (p *Parser) parseCell() (core.Val, error) {
	if p.curTok.Type == COMMA || p.curTok.Type == NEWLINE || p.curTok.Type == EOF {
		return core.Null{}, nil
	}
	return p.parseScalar()
}

// parseScalar parses any single Zinc scalar literal, including composite
// forms (list, dict, nested grid) and the extended literals (coord, xstr,
// bin) that hinge on a following '('.
func (p *Parser) parseScalar() (core.Val, error) {
	switch p.curTok.Type {
	case STRING:
		v := core.Str(p.curTok.Literal)
		p.next()
		return v, nil
	case URI:
		v := core.Uri(p.curTok.Literal)
		p.next()
		return v, nil
	case MARKER:
		p.next()
		return core.MarkerVal, nil
	case NA:
		p.next()
		return core.NAVal, nil
	case REMOVE:
		p.next()
		return core.RemoveVal, nil
	case TRUE:
		p.next()
		return core.Bool(true), nil
	case FALSE:
		p.next()
		return core.Bool(false), nil
	case REF:
		return p.parseRef()
	case NUMBER:
		return p.parseNumberLikeToken()
	case LBRACKET:
		return p.parseList()
	case LBRACE:
		return p.parseDict()
	case LT2:
		return p.parseNestedGrid()
	case ID:
		if p.curTok.Literal == "N" {
			p.next()
			return core.Null{}, nil
		}
		return p.parseIDLed()
	default:
		return nil, p.err("unexpected token in scalar position")
	}
}

func (p *Parser) parseRef() (core.Val, error) {
	nameTok := p.curTok
	p.next()
	if p.curTok.Type == STRING {
		dis := p.curTok.Literal
		p.next()
		return core.NewRefDisplay(nameTok.Literal, dis)
	}
	return core.NewRef(nameTok.Literal)
}

func (p *Parser) parseNumberLikeToken() (core.Val, error) {
	raw := p.curTok.Literal
	p.next()
	v, err := parseNumberLike(raw)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(core.DateTime); ok && p.curTok.Type == ID {
		// A following bare word right after a dateTime-shaped literal is its
		// TZ name.
		tzName := p.curTok.Literal
		p.next()
		return parseDateTimeWithTZ(raw, tzName)
	}
	return v, nil
}

// parseIDLed handles the literal forms that start with a capitalized bare
// word followed by '(': Coordinate ("C(lat,long)"), Bin ("Bin(mime)"), and
// XStr ("TypeName(\"data\")").
func (p *Parser) parseIDLed() (core.Val, error) {
	word := p.curTok.Literal
	p.next()
	if p.curTok.Type != LPAREN {
		// A bare capitalized word with no following '(' is not a valid
		// standalone scalar in this grammar.
		return nil, p.err("unexpected identifier in scalar position")
	}
	p.next()
	switch word {
	case "C":
		latTok, err := p.expect(NUMBER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(COMMA); err != nil {
			return nil, err
		}
		longTok, err := p.expect(NUMBER)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		lat, err1 := strconv.ParseFloat(latTok.Literal, 64)
		long, err2 := strconv.ParseFloat(longTok.Literal, 64)
		if err1 != nil || err2 != nil {
			return nil, p.err("malformed coordinate")
		}
		return core.NewCoordinate(lat, long), nil
	case "Bin":
		mimeTok, err := p.expect(ID)
		if err != nil {
			// Bin's payload (a mime type like "text/plain") contains a
			// slash, which our lexer folds into an ID run; fall back to
			// treating whatever comes next as a raw identifier-ish token.
			mimeTok = p.curTok
			p.next()
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return core.Bin(mimeTok.Literal), nil
	default:
		dataTok, err := p.expect(STRING)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		xstr, err := core.NewXStr(word, dataTok.Literal)
		if err != nil {
			return nil, err
		}
		return xstr, nil
	}
}

func (p *Parser) parseList() (core.Val, error) {
	p.next() // consume '['
	var list core.List
	if p.curTok.Type == RBRACKET {
		p.next()
		return list, nil
	}
	for {
		v, err := p.parseScalar()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		if p.curTok.Type == COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *Parser) parseDict() (core.Val, error) {
	p.next() // consume '{'
	d := core.NewDict()
	for p.curTok.Type == ID {
		name, v, err := p.parseTag()
		if err != nil {
			return nil, err
		}
		d.Set(name, v)
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return d, nil
}

func (p *Parser) parseNestedGrid() (core.Val, error) {
	p.depth++
	if p.depth > maxNestDepth {
		return nil, p.err("nested grid exceeds maximum recursion depth")
	}
	defer func() { p.depth-- }()

	p.next() // consume '<<'
	for p.curTok.Type == NEWLINE {
		p.next()
	}
	g, err := p.parseGrid()
	if err != nil {
		return nil, err
	}
	for p.curTok.Type == NEWLINE {
		p.next()
	}
	if _, err := p.expect(GT2); err != nil {
		return nil, err
	}
	return g, nil
}
