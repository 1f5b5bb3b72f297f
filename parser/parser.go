package parser

import (
	"bytes"
	"io"
	"strconv"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/lexer"
)

const quoteSymbol = "quote"

// Parser reads exactly one expression from a token stream.
type Parser struct {
	lx *lexer.Lexer

	// number of brackets opened and not yet closed
	depth int
}

// New creates a parser that reads tokens from r.
func New(r io.Reader) *Parser {
	return &Parser{
		lx: lexer.New(r),
	}
}

// Parse reads one complete expression. Empty input, trailing tokens and any
// malformed construct are reported as *SyntaxError, no partial tree is ever
// returned.
func (p *Parser) Parse() (*ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	if p.curr().IsEOF() {
		return nil, p.fail(ErrEmptyInput)
	}

	node, err := p.readDatum()
	if err != nil {
		return nil, err
	}

	switch p.curr().Type() {
	case lexer.TokenEOF:
		return node, nil
	case lexer.TokenCloseList:
		return nil, p.fail(ErrUnmatchedClose)
	}
	return nil, p.fail(ErrTrailingInput)
}

func (p *Parser) curr() lexer.Token {
	return p.lx.Token()
}

func (p *Parser) next() error {
	_, err := p.lx.Next()
	return err
}

func (p *Parser) fail(err error) error {
	return newSyntaxError(err, p.curr())
}

// readDatum reads an expression that must stand on its own, a bare dot is
// only legal where readList consumes it.
func (p *Parser) readDatum() (*ast.Node, error) {
	tok := p.curr()

	node, err := p.readExpr()
	if err != nil {
		return nil, err
	}
	if node.Is(ast.NodeTypeDot) {
		return nil, newSyntaxError(ErrStrayDot, tok)
	}
	return node, nil
}

func (p *Parser) readExpr() (*ast.Node, error) {
	tok := p.curr()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil, p.fail(ErrUnexpectedEOF)

	case lexer.TokenInteger:
		i64, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, p.fail(ErrIntegerRange)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewInt(&tok, i64), nil

	case lexer.TokenSymbol:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewSymbol(&tok, tok.Text()), nil

	case lexer.TokenDot:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewDot(&tok), nil

	case lexer.TokenQuote:
		return p.readQuote()

	case lexer.TokenOpenList:
		return p.readList()

	case lexer.TokenCloseList:
		if p.depth == 0 {
			return nil, p.fail(ErrUnmatchedClose)
		}
		return nil, p.fail(ErrUnexpectedToken)
	}

	return nil, p.fail(ErrUnexpectedToken)
}

// readQuote expands 'expr into (quote expr).
func (p *Parser) readQuote() (*ast.Node, error) {
	tok := p.curr()
	if err := p.next(); err != nil {
		return nil, err
	}

	node, err := p.readDatum()
	if err != nil {
		return nil, err
	}

	return ast.List(ast.NewSymbol(&tok, quoteSymbol), node), nil
}

func (p *Parser) readList() (*ast.Node, error) {
	open := p.curr()
	if err := p.next(); err != nil {
		return nil, err
	}

	p.depth++
	defer func() {
		p.depth--
	}()

	switch p.curr().Type() {
	case lexer.TokenCloseList:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewEmpty(&open), nil
	case lexer.TokenDot:
		return nil, p.fail(ErrDotAfterOpen)
	}

	items := []*ast.Node{}
	for {
		switch p.curr().Type() {
		case lexer.TokenEOF:
			return nil, p.fail(ErrUnexpectedEOF)

		case lexer.TokenCloseList:
			if err := p.next(); err != nil {
				return nil, err
			}
			return ast.List(items...), nil

		case lexer.TokenDot:
			tail, err := p.readDottedTail()
			if err != nil {
				return nil, err
			}
			return ast.ListWithTail(tail, items...), nil

		default:
			item, err := p.readDatum()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
}

// readDottedTail reads ". expr )" and returns expr.
func (p *Parser) readDottedTail() (*ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	switch p.curr().Type() {
	case lexer.TokenCloseList:
		return nil, p.fail(ErrMissingDottedTail)
	case lexer.TokenEOF:
		return nil, p.fail(ErrUnexpectedEOF)
	}

	tail, err := p.readDatum()
	if err != nil {
		return nil, err
	}

	switch p.curr().Type() {
	case lexer.TokenCloseList:
		if err := p.next(); err != nil {
			return nil, err
		}
		return tail, nil
	case lexer.TokenEOF:
		return nil, p.fail(ErrUnexpectedEOF)
	}
	return nil, p.fail(ErrDottedTailNotLast)
}

// Parse reads one expression from the given bytes.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))
	return p.Parse()
}
