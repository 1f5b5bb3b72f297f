package lexer

import (
	"bytes"
	"io"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isQuote = isTokenType(TokenQuote)
	isDot   = isTokenType(TokenDot)

	isDigit       = isTokenType(TokenInteger)
	isSymbolStart = isTokenType(TokenSymbol)
	isSymbolBody  = isOneOf(symbolBody)
)

// source keeps the first read error, text/scanner only reports errors
// through its Error callback.
type source struct {
	r   io.Reader
	err error
}

func (s *source) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF && s.err == nil {
		s.err = err
	}
	return n, err
}

// New initializes a Lexer object. No token is scanned until Next is called.
func New(r io.Reader) *Lexer {
	src := &source{r: r}

	s := &scanner.Scanner{}
	s.Init(src)
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:  s,
		src: src,
		buf: []rune{},

		line: 1,
		col:  1,
	}
}

// Lexer represents a lexical analyzer that produces one token at a time.
type Lexer struct {
	in  *scanner.Scanner
	src *source

	tok     Token
	lastErr error

	buf []rune

	line, col           int
	startLine, startCol int
}

// Next discards the current token and scans the following one.
func (lx *Lexer) Next() (Token, error) {
	if lx.lastErr != nil {
		return lx.tok, lx.lastErr
	}
	if lx.AtEnd() {
		return lx.tok, nil
	}

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.src.err != nil {
		lx.lastErr = lx.src.err
		return lx.tok, lx.lastErr
	}
	return lx.tok, nil
}

// Token returns the current token.
func (lx *Lexer) Token() Token {
	return lx.tok
}

// AtEnd returns true once the end of the stream was reached.
func (lx *Lexer) AtEnd() bool {
	return lx.tok.IsEOF()
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = *NewToken(tt, string(lx.buf), lx.startLine, lx.startCol)
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) advance() rune {
	r := lx.in.Next()
	if r == scanner.EOF {
		return r
	}
	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r
}

func (lx *Lexer) next() {
	if r := lx.advance(); r != scanner.EOF {
		lx.buf = append(lx.buf, r)
	}
}

func (lx *Lexer) skip() {
	lx.advance()
}

func lexDefaultState(lx *Lexer) lexState {
	lx.startLine, lx.startCol = lx.line, lx.col

	p := lx.peek()
	switch {
	case p == scanner.EOF:
		return lexEmit(TokenEOF)

	case isOpenList(p):
		return lexSingle(TokenOpenList)
	case isCloseList(p):
		return lexSingle(TokenCloseList)
	case isQuote(p):
		return lexSingle(TokenQuote)
	case isDot(p):
		return lexSingle(TokenDot)

	case isDigit(p):
		return lexInteger
	case isAritmeticSign(p):
		return lexSign
	case isSymbolStart(p):
		return lexSymbol
	}

	// whitespace and any character outside the alphabet
	lx.skip()
	return lexDefaultState
}

func lexSingle(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.next()
		return lexEmit(tt)
	}
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return nil
	}
}

// lexSign decides whether a leading "+" or "-" belongs to an integer literal
// or stands alone as a symbol.
func lexSign(lx *Lexer) lexState {
	lx.next()
	if isDigit(lx.peek()) {
		return lexInteger
	}
	return lexEmit(TokenSymbol)
}

func lexInteger(lx *Lexer) lexState {
	for isDigit(lx.peek()) {
		lx.next()
	}
	return lexEmit(TokenInteger)
}

func lexSymbol(lx *Lexer) lexState {
	lx.next()
	for isSymbolBody(lx.peek()) {
		lx.next()
	}
	return lexEmit(TokenSymbol)
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// the last one being TokenEOF.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens, nil
		}
	}
}
