package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/scheme/lexer"
)

var (
	ErrEmptyInput        = errors.New("empty input")
	ErrUnexpectedEOF     = errors.New("unexpected EOF")
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnmatchedClose    = errors.New("close bracket without open bracket")
	ErrDotAfterOpen      = errors.New("dot can't follow an open bracket")
	ErrMissingDottedTail = errors.New("no expression between dot and close bracket")
	ErrDottedTailNotLast = errors.New("dotted tail must be followed by a close bracket")
	ErrStrayDot          = errors.New("dot outside of a dotted pair")
	ErrTrailingInput     = errors.New("expression can't be read in full")
	ErrIntegerRange      = errors.New("integer literal out of range")
)

// SyntaxError is returned when the token stream doesn't form exactly one
// well formed expression.
type SyntaxError struct {
	Err error

	Line int
	Col  int
}

func newSyntaxError(err error, tok lexer.Token) *SyntaxError {
	line, col := tok.Pos()
	return &SyntaxError{Err: err, Line: line, Col: col}
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %v", e.Err)
	}
	return fmt.Sprintf("syntax error at %d:%d: %v", e.Line, e.Col, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
