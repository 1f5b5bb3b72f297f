package scheme

import (
	"errors"

	"github.com/xiam/scheme/builtin"
	"github.com/xiam/scheme/parser"
)

// SyntaxError is returned when the input is not exactly one well formed
// expression.
type SyntaxError = parser.SyntaxError

// RuntimeError is returned when a well formed expression can't be reduced.
type RuntimeError = builtin.RuntimeError

// IsSyntaxError reports whether err is, or wraps, a *SyntaxError.
func IsSyntaxError(err error) bool {
	var e *SyntaxError
	return errors.As(err, &e)
}

// IsRuntimeError reports whether err is, or wraps, a *RuntimeError.
func IsRuntimeError(err error) bool {
	var e *RuntimeError
	return errors.As(err, &e)
}
