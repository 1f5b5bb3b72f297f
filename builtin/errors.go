package builtin

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyArguments  = errors.New("function can't be applied to empty arguments")
	ErrArity           = errors.New("wrong number of arguments")
	ErrType            = errors.New("wrong argument type")
	ErrIndexRange      = errors.New("index out of range")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrEmptyExpression = errors.New("empty expression")
)

// RuntimeError is returned when a well formed expression can't be reduced.
type RuntimeError struct {
	Proc string
	Err  error
}

// NewRuntimeError wraps err, proc names the procedure that rejected its
// arguments and may be empty.
func NewRuntimeError(proc string, err error) *RuntimeError {
	return &RuntimeError{Proc: proc, Err: err}
}

func (e *RuntimeError) Error() string {
	if e.Proc == "" {
		return fmt.Sprintf("runtime error: %v", e.Err)
	}
	return fmt.Sprintf("runtime error: %s: %v", e.Proc, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
