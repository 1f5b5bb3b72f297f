package scheme

import (
	"bytes"
	"io"
	"log"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/builtin"
	"github.com/xiam/scheme/parser"
)

// Interpreter evaluates single expressions against a registry of built-in
// procedures. It keeps no state between calls.
type Interpreter struct {
	registry *builtin.Registry
	logger   *log.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithRegistry sets the procedures the evaluator dispatches to.
func WithRegistry(r *builtin.Registry) Option {
	return func(in *Interpreter) {
		in.registry = r
	}
}

// WithLogger enables evaluation traces.
func WithLogger(l *log.Logger) Option {
	return func(in *Interpreter) {
		in.logger = l
	}
}

// New creates an interpreter, by default it uses the process-wide registry
// and logs nothing.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		registry: builtin.Default(),
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run reads one expression, reduces it and returns its printed form.
func (in *Interpreter) Run(expression string) (string, error) {
	return in.RunReader(bytes.NewReader([]byte(expression)))
}

// RunReader is like Run but reads the expression from r.
func (in *Interpreter) RunReader(r io.Reader) (string, error) {
	node, err := parser.New(r).Parse()
	if err != nil {
		return "", err
	}

	value, err := in.Eval(node)
	if err != nil {
		return "", err
	}

	return string(ast.Encode(value)), nil
}

var defaultInterpreter = New()

// Run evaluates expression with the default interpreter.
func Run(expression string) (string, error) {
	return defaultInterpreter.Run(expression)
}
