package builtin

import (
	"fmt"

	"github.com/xiam/scheme/ast"
)

// Function is the calling convention shared by all built-in procedures.
type Function func(*Context) (*ast.Node, error)

// Context carries the already reduced arguments of one procedure call.
type Context struct {
	name string
	args []*ast.Node
}

// NewContext prepares a call of the procedure name.
func NewContext(name string, args []*ast.Node) *Context {
	return &Context{
		name: name,
		args: args,
	}
}

// Name returns the name of the procedure being called
func (ctx *Context) Name() string {
	return ctx.name
}

// Arguments returns all the arguments of the call
func (ctx *Context) Arguments() []*ast.Node {
	return ctx.args
}

// Argument returns the i-th argument
func (ctx *Context) Argument(i int) *ast.Node {
	return ctx.args[i]
}

// Len returns the number of arguments
func (ctx *Context) Len() int {
	return len(ctx.args)
}

// Expect fails unless the call has exactly n arguments.
func (ctx *Context) Expect(n int) error {
	if len(ctx.args) != n {
		return ctx.Fail(fmt.Errorf("%w: expected %d, got %d", ErrArity, n, len(ctx.args)))
	}
	return nil
}

// Int returns the i-th argument as an integer.
func (ctx *Context) Int(i int) (int64, error) {
	arg := ctx.args[i]
	if !arg.Is(ast.NodeTypeInt) {
		return 0, ctx.typeError(i, ast.NodeTypeInt)
	}
	return arg.Int(), nil
}

// Ints returns all the arguments as integers.
func (ctx *Context) Ints() ([]int64, error) {
	values := make([]int64, 0, len(ctx.args))
	for i := range ctx.args {
		v, err := ctx.Int(i)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Pair returns the i-th argument, which must be a pair.
func (ctx *Context) Pair(i int) (*ast.Node, error) {
	arg := ctx.args[i]
	if !arg.IsPair() {
		return nil, ctx.typeError(i, ast.NodeTypePair)
	}
	return arg, nil
}

// List returns the i-th argument, which must be a pair or the empty list.
func (ctx *Context) List(i int) (*ast.Node, error) {
	arg := ctx.args[i]
	if !arg.IsPair() && !arg.IsEmpty() {
		return nil, ctx.typeError(i, ast.NodeTypePair)
	}
	return arg, nil
}

// Fail wraps err into a *RuntimeError that names the procedure.
func (ctx *Context) Fail(err error) error {
	return NewRuntimeError(ctx.name, err)
}

func (ctx *Context) typeError(i int, expected ast.NodeType) error {
	return ctx.Fail(fmt.Errorf("%w: argument %d: expected %v, got %v", ErrType, i+1, expected, ctx.args[i].Type()))
}
