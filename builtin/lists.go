package builtin

import (
	"fmt"

	"github.com/xiam/scheme/ast"
)

var listProcedures = []definition{
	{"cons", ClassConstructor, cons},
	{"list", ClassConstructor, list},

	{"car", ClassAccessor, car},
	{"cdr", ClassAccessor, cdr},

	{"list-ref", ClassIndexedAccessor, listRef},
	{"list-tail", ClassIndexedAccessor, listTail},
}

func cons(ctx *Context) (*ast.Node, error) {
	if err := ctx.Expect(2); err != nil {
		return nil, err
	}
	return ast.NewPair(ctx.Argument(0), ctx.Argument(1)), nil
}

func list(ctx *Context) (*ast.Node, error) {
	return ast.List(ctx.Arguments()...), nil
}

func car(ctx *Context) (*ast.Node, error) {
	if err := ctx.Expect(1); err != nil {
		return nil, err
	}
	p, err := ctx.Pair(0)
	if err != nil {
		return nil, err
	}
	return p.Car(), nil
}

func cdr(ctx *Context) (*ast.Node, error) {
	if err := ctx.Expect(1); err != nil {
		return nil, err
	}
	p, err := ctx.Pair(0)
	if err != nil {
		return nil, err
	}
	return p.Cdr(), nil
}

func indexArguments(ctx *Context) (*ast.Node, int64, error) {
	if err := ctx.Expect(2); err != nil {
		return nil, 0, err
	}
	l, err := ctx.List(0)
	if err != nil {
		return nil, 0, err
	}
	index, err := ctx.Int(1)
	if err != nil {
		return nil, 0, err
	}
	if index < 0 {
		return nil, 0, ctx.Fail(fmt.Errorf("%w: negative index %d", ErrIndexRange, index))
	}
	return l, index, nil
}

// walk follows index cdr links, failing if the chain ends first.
func walk(ctx *Context, l *ast.Node, index int64) (*ast.Node, error) {
	for i := int64(0); i < index; i++ {
		if !l.IsPair() {
			return nil, ctx.Fail(fmt.Errorf("%w: list has no tail at %d", ErrIndexRange, index))
		}
		l = l.Cdr()
	}
	return l, nil
}

func listRef(ctx *Context) (*ast.Node, error) {
	l, index, err := indexArguments(ctx)
	if err != nil {
		return nil, err
	}
	l, err = walk(ctx, l, index)
	if err != nil {
		return nil, err
	}
	if !l.IsPair() {
		return nil, ctx.Fail(fmt.Errorf("%w: list has no element at %d", ErrIndexRange, index))
	}
	return l.Car(), nil
}

func listTail(ctx *Context) (*ast.Node, error) {
	l, index, err := indexArguments(ctx)
	if err != nil {
		return nil, err
	}
	return walk(ctx, l, index)
}
