package builtin

import (
	"github.com/xiam/scheme/ast"
)

var arithmeticProcedures = []definition{
	{"+", ClassArithmetic, foldWithIdentity(0, add)},
	{"*", ClassArithmetic, foldWithIdentity(1, mul)},
	{"-", ClassArithmetic, fold(sub)},
	{"/", ClassArithmetic, fold(div)},
	{"max", ClassArithmetic, fold(max64)},
	{"min", ClassArithmetic, fold(min64)},

	{"abs", ClassUnaryNumeric, unaryNumeric(abs64)},

	{"=", ClassComparison, comparison(func(a, b int64) bool { return a == b })},
	{"<", ClassComparison, comparison(func(a, b int64) bool { return a < b })},
	{">", ClassComparison, comparison(func(a, b int64) bool { return a > b })},
	{"<=", ClassComparison, comparison(func(a, b int64) bool { return a <= b })},
	{">=", ClassComparison, comparison(func(a, b int64) bool { return a >= b })},
}

type binaryOp func(a, b int64) (int64, error)

func add(a, b int64) (int64, error) { return a + b, nil }
func sub(a, b int64) (int64, error) { return a - b, nil }
func mul(a, b int64) (int64, error) { return a * b, nil }

func div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func max64(a, b int64) (int64, error) {
	if a > b {
		return a, nil
	}
	return b, nil
}

func min64(a, b int64) (int64, error) {
	if a < b {
		return a, nil
	}
	return b, nil
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// fold reduces the arguments from left to right starting with the first
// one, so a single argument is returned unchanged.
func fold(op binaryOp) Function {
	return func(ctx *Context) (*ast.Node, error) {
		if ctx.Len() == 0 {
			return nil, ctx.Fail(ErrEmptyArguments)
		}
		return reduceInts(ctx, op)
	}
}

func foldWithIdentity(identity int64, op binaryOp) Function {
	return func(ctx *Context) (*ast.Node, error) {
		if ctx.Len() == 0 {
			return ast.NewInt(nil, identity), nil
		}
		return reduceInts(ctx, op)
	}
}

func reduceInts(ctx *Context, op binaryOp) (*ast.Node, error) {
	values, err := ctx.Ints()
	if err != nil {
		return nil, err
	}
	result := values[0]
	for _, v := range values[1:] {
		if result, err = op(result, v); err != nil {
			return nil, ctx.Fail(err)
		}
	}
	return ast.NewInt(nil, result), nil
}

func unaryNumeric(op func(int64) int64) Function {
	return func(ctx *Context) (*ast.Node, error) {
		if err := ctx.Expect(1); err != nil {
			return nil, err
		}
		v, err := ctx.Int(0)
		if err != nil {
			return nil, err
		}
		return ast.NewInt(nil, op(v)), nil
	}
}

// comparison chains cmp over each pair of consecutive arguments.
func comparison(cmp func(a, b int64) bool) Function {
	return func(ctx *Context) (*ast.Node, error) {
		if ctx.Len() < 2 {
			return ast.True, nil
		}
		values, err := ctx.Ints()
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(values); i++ {
			if !cmp(values[i-1], values[i]) {
				return ast.False, nil
			}
		}
		return ast.True, nil
	}
}
