package builtin

import (
	"github.com/xiam/scheme/ast"
)

var predicateProcedures = []definition{
	{"number?", ClassTypePredicate, typePredicate(isNumber)},
	{"boolean?", ClassTypePredicate, typePredicate(isBoolean)},
	{"pair?", ClassTypePredicate, typePredicate(isPair)},
	{"null?", ClassTypePredicate, typePredicate(isNull)},
	{"list?", ClassTypePredicate, typePredicate(isList)},

	{"and", ClassLogical, and},
	{"or", ClassLogical, or},

	{"not", ClassUnaryBoolean, not},
}

func isNumber(n *ast.Node) bool {
	return n.Is(ast.NodeTypeInt)
}

func isBoolean(n *ast.Node) bool {
	return n.Is(ast.NodeTypeBool)
}

// isPair holds for a cell whose cdr is not a further pair, or is a pair that
// closes the list right away.
func isPair(n *ast.Node) bool {
	if !n.IsPair() {
		return false
	}
	cdr := n.Cdr()
	return !cdr.IsPair() || cdr.Cdr().IsEmpty()
}

func isNull(n *ast.Node) bool {
	return n.IsEmpty()
}

func isList(n *ast.Node) bool {
	return n.IsProperList()
}

func typePredicate(pred func(*ast.Node) bool) Function {
	return func(ctx *Context) (*ast.Node, error) {
		if err := ctx.Expect(1); err != nil {
			return nil, err
		}
		return ast.NewBool(pred(ctx.Argument(0))), nil
	}
}

// and returns #f at the first false argument and the last argument
// otherwise. Arguments were reduced before the call, only the returned value
// short-circuits.
func and(ctx *Context) (*ast.Node, error) {
	result := ast.True
	for _, arg := range ctx.Arguments() {
		if !arg.Truthy() {
			return ast.False, nil
		}
		result = arg
	}
	return result, nil
}

// or folds its arguments pairwise starting from #f: each step yields the
// argument when either side is true and #f otherwise.
func or(ctx *Context) (*ast.Node, error) {
	result := ast.False
	for _, arg := range ctx.Arguments() {
		if result.Truthy() || arg.Truthy() {
			result = arg
			continue
		}
		result = ast.False
	}
	return result, nil
}

func not(ctx *Context) (*ast.Node, error) {
	if err := ctx.Expect(1); err != nil {
		return nil, err
	}
	return ast.NewBool(!ctx.Argument(0).Truthy()), nil
}
