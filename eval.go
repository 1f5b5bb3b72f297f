package scheme

import (
	"fmt"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/builtin"
)

const (
	quoteSymbol = "quote"

	trueSymbol  = "#t"
	falseSymbol = "#f"
)

// Eval reduces a tree produced by the parser. A list is only accepted when
// its head names quote or a registered procedure.
func (in *Interpreter) Eval(node *ast.Node) (*ast.Node, error) {
	if err := in.checkOperator(node); err != nil {
		return nil, err
	}
	return in.reduce(node)
}

func (in *Interpreter) checkOperator(node *ast.Node) error {
	switch {
	case node.IsEmpty():
		return builtin.NewRuntimeError("", builtin.ErrEmptyExpression)
	case !node.IsPair():
		return nil
	}

	head := node.Car()
	if head.IsSymbol(quoteSymbol) {
		return nil
	}
	if head.Is(ast.NodeTypeSymbol) {
		if _, ok := in.registry.Lookup(head.Name()); ok {
			return nil
		}
	}
	return builtin.NewRuntimeError("", fmt.Errorf("%w: %v", builtin.ErrUnknownOperator, head))
}

// reduce returns the normal form of node. The input tree is left untouched,
// reduced children are assembled into new pairs.
func (in *Interpreter) reduce(node *ast.Node) (*ast.Node, error) {
	switch node.Type() {
	case ast.NodeTypeEmpty, ast.NodeTypeInt, ast.NodeTypeSymbol, ast.NodeTypeBool, ast.NodeTypeDot:
		return node, nil
	case ast.NodeTypePair:
		// continue
	default:
		panic("unreachable")
	}

	in.logger.Printf("reduce: %v", node)

	if node.Car().IsSymbol(quoteSymbol) {
		return quoted(node)
	}

	head, err := in.reduce(node.Car())
	if err != nil {
		return nil, err
	}

	items, tail := node.Cdr().Slice()

	values := make([]*ast.Node, 0, len(items))
	for i := range items {
		value, err := in.reduce(items[i])
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if tail != nil {
		if tail, err = in.reduce(tail); err != nil {
			return nil, err
		}
	}

	if head.Is(ast.NodeTypeSymbol) {
		if fn, ok := in.registry.Lookup(head.Name()); ok {
			args := collectArguments(values, tail)
			in.logger.Printf("apply: %s %v", fn.Name, args)
			return fn.Call(args)
		}
	}

	// not an application, keep the reduced combination as data
	return ast.NewPair(head, ast.ListWithTail(tail, values...)), nil
}

// quoted returns the single argument of (quote x) without reducing it.
func quoted(node *ast.Node) (*ast.Node, error) {
	items, tail := node.Cdr().Slice()
	if len(items) != 1 || tail != nil {
		return nil, builtin.NewRuntimeError(quoteSymbol, fmt.Errorf("%w: expected 1 argument", builtin.ErrArity))
	}
	return items[0], nil
}

// collectArguments appends a dotted tail as the last argument and turns the
// symbols #t and #f into booleans.
func collectArguments(values []*ast.Node, tail *ast.Node) []*ast.Node {
	args := make([]*ast.Node, 0, len(values)+1)
	args = append(args, values...)
	if tail != nil {
		args = append(args, tail)
	}
	for i := range args {
		switch {
		case args[i].IsSymbol(trueSymbol):
			args[i] = ast.True
		case args[i].IsSymbol(falseSymbol):
			args[i] = ast.False
		}
	}
	return args
}
