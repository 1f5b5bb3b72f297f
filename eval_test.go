package scheme

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/builtin"
	"github.com/xiam/scheme/parser"
)

func TestEvalLeavesInputUntouched(t *testing.T) {
	root, err := parser.Parse([]byte(`(list (+ 1 2) (car '(4 5)) #t)`))
	require.NoError(t, err)

	value, err := New().Eval(root)
	require.NoError(t, err)

	assert.Equal(t, `(3 4 #t)`, value.String())
	assert.Equal(t, `(list (+ 1 2) (car (quote (4 5))) #t)`, root.String())
}

func TestEvalIdempotent(t *testing.T) {
	in := New()

	for _, node := range []*ast.Node{
		ast.NewInt(nil, 5),
		ast.True,
		ast.False,
		ast.NewSymbol(nil, "x"),
	} {
		value, err := in.Eval(node)
		require.NoError(t, err)
		assert.Same(t, node, value)

		again, err := in.Eval(value)
		require.NoError(t, err)
		assert.Same(t, value, again)
	}

	value, err := in.reduce(ast.NewEmpty(nil))
	require.NoError(t, err)
	assert.True(t, value.IsEmpty())

	value, err = in.reduce(ast.NewDot(nil))
	require.NoError(t, err)
	assert.True(t, value.Is(ast.NodeTypeDot))
}

func TestEvalBooleanCoercion(t *testing.T) {
	root, err := parser.Parse([]byte(`(list #t #f)`))
	require.NoError(t, err)

	value, err := New().Eval(root)
	require.NoError(t, err)

	items, tail := value.Slice()
	assert.Nil(t, tail)
	require.Len(t, items, 2)
	assert.Equal(t, ast.NodeTypeBool, items[0].Type())
	assert.True(t, items[0].Bool())
	assert.False(t, items[1].Bool())

	// outside of an argument list the symbols are kept
	root, err = parser.Parse([]byte(`'(#t)`))
	require.NoError(t, err)

	value, err = New().Eval(root)
	require.NoError(t, err)
	assert.True(t, value.Car().IsSymbol("#t"))
}

func TestEvalUnknownCombinationIsData(t *testing.T) {
	root, err := parser.Parse([]byte(`(cdr '(1 (2 3)))`))
	require.NoError(t, err)

	value, err := New().Eval(root)
	require.NoError(t, err)
	assert.Equal(t, `(2 3)`, value.String())

	value, err = New().reduce(ast.List(ast.NewSymbol(nil, "foo"), ast.List(ast.NewSymbol(nil, "+"), ast.NewInt(nil, 1))))
	require.NoError(t, err)
	assert.Equal(t, `(foo 1)`, value.String())
}

func TestEvalLogger(t *testing.T) {
	var buf bytes.Buffer
	in := New(WithLogger(log.New(&buf, "", 0)))

	out, err := in.Run(`(+ 1 (* 2 3))`)
	require.NoError(t, err)
	assert.Equal(t, "7", out)

	assert.Equal(t, "reduce: (+ 1 (* 2 3))\nreduce: (* 2 3)\napply: * [2 3]\napply: + [1 6]\n", buf.String())
}

func TestEvalWithRegistry(t *testing.T) {
	in := New(WithRegistry(builtin.New()))

	out, err := in.Run(`(list-tail '(1 2 3) 2)`)
	require.NoError(t, err)
	assert.Equal(t, "(3)", out)
}
