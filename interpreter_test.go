package scheme

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/scheme/builtin"
	"github.com/xiam/scheme/parser"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`0`, `0`},
		{`42`, `42`},
		{`-42`, `-42`},
		{`+7`, `7`},
		{`9223372036854775807`, `9223372036854775807`},
		{`-9223372036854775808`, `-9223372036854775808`},
		{`foo`, `foo`},
		{`#t`, `#t`},

		{`(quote (1 2 3))`, `(1 2 3)`},
		{`'(1 2 3)`, `(1 2 3)`},
		{`'(1 . 2)`, `(1 . 2)`},
		{`'(1 2 . 3)`, `(1 2 . 3)`},
		{`'()`, `()`},
		{`'a`, `a`},
		{`''a`, `(quote a)`},
		{`(quote (+ 1 2))`, `(+ 1 2)`},

		{`(+ 1 2 3)`, `6`},
		{`(+)`, `0`},
		{`(*)`, `1`},
		{`(* 2 3 4)`, `24`},
		{`(- 10 1 2)`, `7`},
		{`(- 5)`, `5`},
		{`(/ 20 2 5)`, `2`},
		{`(max 1 5 3)`, `5`},
		{`(min 1 5 -3)`, `-3`},
		{`(abs -9)`, `9`},
		{`(+ 1 (* 2 3) (- 10 4))`, `13`},
		{`(+ 1 . (2 3))`, `6`},
		{`(+ 1 . 2)`, `3`},

		{`(= 1 1 1)`, `#t`},
		{`(> 3 2 1)`, `#t`},
		{`(> 3 2 5)`, `#f`},
		{`(< 1 2 3)`, `#t`},
		{`(<= 1 1 2)`, `#t`},
		{`(>= 3 3 4)`, `#f`},
		{`(=)`, `#t`},
		{`(< 1)`, `#t`},

		{`(number? 1)`, `#t`},
		{`(number? #t)`, `#f`},
		{`(boolean? #f)`, `#t`},
		{`(boolean? 0)`, `#f`},
		{`(null? '())`, `#t`},
		{`(null? (list))`, `#t`},
		{`(null? '(1))`, `#f`},
		{`(pair? (cons 1 2))`, `#t`},
		{`(pair? '(1 2))`, `#t`},
		{`(pair? '(1 2 3))`, `#f`},
		{`(pair? '())`, `#f`},
		{`(list? '())`, `#t`},
		{`(list? '(1 2))`, `#t`},
		{`(list? '(1 . 2))`, `#f`},

		{`(and)`, `#t`},
		{`(or)`, `#f`},
		{`(and 1 2)`, `2`},
		{`(and 1 #f 2)`, `#f`},
		{`(or #f 2)`, `2`},
		{`(or #f #f)`, `#f`},
		{`(or (> 1 2) (list 1))`, `(1)`},
		{`(or 1 2)`, `2`},
		{`(or 1 #f)`, `#f`},
		{`(or #f 1 #f 2)`, `2`},
		{`(not #f)`, `#t`},
		{`(not 1)`, `#f`},
		{`(not '())`, `#f`},

		{`(cons 1 2)`, `(1 . 2)`},
		{`(cons 1 '(2 3))`, `(1 2 3)`},
		{`(cons '() 1)`, `(1)`},
		{`(cons '() '(1 2))`, `(1 2)`},
		{`(cons '() '())`, `(())`},
		{`(list '() 1)`, `(1)`},
		{`(list 1 '() 2)`, `(1 () 2)`},
		{`(car (cons 1 2))`, `1`},
		{`(cdr (cons 1 2))`, `2`},
		{`(car '((1 2) 3))`, `(1 2)`},
		{`(cdr '(1))`, `()`},
		{`(list)`, `()`},
		{`(list 1 2 3)`, `(1 2 3)`},
		{`(list 1 2 3 4 5)`, `(1 2 3 4 5)`},
		{`(list 1 (list 2 3) 4)`, `(1 (2 3) 4)`},
		{`(list #t #f)`, `(#t #f)`},
		{`(list 'a 'b)`, `(a b)`},
		{`(list (1 2))`, `(1 2)`},
		{`(list (list 1 2) 3)`, `((1 2) 3)`},
		{`(list ((quote +) 1 2))`, `(3)`},
		{`(list-ref (list 1 2 3) 1)`, `2`},
		{`(list-ref '(1 2 3) 0)`, `1`},
		{`(list-tail (list 1 2 3) 1)`, `(2 3)`},
		{`(list-tail (list 1 2 3) 3)`, `()`},
		{`(car (list-tail '(1 2 3) 2))`, `3`},

		{"(+ 1\n\t2\n)", `3`},
		{"  (list   1 2)  ", `(1 2)`},
	}

	for _, tc := range testCases {
		out, err := Run(tc.In)
		require.NoError(t, err, "input: %q", tc.In)
		assert.Equal(t, tc.Out, out, "input: %q", tc.In)
	}
}

func TestRunIntegerLiterals(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 7, 100, -65536, 1 << 40, -(1 << 62)} {
		out, err := Run(fmt.Sprintf("%d", n))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%d", n), out)
	}
}

func TestRunSyntaxErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{``, parser.ErrEmptyInput},
		{`   `, parser.ErrEmptyInput},
		{`(`, parser.ErrUnexpectedEOF},
		{`)`, parser.ErrUnmatchedClose},
		{`1 2`, parser.ErrTrailingInput},
		{`(+ 1 2))`, parser.ErrUnmatchedClose},
		{`(+ 1 2`, parser.ErrUnexpectedEOF},
		{`.`, parser.ErrStrayDot},
		{`(. 1)`, parser.ErrDotAfterOpen},
		{`(1 .)`, parser.ErrMissingDottedTail},
		{`(1 . 2 3)`, parser.ErrDottedTailNotLast},
		{`'`, parser.ErrUnexpectedEOF},
		{`(+ 99999999999999999999 1)`, parser.ErrIntegerRange},
	}

	for _, tc := range testCases {
		out, err := Run(tc.In)
		assert.Empty(t, out, "input: %q", tc.In)
		assert.True(t, errors.Is(err, tc.Err), "input: %q, got: %v", tc.In, err)
		assert.True(t, IsSyntaxError(err), "input: %q", tc.In)
		assert.False(t, IsRuntimeError(err), "input: %q", tc.In)
	}
}

func TestRunRuntimeErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`()`, builtin.ErrEmptyExpression},
		{`(1 2 3)`, builtin.ErrUnknownOperator},
		{`(foo 1 2)`, builtin.ErrUnknownOperator},
		{`((+ 1 2))`, builtin.ErrUnknownOperator},
		{`(define x 1)`, builtin.ErrUnknownOperator},
		{`(-)`, builtin.ErrEmptyArguments},
		{`(/)`, builtin.ErrEmptyArguments},
		{`(max)`, builtin.ErrEmptyArguments},
		{`(min)`, builtin.ErrEmptyArguments},
		{`(+ 1 #t)`, builtin.ErrType},
		{`(+ 1 'a)`, builtin.ErrType},
		{`(< 1 '())`, builtin.ErrType},
		{`(abs)`, builtin.ErrArity},
		{`(abs 1 2)`, builtin.ErrArity},
		{`(/ 1 0)`, builtin.ErrDivisionByZero},
		{`(not)`, builtin.ErrArity},
		{`(not 1 2)`, builtin.ErrArity},
		{`(null? 1 2)`, builtin.ErrArity},
		{`(cons 1)`, builtin.ErrArity},
		{`(cons 1 2 3)`, builtin.ErrArity},
		{`(car 1)`, builtin.ErrType},
		{`(car '())`, builtin.ErrType},
		{`(cdr #f)`, builtin.ErrType},
		{`(list-ref (list 1 2 3) 3)`, builtin.ErrIndexRange},
		{`(list-ref (list 1 2 3) -1)`, builtin.ErrIndexRange},
		{`(list-ref 1 0)`, builtin.ErrType},
		{`(list-tail (list 1 2 3) 5)`, builtin.ErrIndexRange},
		{`(quote)`, builtin.ErrArity},
		{`(quote 1 2)`, builtin.ErrArity},
		{`(+ 1 (car '()))`, builtin.ErrType},
	}

	for _, tc := range testCases {
		out, err := Run(tc.In)
		assert.Empty(t, out, "input: %q", tc.In)
		assert.True(t, errors.Is(err, tc.Err), "input: %q, got: %v", tc.In, err)
		assert.True(t, IsRuntimeError(err), "input: %q", tc.In)
		assert.False(t, IsSyntaxError(err), "input: %q", tc.In)
	}
}

func TestRunErrorMessages(t *testing.T) {
	_, err := Run(`(-)`)
	require.Error(t, err)
	assert.Equal(t, "runtime error: -: function can't be applied to empty arguments", err.Error())

	_, err = Run(`(foo 1)`)
	require.Error(t, err)
	assert.Equal(t, "runtime error: unknown operator: foo", err.Error())

	_, err = Run(`(+ 1`)
	require.Error(t, err)
	assert.Equal(t, "syntax error at 1:5: unexpected EOF", err.Error())
}

func TestRunReader(t *testing.T) {
	out, err := New().RunReader(strings.NewReader("(list 1\n 2)"))
	require.NoError(t, err)
	assert.Equal(t, "(1 2)", out)
}

func TestRunConcurrently(t *testing.T) {
	in := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			out, err := in.Run(fmt.Sprintf("(+ %d (* 2 %d))", i, i))
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("%d", 3*i), out)
		}(i)
	}
	wg.Wait()
}
