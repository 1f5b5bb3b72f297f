package builtin

import (
	"fmt"
	"sort"

	"github.com/xiam/scheme/ast"
)

// Class groups procedures by the way they interpret their arguments.
type Class uint8

// Calling conventions
const (
	ClassInvalid Class = iota
	ClassArithmetic
	ClassUnaryNumeric
	ClassComparison
	ClassTypePredicate
	ClassLogical
	ClassUnaryBoolean
	ClassConstructor
	ClassAccessor
	ClassIndexedAccessor
)

var classNames = map[Class]string{
	ClassInvalid:         "invalid",
	ClassArithmetic:      "arithmetic",
	ClassUnaryNumeric:    "unary numeric",
	ClassComparison:      "comparison",
	ClassTypePredicate:   "type predicate",
	ClassLogical:         "logical",
	ClassUnaryBoolean:    "unary boolean",
	ClassConstructor:     "list constructor",
	ClassAccessor:        "list accessor",
	ClassIndexedAccessor: "indexed accessor",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return classNames[ClassInvalid]
}

// Builtin is one entry of the registry.
type Builtin struct {
	Name  string
	Class Class

	fn Function
}

// Call applies the procedure to already reduced arguments.
func (b *Builtin) Call(args []*ast.Node) (*ast.Node, error) {
	return b.fn(NewContext(b.Name, args))
}

// Registry maps names to built-in procedures. A registry is filled once by
// New and only read afterwards, so it can be shared between goroutines.
type Registry struct {
	n map[string]*Builtin
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

func newRegistry() *Registry {
	return &Registry{
		n: make(map[string]*Builtin),
	}
}

func (r *Registry) set(name string, class Class, fn Function) error {
	if _, ok := r.n[name]; ok {
		return fmt.Errorf("%q is already defined", name)
	}
	r.n[name] = &Builtin{
		Name:  name,
		Class: class,
		fn:    fn,
	}
	return nil
}

// Lookup returns the procedure registered under name.
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.n[name]
	return b, ok
}

// Get is like Lookup but fails with ErrUnknownOperator.
func (r *Registry) Get(name string) (*Builtin, error) {
	if b, ok := r.n[name]; ok {
		return b, nil
	}
	return nil, NewRuntimeError("", fmt.Errorf("%w: %q", ErrUnknownOperator, name))
}

// Apply calls the procedure registered under name.
func (r *Registry) Apply(name string, args []*ast.Node) (*ast.Node, error) {
	b, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return b.Call(args)
}

// Names returns all registered names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.n))
	for name := range r.n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type definition struct {
	name  string
	class Class
	fn    Function
}

// New builds a registry holding every built-in procedure.
func New() *Registry {
	r := newRegistry()

	groups := [][]definition{
		arithmeticProcedures,
		predicateProcedures,
		listProcedures,
	}
	for _, group := range groups {
		for _, def := range group {
			if err := r.set(def.name, def.class, def.fn); err != nil {
				panic("builtin: " + err.Error())
			}
		}
	}

	return r
}
