package ast

import (
	"github.com/xiam/scheme/lexer"
)

// Node represents a value of the S-expression tree. Nodes are immutable once
// built, a pair only points to children that already exist, so trees are
// always acyclic.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

type pair struct {
	car *Node
	cdr *Node
}

// Boolean values.
var (
	True  = NewBool(true)
	False = NewBool(false)
)

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		tok: tok,
		v:   v,
	}
}

// NewInt creates a node of type int
func NewInt(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeInt, tok, v)
}

// NewSymbol creates a node of type symbol
func NewSymbol(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewBool creates a node of type bool
func NewBool(v bool) *Node {
	return newNode(NodeTypeBool, nil, v)
}

// NewDot creates the transient marker the reader uses for a dot token.
func NewDot(tok *lexer.Token) *Node {
	return newNode(NodeTypeDot, tok, nil)
}

// NewEmpty creates the empty list
func NewEmpty(tok *lexer.Token) *Node {
	return newNode(NodeTypeEmpty, tok, nil)
}

// NewPair creates a cons cell. A nil car or cdr stands for the empty list.
func NewPair(car *Node, cdr *Node) *Node {
	if car == nil {
		car = NewEmpty(nil)
	}
	if cdr == nil {
		cdr = NewEmpty(nil)
	}
	return newNode(NodeTypePair, nil, &pair{car: car, cdr: cdr})
}

// List builds a proper list out of the given nodes.
func List(nodes ...*Node) *Node {
	return ListWithTail(nil, nodes...)
}

// ListWithTail builds a chain of pairs out of the given nodes that ends in
// tail, a nil tail ends the chain with the empty list.
func ListWithTail(tail *Node, nodes ...*Node) *Node {
	if tail == nil {
		tail = NewEmpty(nil)
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		tail = NewPair(nodes[i], tail)
	}
	return tail
}

// Token returns the token associated to the node, if any
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Is returns true if the node is of the given type
func (n *Node) Is(nt NodeType) bool {
	return n.nt == nt
}

// IsAtom returns true for integers, symbols, booleans and the dot marker.
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeAtom > 0
}

// IsPair returns true if the node is a cons cell
func (n *Node) IsPair() bool {
	return n.nt == NodeTypePair
}

// IsEmpty returns true if the node is the empty list
func (n *Node) IsEmpty() bool {
	return n.nt == NodeTypeEmpty
}

// IsSymbol returns true if the node is a symbol spelled name
func (n *Node) IsSymbol(name string) bool {
	return n.nt == NodeTypeSymbol && n.v.(string) == name
}

// Int returns the value of an int node
func (n *Node) Int() int64 {
	return n.v.(int64)
}

// Name returns the name of a symbol node
func (n *Node) Name() string {
	return n.v.(string)
}

// Bool returns the value of a bool node
func (n *Node) Bool() bool {
	return n.v.(bool)
}

// Car returns the first slot of a pair
func (n *Node) Car() *Node {
	return n.v.(*pair).car
}

// Cdr returns the second slot of a pair
func (n *Node) Cdr() *Node {
	return n.v.(*pair).cdr
}

// Truthy returns false for #f and true for everything else.
func (n *Node) Truthy() bool {
	return !(n.nt == NodeTypeBool && !n.Bool())
}

// IsProperList returns true for the empty list and for chains of pairs that
// end in the empty list.
func (n *Node) IsProperList() bool {
	for n.IsPair() {
		n = n.Cdr()
	}
	return n.IsEmpty()
}

// Slice walks the cdr chain and returns its elements. The returned tail is
// nil for a proper list and the final non-pair value otherwise.
func (n *Node) Slice() ([]*Node, *Node) {
	nodes := []*Node{}
	for n.IsPair() {
		nodes = append(nodes, n.Car())
		n = n.Cdr()
	}
	if n.IsEmpty() {
		return nodes, nil
	}
	return nodes, n
}

func (n *Node) String() string {
	return string(Encode(n))
}
