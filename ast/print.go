package ast

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypePair:
		fmt.Fprintf(w, "(%v)\n", n.Token())
		printLevel(w, n.Car(), level+1)
		printLevel(w, n.Cdr(), level+1)

	case NodeTypeInt, NodeTypeSymbol, NodeTypeBool, NodeTypeDot, NodeTypeEmpty:
		fmt.Fprintf(w, "%s (%v)\n", Encode(n), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its printed form
func Encode(n *Node) []byte {
	var buf strings.Builder
	encodeNode(&buf, n)
	return []byte(buf.String())
}

func encodeNode(buf *strings.Builder, n *Node) {
	switch n.Type() {
	case NodeTypeInt:
		buf.WriteString(strconv.FormatInt(n.Int(), 10))

	case NodeTypeBool:
		if n.Bool() {
			buf.WriteString("#t")
			return
		}
		buf.WriteString("#f")

	case NodeTypeSymbol:
		buf.WriteString(n.Name())

	case NodeTypeDot:
		buf.WriteString(".")

	case NodeTypeEmpty:
		buf.WriteString("()")

	case NodeTypePair:
		car, cdr := n.Car(), n.Cdr()
		switch {
		case car.IsEmpty() && cdr.IsEmpty():
			buf.WriteString("(())")
			return
		case car.IsEmpty():
			// only the cdr is printed, without extra brackets if it is a list
			if cdr.IsPair() {
				encodeNode(buf, cdr)
				return
			}
			buf.WriteByte('(')
			encodeNode(buf, cdr)
			buf.WriteByte(')')
			return
		case cdr.IsEmpty() && car.IsPair():
			encodeNode(buf, car)
			return
		}

		// nested pairs in cdr position collapse into one flat list
		buf.WriteByte('(')
		encodeNode(buf, n.Car())
		tail := n.Cdr()
		for tail.IsPair() {
			buf.WriteByte(' ')
			encodeNode(buf, tail.Car())
			tail = tail.Cdr()
		}
		if !tail.IsEmpty() {
			buf.WriteString(" . ")
			encodeNode(buf, tail)
		}
		buf.WriteByte(')')

	default:
		panic("unknown node type")
	}
}
