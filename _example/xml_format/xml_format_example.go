package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/scheme"
	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsPair() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		printIndentedTree(node.Car(), indentationLevel+1)
		printIndentedTree(node.Cdr(), indentationLevel+1)
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, node.Type(), node, node.Type())
}

func main() {
	input := `(list (cons 1 2) '(a b) (not #f))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}
	printTree(root)

	value, err := scheme.New().Eval(root)
	if err != nil {
		log.Fatal("Eval:", err)
	}
	printTree(value)
}
