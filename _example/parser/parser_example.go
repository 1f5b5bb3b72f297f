package main

import (
	"log"

	"github.com/xiam/scheme/ast"
	"github.com/xiam/scheme/parser"
)

func main() {
	input := `(cons (list 1 2 . (3)) '(a b . c))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
