package main

import (
	"fmt"
	"log"

	"github.com/xiam/scheme/lexer"
)

func main() {
	input := `
		(list-ref
			(list 1 -2 +3 '(a . b))
			#t)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
