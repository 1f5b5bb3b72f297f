package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xiam/scheme"
)

func main() {
	in := scheme.New(scheme.WithLogger(log.New(os.Stderr, "eval: ", 0)))

	inputs := []string{
		`(+ 1 2 3)`,
		`(list-ref (list 1 2 3) 1)`,
		`(and (> 3 2 1) (cons 1 2))`,
		`(list-tail (list 1 2 3) 5)`,
		`(1 2`,
	}

	for _, input := range inputs {
		out, err := in.Run(input)
		switch {
		case scheme.IsSyntaxError(err), scheme.IsRuntimeError(err):
			fmt.Printf("%s\n\t=> %v\n", input, err)
		case err != nil:
			log.Fatal("Run:", err)
		default:
			fmt.Printf("%s\n\t=> %s\n", input, out)
		}
	}
}
