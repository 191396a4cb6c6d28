package main

import (
	"fmt"
	"log"

	"github.com/exprlab/mexpr/lexer"
)

func main() {
	input := `
		let rate = 3.14;
		let area = rate * (r ^ 2);
		(a*b)/c^2
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v) -> %q\n", i, tok.Type(), tok.Text())
	}
}
