package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/exprlab/mexpr/lexer"
)

func main() {
	name := ""
	if len(os.Args) > 1 {
		name = os.Args[1]
	} else {
		fmt.Println("Please enter a filename.")

		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			log.Fatal(err)
		}
		name = strings.TrimSpace(line)
	}

	src, err := ioutil.ReadFile(name)
	if err != nil {
		log.Fatal(err)
	}

	lx := lexer.New(bytes.NewReader(src))
	for {
		tok, err := lx.Next()
		if err != nil {
			// Lexical errors are local to one token; report and keep going.
			log.Print(err)
			continue
		}
		if tok.Is(lexer.TokenEOF) {
			break
		}
		fmt.Println(tok)
	}
}
