package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit). Tokens are
// plain values with no tie back to the Lexer that produced them.
type Token struct {
	tt    TokenType
	text  string
	value float64
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string) Token {
	return Token{
		tt:   tt,
		text: text,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Text returns the raw source text of the lexical unit
func (t Token) Text() string {
	return t.text
}

// Value returns the parsed value of a number token, zero for any other type
func (t Token) Value() float64 {
	return t.value
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	switch t.tt {
	case TokenNumber:
		return fmt.Sprintf("(:%v %v)", t.tt, t.value)
	case TokenEOF:
		return fmt.Sprintf("(:%v)", t.tt)
	}
	return fmt.Sprintf("(:%v %q)", t.tt, t.text)
}
