package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenIdentifier           // Letter or underscore initial word: "x", "rate_2"
	TokenNumber               // Digit initial numeric literal: "42", "3.14"
	TokenPlus                 // Plus sign: "+"
	TokenMinus                // Minus sign: "-"
	TokenStar                 // Asterisk: "*"
	TokenSlash                // Forward slash: "/"
	TokenCaret                // Caret: "^"
	TokenEqual                // Equals sign: "="
	TokenSemicolon            // Semicolon: ";"
	TokenLParen               // Open parenthesis: "("
	TokenRParen               // Close parenthesis: ")"
	TokenLet                  // Reserved keyword: "let"
	TokenEOF                  // End of input
)

// symbolTokens maps every single-character token to its type. None of these
// characters starts a longer token, so a match here is always final.
var symbolTokens = map[rune]TokenType{
	'=': TokenEqual,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'^': TokenCaret,
	';': TokenSemicolon,
	'(': TokenLParen,
	')': TokenRParen,
}

// keywords holds every reserved word. A scanned word not present here is an
// ordinary identifier.
var keywords = map[string]TokenType{
	"let": TokenLet,
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenIdentifier: "identifier",
	TokenNumber:     "number",
	TokenPlus:       "plus",
	TokenMinus:      "minus",
	TokenStar:       "star",
	TokenSlash:      "slash",
	TokenCaret:      "caret",
	TokenEqual:      "equal",
	TokenSemicolon:  "semicolon",
	TokenLParen:     "open_paren",
	TokenRParen:     "close_paren",
	TokenLet:        "let",
	TokenEOF:        "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isWordContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
