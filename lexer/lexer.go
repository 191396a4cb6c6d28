package lexer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"
)

// New initializes a Lexer object over a complete source text. The Lexer
// never reads more than one character of the source per cursor step and
// never rewinds.
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:  s.Init(r),
		buf: []rune{},
	}
}

// NewString initializes a Lexer object over a source string
func NewString(src string) *Lexer {
	return New(strings.NewReader(src))
}

// Lexer represents a lexical analyzer. One Lexer must not be driven from
// more than one goroutine at a time; independent Lexers over independent
// sources are fine.
type Lexer struct {
	in *scanner.Scanner

	buf []rune
}

// Next returns the next token in the source. At the end of the input it
// returns a TokenEOF token, and keeps returning it on every later call.
//
// A character that no token can start yields ErrUnrecognizedChar, and a
// numeric literal that does not parse yields ErrMalformedNumber. Both leave
// the cursor just past the offending text, so the caller may report the
// error and keep pulling tokens.
func (lx *Lexer) Next() (Token, error) {
	lx.skipWhitespace()
	lx.buf = lx.buf[:0]

	r, err := lx.next()
	if err != nil {
		return NewToken(TokenEOF, ""), nil
	}

	if tt, ok := symbolTokens[r]; ok {
		return NewToken(tt, string(lx.buf)), nil
	}

	switch {
	case isWordStart(r):
		return lookupKeyword(lx.scanWord()), nil
	case isDigit(r):
		return lx.scanNumber()
	}

	return Token{}, fmt.Errorf("%w %q", ErrUnrecognizedChar, r)
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func (lx *Lexer) skipWhitespace() {
	for isWhitespace(lx.peek()) {
		lx.in.Next()
	}
}

// scanWord consumes the rest of an identifier-shaped word. The first
// character is already in the buffer.
func (lx *Lexer) scanWord() string {
	for isWordContinue(lx.peek()) {
		if _, err := lx.next(); err != nil {
			break
		}
	}
	return string(lx.buf)
}

// scanNumber consumes the rest of a numeric literal: decimal digits and
// every dot, however many. A literal like "1.2.3" is consumed whole and
// rejected here when it fails to parse, never split into smaller tokens.
func (lx *Lexer) scanNumber() (Token, error) {
	for isDigit(lx.peek()) || lx.peek() == '.' {
		if _, err := lx.next(); err != nil {
			break
		}
	}

	text := string(lx.buf)
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, fmt.Errorf("%w %q", ErrMalformedNumber, text)
	}

	return Token{tt: TokenNumber, text: text, value: value}, nil
}

// lookupKeyword maps a fully-scanned word to its reserved-keyword token, or
// wraps it as an identifier when it is not reserved. Matching is exact and
// case-sensitive.
func lookupKeyword(word string) Token {
	if tt, ok := keywords[word]; ok {
		return NewToken(tt, word)
	}
	return NewToken(TokenIdentifier, word)
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the trailing TokenEOF, or an error if a token can't be
// identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			return tokens, nil
		}
	}
}
