package lexer

import (
	"errors"
)

var (
	// ErrUnrecognizedChar reports a character that no token can start. The
	// cursor is already past it, so the caller may keep pulling tokens.
	ErrUnrecognizedChar = errors.New("unrecognized character")

	// ErrMalformedNumber reports a numeric literal that does not parse as a
	// float, such as one with more than one decimal point.
	ErrMalformedNumber = errors.New("malformed number literal")
)
