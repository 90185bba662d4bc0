package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLex    = errors.New("lex error")
	ErrSyntax = errors.New("syntax error")
)

type ErrorKind int

const (
	LexError ErrorKind = iota + 1
	SyntaxError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	}
	return "error"
}

// Error describes malformed input. It is terminal: once a Parser has
// returned an Error it returns the same Error from every later call.
type Error struct {
	Kind     ErrorKind
	File     string
	Offset   int
	Message  string
	Expected []TokenKind
	Got      *Token
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "%s at offset %d: %s", e.Kind, e.Offset, e.Message)
	return sb.String()
}

// Unwrap lets callers match on ErrLex or ErrSyntax with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case LexError:
		return ErrLex
	case SyntaxError:
		return ErrSyntax
	}
	return nil
}

// Span returns the source range the error points at.
func (e *Error) Span() Span {
	if e.Got != nil && e.Got.Kind != TokenEOF {
		return e.Got.Lexeme
	}
	return Span{Start: e.Offset, End: e.Offset}
}

func lexError(offset int, format string, args ...any) *Error {
	return &Error{
		Kind:    LexError,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}

func syntaxError(got Token, msg string, expected ...TokenKind) *Error {
	return &Error{
		Kind:     SyntaxError,
		Offset:   got.Lexeme.Start,
		Message:  msg,
		Expected: expected,
		Got:      &got,
	}
}

// unexpectedToken builds the common "expected X, got Y" error.
func unexpectedToken(got Token, expected ...TokenKind) *Error {
	return syntaxError(got, fmt.Sprintf("expected %s, got %s", describeKinds(expected), describeToken(got)), expected...)
}

func describeKinds(kinds []TokenKind) string {
	quoted := make([]string, len(kinds))
	for i, k := range kinds {
		quoted[i] = describeKind(k)
	}
	switch len(quoted) {
	case 0:
		return "value"
	case 1:
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

func describeKind(k TokenKind) string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenLParen, TokenRParen, TokenLBracket, TokenRBracket,
		TokenLBrace, TokenRBrace, TokenColon, TokenComma:
		return "'" + k.String() + "'"
	}
	return k.String()
}

func describeToken(tok Token) string {
	switch tok.Kind {
	case TokenBool, TokenInt, TokenFloat, TokenChar:
		return tok.String()
	}
	return describeKind(tok.Kind)
}
