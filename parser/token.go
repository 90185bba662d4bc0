package parser

import "fmt"

// Span is a half-open byte range into the source text.
type Span struct {
	Start int
	End   int
}

// Text returns the part of src covered by the span.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

func (s Span) Len() int {
	return s.End - s.Start
}

type TokenKind int

const (
	TokenEOF TokenKind = iota

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenColon
	TokenComma

	// Literals
	TokenIdent
	TokenBool
	TokenInt
	TokenFloat
	TokenChar
	TokenString

	// Optional markers
	TokenSome
	TokenNone
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:      "EOF",
	TokenLParen:   "(",
	TokenRParen:   ")",
	TokenLBracket: "[",
	TokenRBracket: "]",
	TokenLBrace:   "{",
	TokenRBrace:   "}",
	TokenColon:    ":",
	TokenComma:    ",",
	TokenIdent:    "Identifier",
	TokenBool:     "Bool",
	TokenInt:      "Int",
	TokenFloat:    "Float",
	TokenChar:     "Char",
	TokenString:   "String",
	TokenSome:     "Some",
	TokenNone:     "None",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexical token. Span covers the identifier run or the
// characters strictly between the quotes of a string; Lexeme always covers
// the complete token as written.
type Token struct {
	Kind   TokenKind
	Span   Span
	Lexeme Span
	Bool   bool
	Int    int64
	Float  float64
	Char   rune
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdent:
		return fmt.Sprintf("Ident[%d:%d]", t.Span.Start, t.Span.End)
	case TokenString:
		return fmt.Sprintf("String[%d:%d]", t.Span.Start, t.Span.End)
	case TokenBool:
		return fmt.Sprintf("Bool(%t)", t.Bool)
	case TokenInt:
		return fmt.Sprintf("Int(%d)", t.Int)
	case TokenFloat:
		return fmt.Sprintf("Float(%g)", t.Float)
	case TokenChar:
		return fmt.Sprintf("Char(%q)", t.Char)
	}
	return t.Kind.String()
}

var keywords = map[string]TokenKind{
	"true":  TokenBool,
	"false": TokenBool,
	"Some":  TokenSome,
	"None":  TokenNone,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
