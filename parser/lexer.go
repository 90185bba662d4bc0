package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

const eof = -1

type Lexer struct {
	input string
	pos   int
	width int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

// backup puts back the last character read by next. Only one character of
// pushback is available.
func (l *Lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) skipWhitespace() {
	for {
		r := l.next()
		if r == eof {
			return
		}
		if !unicode.IsSpace(r) {
			l.backup()
			return
		}
	}
}

var punctuation = map[rune]TokenKind{
	'(': TokenLParen,
	')': TokenRParen,
	'[': TokenLBracket,
	']': TokenRBracket,
	'{': TokenLBrace,
	'}': TokenRBrace,
	':': TokenColon,
	',': TokenComma,
}

// NextToken scans the next token. At the end of input it returns a token of
// kind TokenEOF, and keeps doing so on every later call.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	start := l.pos

	ch := l.next()
	if ch == eof {
		return l.token(TokenEOF, start), nil
	}
	if kind, ok := punctuation[ch]; ok {
		return l.token(kind, start), nil
	}

	switch {
	case ch == '"':
		return l.scanString(start)
	case ch == '\'':
		return l.scanChar(start)
	case isDigit(ch) || ch == '-':
		return l.scanNumber(start)
	}
	// Any other character starts an identifier, even one that could not
	// continue it, such as '+' or '#'.
	return l.scanIdentOrKeyword(start), nil
}

func (l *Lexer) scanString(start int) (Token, error) {
	contentStart := l.pos
	for {
		switch l.next() {
		case eof:
			return Token{}, lexError(start, "unterminated string literal")
		case '"':
			tok := l.token(TokenString, start)
			tok.Span = Span{Start: contentStart, End: l.pos - 1}
			return tok, nil
		}
	}
}

func (l *Lexer) scanChar(start int) (Token, error) {
	ch := l.next()
	switch ch {
	case eof:
		return Token{}, lexError(start, "unterminated character literal")
	case '\'':
		return Token{}, lexError(start, "empty character literal")
	}

	switch l.next() {
	case '\'':
	case eof:
		return Token{}, lexError(start, "unterminated character literal")
	default:
		return Token{}, lexError(start, "character literal must contain exactly one character")
	}

	tok := l.token(TokenChar, start)
	tok.Char = ch
	return tok, nil
}

// scanNumber consumes every following digit or '.' and leaves validation to
// the integer and float parsers.
func (l *Lexer) scanNumber(start int) (Token, error) {
	for {
		ch := l.next()
		if !isDigit(ch) && ch != '.' {
			l.backup()
			break
		}
	}

	literal := l.input[start:l.pos]
	if n, err := strconv.ParseInt(literal, 10, 64); err == nil {
		tok := l.token(TokenInt, start)
		tok.Int = n
		return tok, nil
	}
	if f, err := strconv.ParseFloat(literal, 64); err == nil {
		tok := l.token(TokenFloat, start)
		tok.Float = f
		return tok, nil
	}
	return Token{}, lexError(start, "invalid number %q", literal)
}

func (l *Lexer) scanIdentOrKeyword(start int) Token {
	for {
		ch := l.next()
		if !isIdentPart(ch) {
			l.backup()
			break
		}
	}

	literal := l.input[start:l.pos]
	kind := LookupKeyword(literal)
	tok := l.token(kind, start)
	if kind == TokenBool {
		tok.Bool = literal == "true"
	}
	return tok
}

func (l *Lexer) token(kind TokenKind, start int) Token {
	span := Span{Start: start, End: l.pos}
	return Token{Kind: kind, Span: span, Lexeme: span}
}

// Tokenize scans all of src and returns its tokens, not including the final
// TokenEOF.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentPart(ch rune) bool {
	if ch == eof {
		return false
	}
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
