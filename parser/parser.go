package parser

import (
	"errors"
	"fmt"
	"iter"
)

type Option func(*Parser)

// WithFile records the name of the parsed file in returned errors.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithStrict rejects input that the default parser tolerates: a comma
// before the first element of a container, elements not separated by a
// comma, and tokens after the last top-level value that cannot start a value.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// WithMaxDepth limits how many containers may be open at once. Zero means
// no limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

type frameKind int

const (
	frameNone frameKind = iota
	frameSecondValue
	frameMap
	frameStruct
	frameTuple
	frameList
	frameOptionalSome
	frameEndedOptionalSome
)

// frame is an entry of the context stack.
type frame struct {
	kind frameKind
	name string

	elements      int
	awaitingColon bool
}

func (f frame) isContainer() bool {
	switch f.kind {
	case frameMap, frameStruct, frameTuple, frameList:
		return true
	}
	return false
}

// Parser turns source text into a stream of events, one per call to
// NextEvent. It never builds a value tree and never reads further ahead
// than the grammar alternative it is currently trying.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	src      string
	file     string
	strict   bool
	maxDepth int

	tokens *TokenStream
	stack  []frame
	depth  int
	err    error
	eof    *Event
}

func New(src string, opts ...Option) *Parser {
	p := &Parser{
		src:    src,
		tokens: NewTokenStream(NewLexer(src)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset discards all state and starts over on src, keeping the options.
func (p *Parser) Reset(src string) {
	p.src = src
	p.tokens = NewTokenStream(NewLexer(src))
	p.stack = p.stack[:0]
	p.depth = 0
	p.err = nil
	p.eof = nil
}

// Source returns the text being parsed.
func (p *Parser) Source() string {
	return p.src
}

// File returns the name set with WithFile.
func (p *Parser) File() string {
	return p.file
}

// Depth returns the number of containers that are currently open.
func (p *Parser) Depth() int {
	return p.depth
}

// NextEvent returns the next event. Once an EOF event has been returned,
// every later call returns EOF again. Errors are terminal: after the first
// error, every later call returns that error.
func (p *Parser) NextEvent() (Event, error) {
	if p.err != nil {
		return Event{}, p.err
	}
	if p.eof != nil {
		return *p.eof, nil
	}

	ev, err := p.nextEvent()
	if err != nil {
		var perr *Error
		if errors.As(err, &perr) && perr.File == "" {
			perr.File = p.file
		}
		p.err = err
		return Event{}, err
	}
	if ev.Kind == EventEOF {
		p.eof = &ev
	}
	return ev, nil
}

// Events iterates over the remaining events. Iteration stops after the EOF
// event or the first error.
func (p *Parser) Events() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, err := p.NextEvent()
			if !yield(ev, err) || err != nil || ev.Kind == EventEOF {
				return
			}
		}
	}
}

func (p *Parser) nextEvent() (Event, error) {
	for {
		if len(p.stack) == 0 {
			return p.topLevel()
		}

		top := &p.stack[len(p.stack)-1]
		switch top.kind {
		case frameMap:
			if !top.awaitingColon {
				return p.mapKey()
			}
			top.awaitingColon = false
			if _, err := p.expect(TokenColon); err != nil {
				return Event{}, err
			}
			p.push(frame{kind: frameSecondValue})
		case frameStruct:
			return p.structField()
		case frameTuple:
			return p.element(TokenRParen, EventTupleEnd)
		case frameList:
			return p.element(TokenRBracket, EventListEnd)
		case frameSecondValue:
			p.pop()
			return p.expectValue()
		case frameOptionalSome:
			top.kind = frameEndedOptionalSome
			return p.expectValue()
		case frameEndedOptionalSome:
			if _, err := p.expect(TokenRParen); err != nil {
				return Event{}, err
			}
			p.pop()
		default:
			panic(fmt.Sprintf("parser: unexpected frame kind %d", top.kind))
		}
	}
}

func (p *Parser) topLevel() (Event, error) {
	ev, ok, err := p.tryValue()
	if err != nil || ok {
		return ev, err
	}

	tok, err := p.next()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind != TokenEOF {
		if p.strict {
			return Event{}, syntaxError(tok, fmt.Sprintf("unexpected %s after value", describeToken(tok)))
		}
		p.tokens.PushBack(tok)
	}
	return Event{Kind: EventEOF, Offset: tok.Lexeme.Start}, nil
}

func (p *Parser) mapKey() (Event, error) {
	closed, end, err := p.separator(TokenRBrace)
	if err != nil {
		return Event{}, err
	}
	if closed {
		p.pop()
		return Event{Kind: EventMapEnd, Offset: end.Lexeme.Start}, nil
	}

	height := len(p.stack)
	key, err := p.expectValue()
	if err != nil {
		return Event{}, err
	}
	if len(p.stack) > height {
		// The key opened a container; its colon is checked once the map
		// is back on top.
		p.stack[height-1].awaitingColon = true
		return key, nil
	}
	if _, err := p.expect(TokenColon); err != nil {
		return Event{}, err
	}
	p.push(frame{kind: frameSecondValue})
	return key, nil
}

func (p *Parser) structField() (Event, error) {
	closed, end, err := p.separator(TokenRParen)
	if err != nil {
		return Event{}, err
	}
	if closed {
		name := p.pop().name
		return Event{Kind: EventStructEnd, Name: name, Offset: end.Lexeme.Start}, nil
	}

	field, err := p.next()
	if err != nil {
		return Event{}, err
	}
	if field.Kind != TokenIdent {
		return Event{}, unexpectedToken(field, TokenIdent)
	}
	if _, err := p.expect(TokenColon); err != nil {
		return Event{}, err
	}
	p.push(frame{kind: frameSecondValue})
	return Event{Kind: EventNamedField, Name: field.Span.Text(p.src), Offset: field.Lexeme.Start}, nil
}

// element handles the positional body of tuples and lists.
func (p *Parser) element(close TokenKind, endKind EventKind) (Event, error) {
	closed, end, err := p.separator(close)
	if err != nil {
		return Event{}, err
	}
	if closed {
		name := p.pop().name
		return Event{Kind: endKind, Name: name, Offset: end.Lexeme.Start}, nil
	}
	return p.expectValue()
}

// separator consumes an optional comma and then reports whether the next
// token closes the innermost container. A comma right before the closing
// token is accepted.
func (p *Parser) separator(close TokenKind) (bool, Token, error) {
	f := &p.stack[len(p.stack)-1]

	tok, err := p.next()
	if err != nil {
		return false, Token{}, err
	}
	sawComma := false
	switch tok.Kind {
	case TokenComma:
		if p.strict && f.elements == 0 {
			return false, tok, syntaxError(tok, "unexpected ',' before the first element")
		}
		sawComma = true
	case TokenEOF:
		return false, tok, unexpectedToken(tok, TokenComma, close)
	default:
		p.tokens.PushBack(tok)
	}

	tok, err = p.next()
	if err != nil {
		return false, Token{}, err
	}
	switch tok.Kind {
	case close:
		return true, tok, nil
	case TokenEOF:
		return false, tok, unexpectedToken(tok, close)
	}
	p.tokens.PushBack(tok)

	if p.strict && f.elements > 0 && !sawComma {
		return false, tok, unexpectedToken(tok, TokenComma, close)
	}
	f.elements++
	return false, tok, nil
}

func (p *Parser) expectValue() (Event, error) {
	ev, ok, err := p.tryValue()
	if err != nil || ok {
		return ev, err
	}
	tok, err := p.next()
	if err != nil {
		return Event{}, err
	}
	return Event{}, syntaxError(tok, "expected value, got "+describeToken(tok))
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return tok, unexpectedToken(tok, kind)
	}
	return tok, nil
}

func (p *Parser) next() (Token, error) {
	return p.tokens.Next()
}

func (p *Parser) push(f frame) {
	if f.isContainer() {
		p.depth++
	}
	p.stack = append(p.stack, f)
}

func (p *Parser) pop() frame {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	if f.isContainer() {
		p.depth--
	}
	return f
}
