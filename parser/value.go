package parser

import "fmt"

// match is the outcome of one grammar alternative. An alternative that does
// not match leaves the token stream as it found it.
type match struct {
	ok    bool
	event Event
	push  frame
}

type alternative func(*Parser) (match, error)

// alternatives are tried in order. Struct must come before tuple: both
// start with an optional name and '(' and only the struct alternative looks
// further for "ident :".
var alternatives = [...]alternative{
	(*Parser).tryStruct,
	(*Parser).tryTuple,
	(*Parser).tryPrimitive,
	(*Parser).tryOptionalSome,
	(*Parser).tryMap,
	(*Parser).tryList,
}

// tryValue reports false without consuming anything when no value starts at
// the current token.
func (p *Parser) tryValue() (Event, bool, error) {
	for _, alt := range alternatives {
		m, err := alt(p)
		if err != nil {
			return Event{}, false, err
		}
		if !m.ok {
			continue
		}
		if m.push.kind != frameNone {
			if m.push.isContainer() && p.maxDepth > 0 && p.depth >= p.maxDepth {
				return Event{}, false, &Error{
					Kind:    SyntaxError,
					Offset:  m.event.Offset,
					Message: fmt.Sprintf("nesting depth exceeds limit of %d", p.maxDepth),
				}
			}
			p.push(m.push)
		}
		return m.event, true, nil
	}
	return Event{}, false, nil
}

// lookahead records the tokens read by an alternative so they can be
// returned to the stream if the alternative does not match.
type lookahead struct {
	p    *Parser
	read []Token
}

func (la *lookahead) next() (Token, error) {
	tok, err := la.p.next()
	if err != nil {
		return Token{}, err
	}
	la.read = append(la.read, tok)
	return tok, nil
}

func (la *lookahead) rollback() {
	for i := len(la.read) - 1; i >= 0; i-- {
		la.p.tokens.PushBack(la.read[i])
	}
	la.read = la.read[:0]
}

// tryStruct matches "ident? ( ident :". The field name and colon are left
// in the stream for the struct body.
func (p *Parser) tryStruct() (match, error) {
	la := lookahead{p: p}
	tok, err := la.next()
	if err != nil {
		return match{}, err
	}
	start := tok.Lexeme.Start

	var name string
	if tok.Kind == TokenIdent {
		name = tok.Span.Text(p.src)
		if tok, err = la.next(); err != nil {
			return match{}, err
		}
	}
	if tok.Kind != TokenLParen {
		la.rollback()
		return match{}, nil
	}

	field, err := la.next()
	if err != nil {
		return match{}, err
	}
	if field.Kind != TokenIdent {
		la.rollback()
		return match{}, nil
	}
	colon, err := la.next()
	if err != nil {
		return match{}, err
	}
	if colon.Kind != TokenColon {
		la.rollback()
		return match{}, nil
	}

	p.tokens.PushBack(colon)
	p.tokens.PushBack(field)
	return match{
		ok:    true,
		event: Event{Kind: EventStructStart, Name: name, Offset: start},
		push:  frame{kind: frameStruct, name: name},
	}, nil
}

// tryTuple matches "ident? (".
func (p *Parser) tryTuple() (match, error) {
	la := lookahead{p: p}
	tok, err := la.next()
	if err != nil {
		return match{}, err
	}
	start := tok.Lexeme.Start

	var name string
	if tok.Kind == TokenIdent {
		name = tok.Span.Text(p.src)
		if tok, err = la.next(); err != nil {
			return match{}, err
		}
	}
	if tok.Kind != TokenLParen {
		la.rollback()
		return match{}, nil
	}

	return match{
		ok:    true,
		event: Event{Kind: EventTupleStart, Name: name, Offset: start},
		push:  frame{kind: frameTuple, name: name},
	}, nil
}

func (p *Parser) tryPrimitive() (match, error) {
	tok, err := p.next()
	if err != nil {
		return match{}, err
	}

	var v Primitive
	switch tok.Kind {
	case TokenIdent:
		v = Primitive{Kind: PrimitiveEnum, Text: tok.Span.Text(p.src)}
	case TokenBool:
		v = Primitive{Kind: PrimitiveBool, Bool: tok.Bool}
	case TokenFloat:
		v = Primitive{Kind: PrimitiveFloat, Float: tok.Float}
	case TokenInt:
		v = Primitive{Kind: PrimitiveInt, Int: tok.Int}
	case TokenChar:
		v = Primitive{Kind: PrimitiveChar, Char: tok.Char}
	case TokenString:
		v = Primitive{Kind: PrimitiveString, Text: tok.Span.Text(p.src)}
	case TokenNone:
		v = Primitive{Kind: PrimitiveNone}
	default:
		p.tokens.PushBack(tok)
		return match{}, nil
	}

	return match{
		ok:    true,
		event: Event{Kind: EventPrimitive, Value: v, Offset: tok.Lexeme.Start},
	}, nil
}

// tryOptionalSome matches "Some (". Once Some has been seen the '(' is
// mandatory.
func (p *Parser) tryOptionalSome() (match, error) {
	tok, err := p.next()
	if err != nil {
		return match{}, err
	}
	if tok.Kind != TokenSome {
		p.tokens.PushBack(tok)
		return match{}, nil
	}

	open, err := p.next()
	if err != nil {
		return match{}, err
	}
	if open.Kind != TokenLParen {
		return match{}, syntaxError(open, "expected '(' after Some, got "+describeToken(open), TokenLParen)
	}

	return match{
		ok:    true,
		event: Event{Kind: EventOptionalSome, Offset: tok.Lexeme.Start},
		push:  frame{kind: frameOptionalSome},
	}, nil
}

func (p *Parser) tryMap() (match, error) {
	return p.tryOpen(TokenLBrace, EventMapStart, frameMap)
}

func (p *Parser) tryList() (match, error) {
	return p.tryOpen(TokenLBracket, EventListStart, frameList)
}

func (p *Parser) tryOpen(kind TokenKind, ev EventKind, f frameKind) (match, error) {
	tok, err := p.next()
	if err != nil {
		return match{}, err
	}
	if tok.Kind != kind {
		p.tokens.PushBack(tok)
		return match{}, nil
	}
	return match{
		ok:    true,
		event: Event{Kind: ev, Offset: tok.Lexeme.Start},
		push:  frame{kind: f},
	}, nil
}
