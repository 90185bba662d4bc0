// Package parser provides a streaming, pull-based event parser for RON-style
// text: named and anonymous structs, tuples, lists, maps, optional values and
// unit-like enum variants.
//
// # Overview
//
// The parser never builds a value tree. Each call to NextEvent produces a
// single structural event, and the caller (typically a decoder for some
// target type) rebuilds whatever shape it needs from the event stream.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│    Lexer    │────▶│ TokenStream │────▶│   Parser    │
//	│  (string)   │     │  (tokens)   │     │ (pushback)  │     │  (events)   │
//	└─────────────┘     └─────────────┘     └─────────────┘     └─────────────┘
//	                                                                   │
//	                                                                   ▼
//	                                                            ┌─────────────┐
//	                                                            │  context    │
//	                                                            │   stack     │
//	                                                            └─────────────┘
//
// Control flows right to left: the parser pulls tokens on demand and nothing
// is read ahead of what the current grammar alternative needs.
//
// # Pull Interface
//
//	p := parser.New(`Player(name: "ferris", pos: (1, 2))`)
//	for {
//	    ev, err := p.NextEvent()
//	    if err != nil {
//	        return err
//	    }
//	    if ev.Kind == parser.EventEOF {
//	        break
//	    }
//	    fmt.Println(ev)
//	}
//
// or, with range-over-func:
//
//	for ev, err := range p.Events() {
//	    ...
//	}
//
// The example above produces:
//
//	StructStart(Player)
//	NamedField(name)
//	Primitive(Str("ferris"))
//	NamedField(pos)
//	TupleStart
//	Primitive(Int(1))
//	Primitive(Int(2))
//	TupleEnd
//	StructEnd(Player)
//	EOF
//
// # Grammar
//
//	value      ::= primitive | option | struct | tuple | list | map
//	primitive  ::= INT | FLOAT | BOOL | CHAR | STRING | IDENT | "None"
//	option     ::= "Some" "(" value ")"
//	struct     ::= [IDENT] "(" field ("," field)* [","] ")"
//	field      ::= IDENT ":" value
//	tuple      ::= [IDENT] "(" value ("," value)* [","] ")"
//	list       ::= "[" value ("," value)* [","] "]"
//	map        ::= "{" value ":" value ("," value ":" value)* [","] "}"
//
// Strings and characters are taken literally; there are no escape sequences.
// Any other character starts an identifier, so +5 and #tag are enum
// variants.
// Numbers are decimal integers or floats without exponents.
//
// # Disambiguation
//
// A name followed by '(' can start a struct or a tuple. The parser first
// tries the struct form, which needs "ident :" right after the '('; if that
// fails, every token it read is pushed back and the tuple form is tried.
//
//	Name(a: 1)  → StructStart(Name)
//	Name(1)     → TupleStart(Name)
//	(a: 1)      → StructStart
//	(1)         → TupleStart
//
// Some(x) produces an OptionalSome event followed by the events for x. There
// is no matching end event; the closing ')' is consumed silently.
//
// # Borrowed Text
//
// Names in events and the text of string and enum primitives are substrings
// of the source, so no text is copied while parsing.
//
// # Errors
//
// Malformed input yields an *Error carrying the byte offset of the offending
// token. Errors are terminal for the parse: the Parser returns the same error
// from every later call. Use errors.Is with ErrLex or ErrSyntax to tell the
// two kinds apart.
package parser
