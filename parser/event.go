package parser

import (
	"fmt"
	"strconv"
)

type EventKind int

const (
	EventEOF EventKind = iota
	EventOptionalSome
	EventPrimitive
	EventStructStart
	EventNamedField
	EventStructEnd
	EventTupleStart
	EventTupleEnd
	EventMapStart
	EventMapEnd
	EventListStart
	EventListEnd
)

var eventKindNames = map[EventKind]string{
	EventEOF:          "EOF",
	EventOptionalSome: "OptionalSome",
	EventPrimitive:    "Primitive",
	EventStructStart:  "StructStart",
	EventNamedField:   "NamedField",
	EventStructEnd:    "StructEnd",
	EventTupleStart:   "TupleStart",
	EventTupleEnd:     "TupleEnd",
	EventMapStart:     "MapStart",
	EventMapEnd:       "MapEnd",
	EventListStart:    "ListStart",
	EventListEnd:      "ListEnd",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsStart reports whether events of this kind open a container.
func (k EventKind) IsStart() bool {
	switch k {
	case EventStructStart, EventTupleStart, EventMapStart, EventListStart:
		return true
	}
	return false
}

// IsEnd reports whether events of this kind close a container.
func (k EventKind) IsEnd() bool {
	switch k {
	case EventStructEnd, EventTupleEnd, EventMapEnd, EventListEnd:
		return true
	}
	return false
}

// Event is one unit of parser output.
//
// For StructStart, StructEnd, TupleStart and TupleEnd, Name holds the type
// name, or "" when the container is anonymous. For NamedField it holds the
// field name. Value is only set for Primitive events. Offset is the byte
// offset of the token that produced the event.
//
// Names and text values are substrings of the parsed source.
type Event struct {
	Kind   EventKind
	Name   string
	Value  Primitive
	Offset int
}

func (e Event) String() string {
	switch e.Kind {
	case EventPrimitive:
		return fmt.Sprintf("Primitive(%s)", e.Value)
	case EventNamedField:
		return fmt.Sprintf("NamedField(%s)", e.Name)
	case EventStructStart, EventStructEnd, EventTupleStart, EventTupleEnd:
		if e.Name == "" {
			return e.Kind.String()
		}
		return fmt.Sprintf("%s(%s)", e.Kind, e.Name)
	}
	return e.Kind.String()
}

type PrimitiveKind int

const (
	PrimitiveNone PrimitiveKind = iota
	PrimitiveInt
	PrimitiveFloat
	PrimitiveBool
	PrimitiveChar
	PrimitiveString
	PrimitiveEnum
)

var primitiveKindNames = map[PrimitiveKind]string{
	PrimitiveNone:   "None",
	PrimitiveInt:    "Int",
	PrimitiveFloat:  "Float",
	PrimitiveBool:   "Bool",
	PrimitiveChar:   "Char",
	PrimitiveString: "Str",
	PrimitiveEnum:   "Enum",
}

func (k PrimitiveKind) String() string {
	if name, ok := primitiveKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Primitive is a scalar value. Text holds the contents of a string or the
// name of a unit-like enum variant.
type Primitive struct {
	Kind  PrimitiveKind
	Int   int64
	Float float64
	Bool  bool
	Char  rune
	Text  string
}

func (p Primitive) String() string {
	switch p.Kind {
	case PrimitiveInt:
		return fmt.Sprintf("Int(%d)", p.Int)
	case PrimitiveFloat:
		return fmt.Sprintf("Float(%s)", strconv.FormatFloat(p.Float, 'g', -1, 64))
	case PrimitiveBool:
		return fmt.Sprintf("Bool(%t)", p.Bool)
	case PrimitiveChar:
		return fmt.Sprintf("Char(%q)", p.Char)
	case PrimitiveString:
		return fmt.Sprintf("Str(%q)", p.Text)
	case PrimitiveEnum:
		return fmt.Sprintf("Enum(%s)", p.Text)
	}
	return p.Kind.String()
}
