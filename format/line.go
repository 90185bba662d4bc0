package format

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ron/parser"
)

// LineEncoder writes one event per line, indented by nesting depth:
//
//	StructStart	Point
//	  NamedField	x
//	  Primitive	Int(1)
//	StructEnd	Point
//	EOF
type LineEncoder struct {
	w      *bufio.Writer
	ev     parser.Event
	depth  int
	indent string
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: bufio.NewWriter(w), indent: "  "}
}

func (e *LineEncoder) Encode(ev parser.Event) error {
	if ev.Kind.IsEnd() && e.depth > 0 {
		e.depth--
	}
	e.ev = ev
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if ev.Kind.IsStart() {
		e.depth++
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) Flush() error {
	return e.w.Flush()
}

// MarshalText renders the most recently encoded event.
func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(e.indent, e.depth))
	sb.WriteString(e.ev.Kind.String())
	if payload := e.payload(); payload != "" {
		fmt.Fprintf(&sb, "\t%s", payload)
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func (e *LineEncoder) payload() string {
	ev := e.ev
	switch ev.Kind {
	case parser.EventPrimitive:
		return ev.Value.String()
	case parser.EventNamedField,
		parser.EventStructStart, parser.EventStructEnd,
		parser.EventTupleStart, parser.EventTupleEnd:
		return ev.Name
	}
	return ""
}
