package format

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/dhamidi/ron/parser"
)

type JSONOption func(*JSONEncoder)

// WithIndent pretty-prints every event over several lines.
func WithIndent(indent string) JSONOption {
	return func(e *JSONEncoder) {
		e.indent = indent
	}
}

// JSONEncoder writes each event as a JSON object followed by a newline.
type JSONEncoder struct {
	w      *bufio.Writer
	enc    *json.Encoder
	indent string
}

func NewJSONEncoder(w io.Writer, opts ...JSONOption) *JSONEncoder {
	e := &JSONEncoder{w: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(e)
	}
	e.enc = json.NewEncoder(e.w)
	e.enc.SetEscapeHTML(false)
	if e.indent != "" {
		e.enc.SetIndent("", e.indent)
	}
	return e
}

func (e *JSONEncoder) Encode(ev parser.Event) error {
	return e.enc.Encode(ev)
}

func (e *JSONEncoder) Flush() error {
	return e.w.Flush()
}
