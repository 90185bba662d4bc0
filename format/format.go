// Package format writes parser events in human and machine readable forms.
package format

import (
	"fmt"

	"github.com/dhamidi/ron/parser"
)

type Encoder interface {
	Encode(ev parser.Event) error
	Flush() error
}

// Stream feeds every event of p to enc until EOF, then flushes enc. It
// returns the number of events written, EOF included.
func Stream(p *parser.Parser, enc Encoder) (int, error) {
	n := 0
	for ev, err := range p.Events() {
		if err != nil {
			if ferr := enc.Flush(); ferr != nil {
				return n, ferr
			}
			return n, err
		}
		if err := enc.Encode(ev); err != nil {
			return n, fmt.Errorf("encode %s: %w", ev.Kind, err)
		}
		n++
	}
	return n, enc.Flush()
}
