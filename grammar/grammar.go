// Package grammar holds the EBNF description of the text accepted by the
// event parser, together with a recognizer that matches source text against
// it.
package grammar

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production every document must match.
const Start = "Document"

//go:embed ron.ebnf
var source string

// Source returns the text of the built-in grammar.
func Source() string {
	return source
}

// Load parses the built-in grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("ron.ebnf", strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// LoadFile parses a grammar from a file.
func LoadFile(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Verify checks that every production of g is defined, reachable from
// Start, and that lexical productions only refer to lexical productions.
func Verify(g ebnf.Grammar) error {
	if err := ebnf.Verify(g, Start); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Errors flattens the error lists returned by ebnf.Parse and ebnf.Verify
// into one error per problem.
func Errors(err error) []error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			break
		}
		err = inner
	}
	if err == nil {
		return nil
	}

	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	errs := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			errs = append(errs, e)
		}
	}
	return errs
}
