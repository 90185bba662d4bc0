package grammar

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// MatchError reports that the input is not a document. Offset is the
// furthest byte offset the recognizer reached before giving up.
type MatchError struct {
	Production string
	Offset     int
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("input does not match %s: stuck at offset %d", e.Production, e.Offset)
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

type result struct {
	n  int
	ok bool
}

// Recognizer decides whether text matches the start production of an EBNF
// grammar. Alternatives take the longest match. White space is skipped
// before every terminal of a syntactic (upper-case) production and before
// references from syntactic to lexical productions.
//
// A Recognizer is not safe for concurrent use.
type Recognizer struct {
	grammar  ebnf.Grammar
	start    string
	input    string
	memo     map[memoKey]result
	visiting map[memoKey]bool
	furthest int
}

func NewRecognizer(g ebnf.Grammar) *Recognizer {
	return &Recognizer{grammar: g, start: Start}
}

// Match returns nil when all of src, apart from surrounding white space,
// matches the start production.
func (r *Recognizer) Match(src string) error {
	r.input = src
	r.memo = make(map[memoKey]result)
	r.visiting = make(map[memoKey]bool)
	r.furthest = 0

	res := r.matchName(r.start, 0)
	if res.ok {
		end := r.skipSpace(res.n)
		if end == len(src) {
			return nil
		}
		r.reach(end)
	}
	return &MatchError{Production: r.start, Offset: r.furthest}
}

func (r *Recognizer) reach(offset int) {
	if offset > r.furthest {
		r.furthest = offset
	}
}

func (r *Recognizer) skipSpace(offset int) int {
	for offset < len(r.input) {
		ch, size := utf8.DecodeRuneInString(r.input[offset:])
		if !unicode.IsSpace(ch) {
			break
		}
		offset += size
	}
	return offset
}

// match attempts to match expr at offset and returns the number of bytes
// consumed. An empty match is a success with n == 0.
func (r *Recognizer) match(expr ebnf.Expression, offset int, lexical bool) result {
	switch e := expr.(type) {
	case nil:
		return result{ok: true}

	case *ebnf.Token:
		return r.terminal(offset, lexical, func(at int) result {
			return r.matchToken(e.String, at)
		})

	case *ebnf.Range:
		return r.terminal(offset, lexical, func(at int) result {
			return r.matchRange(e.Begin.String, e.End.String, at)
		})

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			res := r.match(item, offset+total, lexical)
			if !res.ok {
				return result{}
			}
			total += res.n
		}
		return result{n: total, ok: true}

	case ebnf.Alternative:
		best := result{}
		for _, alt := range e {
			res := r.match(alt, offset, lexical)
			if res.ok && (!best.ok || res.n > best.n) {
				best = res
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			res := r.match(e.Body, offset+total, lexical)
			if !res.ok || res.n == 0 {
				break
			}
			total += res.n
		}
		return result{n: total, ok: true}

	case *ebnf.Option:
		res := r.match(e.Body, offset, lexical)
		if !res.ok {
			return result{ok: true}
		}
		return res

	case *ebnf.Group:
		return r.match(e.Body, offset, lexical)

	case *ebnf.Name:
		if !lexical && isLexical(e.String) {
			return r.terminal(offset, lexical, func(at int) result {
				return r.matchName(e.String, at)
			})
		}
		return r.matchName(e.String, offset)
	}
	return result{}
}

// terminal skips leading white space when called from a syntactic
// production and counts it as part of the match.
func (r *Recognizer) terminal(offset int, lexical bool, fn func(int) result) result {
	at := offset
	if !lexical {
		at = r.skipSpace(offset)
	}
	res := fn(at)
	if !res.ok {
		r.reach(at)
		return result{}
	}
	return result{n: at - offset + res.n, ok: true}
}

// matchName matches a named production with memoization and cycle detection.
func (r *Recognizer) matchName(name string, offset int) result {
	key := memoKey{name: name, offset: offset}
	if res, ok := r.memo[key]; ok {
		return res
	}

	// Left recursion: fail this branch instead of looping.
	if r.visiting[key] {
		return result{}
	}

	prod, ok := r.grammar[name]
	if !ok {
		r.memo[key] = result{}
		return result{}
	}

	r.visiting[key] = true
	res := r.match(prod.Expr, offset, isLexical(name))
	delete(r.visiting, key)

	r.memo[key] = res
	return res
}

func (r *Recognizer) matchToken(lit string, offset int) result {
	if strings.HasPrefix(r.input[offset:], lit) {
		if lit != "" {
			r.reach(offset + len(lit))
		}
		return result{n: len(lit), ok: true}
	}
	return result{}
}

func (r *Recognizer) matchRange(begin, end string, offset int) result {
	if offset >= len(r.input) {
		return result{}
	}
	lo, _ := utf8.DecodeRuneInString(begin)
	hi, _ := utf8.DecodeRuneInString(end)
	ch, size := utf8.DecodeRuneInString(r.input[offset:])
	if ch == utf8.RuneError && size <= 1 {
		return result{}
	}
	if ch < lo || ch > hi {
		return result{}
	}
	r.reach(offset + size)
	return result{n: size, ok: true}
}

func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}
