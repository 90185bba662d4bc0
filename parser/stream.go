package parser

// TokenStream hands out tokens from a Lexer and lets the caller unread
// tokens it consumed while trying a grammar alternative.
//
// Pushed-back tokens are returned before the lexer is consulted again, last
// pushed first. To restore a run of tokens, push them back in the reverse
// of the order they were read.
type TokenStream struct {
	lexer   *Lexer
	pending []Token // front of the queue is the end of the slice
}

func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

func (s *TokenStream) Next() (Token, error) {
	if n := len(s.pending); n > 0 {
		tok := s.pending[n-1]
		s.pending = s.pending[:n-1]
		return tok, nil
	}
	return s.lexer.NextToken()
}

// PushBack makes tok the very next token returned by Next.
func (s *TokenStream) PushBack(tok Token) {
	s.pending = append(s.pending, tok)
}

// Pending returns the number of pushed-back tokens not yet returned.
func (s *TokenStream) Pending() int {
	return len(s.pending)
}
