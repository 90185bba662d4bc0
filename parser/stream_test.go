package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStreamPushBackOrder(t *testing.T) {
	s := NewTokenStream(NewLexer("a b c"))

	a, err := s.Next()
	require.NoError(t, err)
	b, err := s.Next()
	require.NoError(t, err)

	s.PushBack(b)
	s.PushBack(a)
	assert.Equal(t, 2, s.Pending())

	var got []string
	for range 3 {
		tok, err := s.Next()
		require.NoError(t, err)
		got = append(got, tok.Span.Text("a b c"))
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 0, s.Pending())
}

func TestTokenStreamPushBackEOF(t *testing.T) {
	s := NewTokenStream(NewLexer(""))

	tok, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, TokenEOF, tok.Kind)

	s.PushBack(tok)
	again, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, tok, again)
}

func TestTokenStreamSurfacesLexErrors(t *testing.T) {
	s := NewTokenStream(NewLexer(`[ "open`))

	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, TokenLBracket, tok.Kind)

	_, err = s.Next()
	assert.ErrorIs(t, err, ErrLex)
}
