package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ron/parser"
)

func TestLocation(t *testing.T) {
	f := NewFile("a.ron", "(\n  x: \"ä😀\",\n  y: 2)\n")

	tests := []struct {
		offset int
		want   Location
	}{
		{0, Location{Offset: 0, Line: 1, Column: 1, UTF16Column: 0}},
		{1, Location{Offset: 1, Line: 1, Column: 2, UTF16Column: 1}},
		{2, Location{Offset: 2, Line: 2, Column: 1, UTF16Column: 0}},
		{4, Location{Offset: 4, Line: 2, Column: 3, UTF16Column: 2}},
		// after "ä" (2 bytes) and "😀" (4 bytes, a surrogate pair)
		{14, Location{Offset: 14, Line: 2, Column: 13, UTF16Column: 9}},
		{19, Location{Offset: 19, Line: 3, Column: 3, UTF16Column: 2}},
		{1000, Location{Offset: 25, Line: 4, Column: 1, UTF16Column: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Location(tt.offset), "offset %d", tt.offset)
	}
}

func TestLine(t *testing.T) {
	f := NewFile("", "one\r\ntwo\nthree")
	assert.Equal(t, "one", f.Line(1))
	assert.Equal(t, "two", f.Line(2))
	assert.Equal(t, "three", f.Line(3))
	assert.Equal(t, "", f.Line(4))
	assert.Equal(t, "", f.Line(0))
}

func TestNilFile(t *testing.T) {
	var f *File
	assert.Equal(t, "", f.Name())
	assert.Equal(t, Location{Line: 1, Column: 1}, f.Location(10))
	assert.Equal(t, "", f.Line(1))
}

func render(t *testing.T, name, src string) string {
	t.Helper()
	p := parser.New(src, parser.WithFile(name))
	var err error
	for _, err = range p.Events() {
		if err != nil {
			break
		}
	}
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewFile(name, src), err))
	return buf.String()
}

func TestRenderSyntaxError(t *testing.T) {
	got := render(t, "cfg.ron", "Config(\n  name: \"x\",\n  size: ]\n)\n")
	want := "cfg.ron:3:9: syntax error: expected value, got ']'\n" +
		"  size: ]\n" +
		"        ^\n"
	assert.Equal(t, want, got)
}

func TestRenderCoversToken(t *testing.T) {
	got := render(t, "t.ron", "(a: 1, 22)")
	want := "t.ron:1:8: syntax error: expected identifier, got Int(22)\n" +
		"(a: 1, 22)\n" +
		"       ^^\n"
	assert.Equal(t, want, got)
}

func TestRenderWideCharactersAndTabs(t *testing.T) {
	got := render(t, "w.ron", "[\"日本\",\t)]")
	want := "w.ron:1:12: syntax error: expected value, got ')'\n" +
		"[\"日本\",    )]\n" +
		"            ^\n"
	assert.Equal(t, want, got)
}

func TestRenderLexError(t *testing.T) {
	got := render(t, "l.ron", "[1, \"open")
	want := "l.ron:1:5: lex error: unterminated string literal\n" +
		"[1, \"open\n" +
		"    ^\n"
	assert.Equal(t, want, got)
}

func TestRenderEndOfInput(t *testing.T) {
	got := render(t, "e.ron", "[1,\n")
	assert.Equal(t, "e.ron:2:1: syntax error: expected ']', got end of input\n", got)
}

func TestRenderOtherErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewFile("x.ron", ""), errors.New("boom")))
	assert.Equal(t, "x.ron: boom\n", buf.String())
}
