// Package report turns byte offsets into line and column positions and
// renders parse errors with the offending source line.
package report

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
)

// File is a named source buffer with a lazily built line index.
// A nil *File behaves like an empty file named "".
type File struct {
	name, text string

	once sync.Once
	// Byte offset of the start of every line.
	lineStarts []int
}

func NewFile(name, text string) *File {
	return &File{name: name, text: text}
}

func (f *File) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Location is a resolved position. Line and Column are 1-based, Column
// counts bytes. UTF16Column is 0-based and counts UTF-16 code units, as
// language server clients expect.
type Location struct {
	Offset      int
	Line        int
	Column      int
	UTF16Column int
}

func (f *File) lines() []int {
	f.once.Do(func() {
		f.lineStarts = []int{0}
		for i := 0; i < len(f.text); i++ {
			if f.text[i] == '\n' {
				f.lineStarts = append(f.lineStarts, i+1)
			}
		}
	})
	return f.lineStarts
}

// Location resolves a byte offset. Offsets past the end of the text are
// clamped to the end.
//
// This operation is O(log n).
func (f *File) Location(offset int) Location {
	if f == nil {
		return Location{Line: 1, Column: 1}
	}
	offset = max(0, min(offset, len(f.text)))

	lines := f.lines()
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.text[lines[line]:offset]
	col16 := 0
	for _, r := range chunk {
		col16 += utf16.RuneLen(r)
	}

	return Location{
		Offset:      offset,
		Line:        line + 1,
		Column:      len(chunk) + 1,
		UTF16Column: col16,
	}
}

// Line returns the text of the 1-based line n without its line ending.
func (f *File) Line(n int) string {
	if f == nil {
		return ""
	}
	lines := f.lines()
	if n < 1 || n > len(lines) {
		return ""
	}
	end := len(f.text)
	if n < len(lines) {
		end = lines[n] - 1
	}
	return strings.TrimSuffix(f.text[lines[n-1]:end], "\r")
}
