package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dhamidi/ron/parser"
)

const TabstopWidth = 4

// Render writes err as
//
//	name:line:col: kind: message
//	<source line>
//	   ^^^
//
// Errors that are not *parser.Error are written on a single line.
func Render(w io.Writer, f *File, err error) error {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		_, werr := fmt.Fprintf(w, "%s: %v\n", f.Name(), err)
		return werr
	}

	span := perr.Span()
	loc := f.Location(span.Start)
	line := f.Line(loc.Line)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:%d:%d: %s: %s\n", f.Name(), loc.Line, loc.Column, perr.Kind, perr.Message)

	if line != "" {
		sb.WriteString(expandTabs(line))
		sb.WriteByte('\n')

		before := line[:min(loc.Column-1, len(line))]
		pad := displayWidth(before, 0)

		// The caret covers the offending token but never runs past the
		// end of its line.
		width := 1
		if end := loc.Column - 1 + span.Len(); span.Len() > 0 && end <= len(line) {
			width = max(1, displayWidth(line[loc.Column-1:end], pad))
		}
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(strings.Repeat("^", width))
		sb.WriteByte('\n')
	}

	_, werr := io.WriteString(w, sb.String())
	return werr
}

// displayWidth measures s in terminal columns when it starts at column
// start, honoring tab stops.
func displayWidth(s string, start int) int {
	column := start
	for {
		nextTab := strings.IndexByte(s, '\t')
		if nextTab == -1 {
			column += uniseg.StringWidth(s)
			return column - start
		}
		column += uniseg.StringWidth(s[:nextTab])
		column += TabstopWidth - (column % TabstopWidth)
		s = s[nextTab+1:]
	}
}

func expandTabs(line string) string {
	var sb strings.Builder
	var column int
	for {
		nextTab := strings.IndexByte(line, '\t')
		if nextTab == -1 {
			sb.WriteString(line)
			return sb.String()
		}
		column += uniseg.StringWidth(line[:nextTab])
		sb.WriteString(line[:nextTab])

		tab := TabstopWidth - (column % TabstopWidth)
		column += tab
		sb.WriteString(strings.Repeat(" ", tab))

		line = line[nextTab+1:]
	}
}
