package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/ron/parser"
	"github.com/dhamidi/ron/report"
)

// Diagnose parses text to the end and returns at most one diagnostic, for
// the first error. The result is never nil so that it clears earlier
// diagnostics when published.
func (ls *Server) Diagnose(uri, text string) []protocol.Diagnostic {
	p := parser.New(text, ls.parserOptions(uri)...)

	var err error
	for _, err = range p.Events() {
		if err != nil {
			break
		}
	}
	if err == nil {
		return []protocol.Diagnostic{}
	}

	f := report.NewFile(p.File(), p.Source())
	span := parser.Span{}
	message := err.Error()
	var perr *parser.Error
	if errors.As(err, &perr) {
		span = perr.Span()
		message = perr.Message
	}
	log.Debugf("%s: %v", uri, err)

	source := lsName
	return []protocol.Diagnostic{{
		Range:    toRange(f, span),
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   &source,
		Message:  message,
	}}
}

func toRange(f *report.File, span parser.Span) protocol.Range {
	return protocol.Range{
		Start: toPosition(f.Location(span.Start)),
		End:   toPosition(f.Location(span.End)),
	}
}

func toPosition(loc report.Location) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(loc.Line - 1),
		Character: protocol.UInteger(loc.UTF16Column),
	}
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
