package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/ron/parser"
	"github.com/dhamidi/ron/report"
)

type outlineNode struct {
	name     string
	detail   string
	kind     protocol.SymbolKind
	start    int
	nameEnd  int
	end      int
	children []*outlineNode
}

func newOutlineNode(name string, offset int) *outlineNode {
	return &outlineNode{
		name:    name,
		kind:    protocol.SymbolKindField,
		start:   offset,
		nameEnd: offset + len(name),
		end:     offset + len(name),
	}
}

// Symbols builds an outline of text: one symbol per struct field and per
// named struct or tuple that is not itself a field value. Parsing stops at
// the first error and the outline covers what was read until then.
func (ls *Server) Symbols(uri, text string) []protocol.DocumentSymbol {
	p := parser.New(text, ls.parserOptions(uri)...)

	var roots []*outlineNode
	// One entry per open container; nil when the container has no symbol
	// of its own and its children belong to the nearest enclosing symbol.
	var owners []*outlineNode
	var field *outlineNode

	add := func(n *outlineNode) {
		for i := len(owners) - 1; i >= 0; i-- {
			if owners[i] != nil {
				owners[i].children = append(owners[i].children, n)
				return
			}
		}
		roots = append(roots, n)
	}

	for ev, err := range p.Events() {
		if err != nil {
			break
		}
		switch {
		case ev.Kind == parser.EventNamedField:
			field = newOutlineNode(ev.Name, ev.Offset)
			add(field)
		case ev.Kind.IsStart():
			owner := field
			if owner == nil && ev.Name != "" {
				owner = newOutlineNode(ev.Name, ev.Offset)
				add(owner)
			}
			if owner != nil {
				owner.kind = containerKind(ev)
				owner.detail = ev.Name
			}
			owners = append(owners, owner)
			field = nil
		case ev.Kind.IsEnd():
			if owner := owners[len(owners)-1]; owner != nil {
				owner.end = ev.Offset + 1
			}
			owners = owners[:len(owners)-1]
		case ev.Kind == parser.EventPrimitive:
			if field != nil {
				field.kind = primitiveKind(ev.Value.Kind)
				field.detail = ev.Value.String()
			}
			field = nil
		}
	}

	f := report.NewFile(uriToPath(uri), text)
	return toSymbols(f, roots)
}

func toSymbols(f *report.File, nodes []*outlineNode) []protocol.DocumentSymbol {
	symbols := make([]protocol.DocumentSymbol, 0, len(nodes))
	for _, n := range nodes {
		sym := protocol.DocumentSymbol{
			Name:           n.name,
			Kind:           n.kind,
			Range:          toRange(f, parser.Span{Start: n.start, End: n.end}),
			SelectionRange: toRange(f, parser.Span{Start: n.start, End: n.nameEnd}),
		}
		if n.detail != "" {
			detail := n.detail
			sym.Detail = &detail
		}
		if len(n.children) > 0 {
			sym.Children = toSymbols(f, n.children)
		}
		symbols = append(symbols, sym)
	}
	return symbols
}

func containerKind(ev parser.Event) protocol.SymbolKind {
	switch ev.Kind {
	case parser.EventStructStart:
		return protocol.SymbolKindStruct
	case parser.EventTupleStart:
		if ev.Name != "" {
			return protocol.SymbolKindStruct
		}
		return protocol.SymbolKindArray
	case parser.EventMapStart:
		return protocol.SymbolKindObject
	}
	return protocol.SymbolKindArray
}

func primitiveKind(k parser.PrimitiveKind) protocol.SymbolKind {
	switch k {
	case parser.PrimitiveInt, parser.PrimitiveFloat:
		return protocol.SymbolKindNumber
	case parser.PrimitiveBool:
		return protocol.SymbolKindBoolean
	case parser.PrimitiveChar, parser.PrimitiveString:
		return protocol.SymbolKindString
	case parser.PrimitiveEnum:
		return protocol.SymbolKindEnumMember
	}
	return protocol.SymbolKindNull
}
