package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type symbolSummary struct {
	Name     string
	Kind     protocol.SymbolKind
	Detail   string
	Children []symbolSummary
}

func summarize(symbols []protocol.DocumentSymbol) []symbolSummary {
	var out []symbolSummary
	for _, s := range symbols {
		sum := symbolSummary{Name: s.Name, Kind: s.Kind}
		if s.Detail != nil {
			sum.Detail = *s.Detail
		}
		sum.Children = summarize(s.Children)
		out = append(out, sum)
	}
	return out
}

func TestSymbols(t *testing.T) {
	src := `Player(
    name: "ferris",
    pos: (1, 2),
    pet: Some(Crab),
    items: [Sword(damage: 3), Shield(2)],
    stats: {"hp": 10},
    home: None,
)`

	ls := NewServer("test")
	got := summarize(ls.Symbols("file:///p.ron", src))

	want := []symbolSummary{{
		Name: "Player", Kind: protocol.SymbolKindStruct, Detail: "Player",
		Children: []symbolSummary{
			{Name: "name", Kind: protocol.SymbolKindString, Detail: `Str("ferris")`},
			{Name: "pos", Kind: protocol.SymbolKindArray},
			{Name: "pet", Kind: protocol.SymbolKindEnumMember, Detail: "Enum(Crab)"},
			{Name: "items", Kind: protocol.SymbolKindArray, Children: []symbolSummary{
				{Name: "Sword", Kind: protocol.SymbolKindStruct, Detail: "Sword", Children: []symbolSummary{
					{Name: "damage", Kind: protocol.SymbolKindNumber, Detail: "Int(3)"},
				}},
				{Name: "Shield", Kind: protocol.SymbolKindStruct, Detail: "Shield"},
			}},
			{Name: "stats", Kind: protocol.SymbolKindObject},
			{Name: "home", Kind: protocol.SymbolKindNull, Detail: "None"},
		},
	}}
	assert.Equal(t, want, got)
}

func TestSymbolRanges(t *testing.T) {
	src := "Point(\n  x: 1,\n  y: 2,\n)"
	ls := NewServer("test")
	symbols := ls.Symbols("file:///p.ron", src)
	require.Len(t, symbols, 1)

	root := symbols[0]
	assert.Equal(t, protocol.Range{Start: pos(0, 0), End: pos(3, 1)}, root.Range)
	assert.Equal(t, protocol.Range{Start: pos(0, 0), End: pos(0, 5)}, root.SelectionRange)

	require.Len(t, root.Children, 2)
	assert.Equal(t, protocol.Range{Start: pos(2, 2), End: pos(2, 3)}, root.Children[1].SelectionRange)
}

func TestSymbolsStopAtError(t *testing.T) {
	ls := NewServer("test")
	got := summarize(ls.Symbols("file:///p.ron", "(a: 1, b: ]"))
	assert.Equal(t, []symbolSummary{
		{Name: "a", Kind: protocol.SymbolKindNumber, Detail: "Int(1)"},
		{Name: "b", Kind: protocol.SymbolKindField},
	}, got)
}
