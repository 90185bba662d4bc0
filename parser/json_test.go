package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{
			"struct start",
			Event{Kind: EventStructStart, Name: "Point", Offset: 4},
			`{"kind":"StructStart","name":"Point","offset":4}`,
		},
		{
			"anonymous tuple",
			Event{Kind: EventTupleStart},
			`{"kind":"TupleStart","offset":0}`,
		},
		{
			"int",
			Event{Kind: EventPrimitive, Value: Primitive{Kind: PrimitiveInt, Int: -3}, Offset: 1},
			`{"kind":"Primitive","value":{"type":"Int","value":-3},"offset":1}`,
		},
		{
			"zero int",
			Event{Kind: EventPrimitive, Value: Primitive{Kind: PrimitiveInt}},
			`{"kind":"Primitive","value":{"type":"Int","value":0},"offset":0}`,
		},
		{
			"char",
			Event{Kind: EventPrimitive, Value: Primitive{Kind: PrimitiveChar, Char: 'λ'}},
			`{"kind":"Primitive","value":{"type":"Char","value":"λ"},"offset":0}`,
		},
		{
			"none",
			Event{Kind: EventPrimitive, Value: Primitive{Kind: PrimitiveNone}},
			`{"kind":"Primitive","value":{"type":"None"},"offset":0}`,
		},
		{
			"enum",
			Event{Kind: EventPrimitive, Value: Primitive{Kind: PrimitiveEnum, Text: "Red"}},
			`{"kind":"Primitive","value":{"type":"Enum","value":"Red"},"offset":0}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ev)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
