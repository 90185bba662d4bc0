package parser

import "encoding/json"

type jsonEvent struct {
	Kind   string         `json:"kind"`
	Name   string         `json:"name,omitempty"`
	Value  *jsonPrimitive `json:"value,omitempty"`
	Offset int            `json:"offset"`
}

type jsonPrimitive struct {
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	je := jsonEvent{
		Kind:   e.Kind.String(),
		Name:   e.Name,
		Offset: e.Offset,
	}
	if e.Kind == EventPrimitive {
		je.Value = e.Value.toJSON()
	}
	return json.Marshal(je)
}

func (p Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toJSON())
}

func (p Primitive) toJSON() *jsonPrimitive {
	jp := &jsonPrimitive{Type: p.Kind.String()}
	switch p.Kind {
	case PrimitiveInt:
		jp.Value = p.Int
	case PrimitiveFloat:
		jp.Value = p.Float
	case PrimitiveBool:
		jp.Value = p.Bool
	case PrimitiveChar:
		jp.Value = string(p.Char)
	case PrimitiveString, PrimitiveEnum:
		jp.Value = p.Text
	}
	return jp
}
