package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/ron/parser"
)

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	n, err := Stream(parser.New(`Point(x: 1, tags: [Some("a")])`), NewLineEncoder(&buf))
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	want := strings.Join([]string{
		"StructStart\tPoint",
		"  NamedField\tx",
		"  Primitive\tInt(1)",
		"  NamedField\ttags",
		"  ListStart",
		"    OptionalSome",
		"    Primitive\tStr(\"a\")",
		"  ListEnd",
		"StructEnd\tPoint",
		"EOF",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestLineEncoderBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	enc := NewLineEncoder(&buf)
	require.NoError(t, enc.Encode(parser.Event{Kind: parser.EventEOF}))
	assert.Zero(t, buf.Len())

	require.NoError(t, enc.Flush())
	assert.Equal(t, "EOF\n", buf.String())
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	_, err := Stream(parser.New(`{"k": 'v'}`), NewJSONEncoder(&buf))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)

	var kinds []string
	for _, line := range lines {
		var obj struct {
			Kind  string `json:"kind"`
			Value *struct {
				Type  string `json:"type"`
				Value any    `json:"value"`
			} `json:"value"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &obj), line)
		kinds = append(kinds, obj.Kind)
		if obj.Kind == "Primitive" {
			require.NotNil(t, obj.Value)
		}
	}
	assert.Equal(t, []string{"MapStart", "Primitive", "Primitive", "MapEnd", "EOF"}, kinds)
	assert.Equal(t, `{"kind":"Primitive","value":{"type":"Char","value":"v"},"offset":6}`, lines[2])
}

func TestJSONEncoderIndent(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf, WithIndent("  "))
	require.NoError(t, enc.Encode(parser.Event{Kind: parser.EventTupleStart, Name: "T"}))
	require.NoError(t, enc.Flush())

	want := "{\n  \"kind\": \"TupleStart\",\n  \"name\": \"T\",\n  \"offset\": 0\n}\n"
	assert.Equal(t, want, buf.String())
}

func TestStreamStopsAtError(t *testing.T) {
	var buf bytes.Buffer
	n, err := Stream(parser.New("[1, 2"), NewLineEncoder(&buf))
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrSyntax))
	assert.Equal(t, 3, n)
	assert.Equal(t, "ListStart\n  Primitive\tInt(1)\n  Primitive\tInt(2)\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestStreamReportsWriteErrors(t *testing.T) {
	_, err := Stream(parser.New("1"), NewLineEncoder(failingWriter{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
