package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEventsFromStdin(t *testing.T) {
	stdout, _, err := run(t, "Some((1, x))", "events")
	require.NoError(t, err)
	assert.Equal(t, "OptionalSome\nTupleStart\n  Primitive\tInt(1)\n  Primitive\tEnum(x)\nTupleEnd\nEOF\n", stdout)
}

func TestEventsJSON(t *testing.T) {
	path := writeFile(t, "a.ron", "[true]")
	stdout, _, err := run(t, "", "events", "-f", "json", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.JSONEq(t, `{"kind":"Primitive","value":{"type":"Bool","value":true},"offset":1}`, lines[1])
}

func TestEventsUnknownFormat(t *testing.T) {
	_, _, err := run(t, "1", "events", "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format: xml")
}

func TestEventsRendersParseErrors(t *testing.T) {
	stdout, stderr, err := run(t, "[1 2]", "events", "--strict")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "ListStart\n  Primitive\tInt(1)\n", stdout)
	assert.Equal(t, "<stdin>:1:4: syntax error: expected ',' or ']', got Int(2)\n[1 2]\n   ^\n", stderr)
}

func TestEventsMaxDepth(t *testing.T) {
	_, stderr, err := run(t, "[[1]]", "events", "--max-depth", "1")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "nesting depth exceeds limit of 1")
}

func TestTokens(t *testing.T) {
	stdout, _, err := run(t, `(a: "b")`, "tokens")
	require.NoError(t, err)
	want := "0:1\t(\t(\n" +
		"1:2\tIdentifier\ta\n" +
		"2:3\t:\t:\n" +
		"4:7\tString\t\"b\"\n" +
		"7:8\t)\t)\n"
	assert.Equal(t, want, stdout)
}

func TestTokensLexError(t *testing.T) {
	stdout, stderr, err := run(t, `[ 'ab' ]`, "tokens")
	require.ErrorIs(t, err, errReported)
	assert.Equal(t, "0:1\t[\t[\n", stdout)
	assert.Contains(t, stderr, "lex error: character literal must contain exactly one character")
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.ron", "Config(name: \"x\")\n")
	bad := writeFile(t, "bad.ron", "Config(name: )\n")

	_, stderr, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, stderr, err = run(t, "", "check", good, bad)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, bad+":1:14: syntax error: expected value, got ')'")
}

func TestCheckGrammar(t *testing.T) {
	// Accepted by the lenient parser but not by the grammar.
	path := writeFile(t, "lenient.ron", "[1 2]")

	_, _, err := run(t, "", "check", path)
	require.NoError(t, err)

	_, stderr, err := run(t, "", "check", "--grammar", path)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, path+":1:4: grammar: input does not match Document")
}

func TestCheckGrammarSeveralValues(t *testing.T) {
	path := writeFile(t, "many.ron", "1 [2] Some(3)\n")

	_, stderr, err := run(t, "", "check", "--grammar", "--strict", path)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestGrammarPrint(t *testing.T) {
	stdout, _, err := run(t, "", "grammar")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Document = { Value } .")
}

func TestGrammarVerify(t *testing.T) {
	stdout, _, err := run(t, "", "grammar", "--verify")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "ok: "))

	broken := writeFile(t, "broken.ebnf", "Document = Missing .\n")
	_, stderr, err := run(t, "", "grammar", "--verify", broken)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "missing production Missing")
}

func TestGrammarFileNeedsVerify(t *testing.T) {
	_, _, err := run(t, "", "grammar", "x.ebnf")
	require.Error(t, err)
}
