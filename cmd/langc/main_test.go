package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.c")
	require.NoError(t, os.WriteFile(filename, []byte(src), 0o600))
	return filename
}

func runCmd(t *testing.T, args ...string) (code int, stdout string, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// tokenRows returns the columns after POSITION of each row of the text
// token table.
func tokenRows(t *testing.T, out string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3, out)
	require.Equal(t, []string{"POSITION", "TOKEN", "LITERAL"}, strings.Fields(lines[0]))
	var rows []string
	for _, l := range lines[2:] {
		rows = append(rows, strings.Join(strings.Fields(l)[1:], " "))
	}
	return rows
}

func TestTokensText(t *testing.T) {
	filename := writeTempSource(t, "x := 0x1F;\nputs(\"hi\\n\", 'c', 2.5)\n")
	code, out, errOut := runCmd(t, "tokens", filename)

	require.Equal(t, 0, code, errOut)
	require.Empty(t, errOut)
	require.Equal(t, []string{
		"name x",
		":=",
		"integer 31 (hex)",
		";",
		"name puts",
		"(",
		`string "hi\n"`,
		",",
		"integer 'c'",
		",",
		"float 2.5",
		")",
		"end of file",
	}, tokenRows(t, out))
	require.Contains(t, out, filename+":2:1")
}

func TestTokensReportsErrors(t *testing.T) {
	filename := writeTempSource(t, "a \"open")
	code, out, errOut := runCmd(t, "tokens", filename)

	require.Equal(t, 1, code)
	require.Equal(t, []string{"name a", `string "open"`, "end of file"}, tokenRows(t, out))
	require.Contains(t, errOut, "syntax error")
	require.Contains(t, errOut, "langc: 1 syntax error: "+filename+":1:8: unexpected end of input in string literal")
}

func TestLogLevel(t *testing.T) {
	filename := writeTempSource(t, "0x")

	code, _, errOut := runCmd(t, "--log-level=warn", "tokens", filename)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "WARN")

	code, _, errOut = runCmd(t, "--log-level=error", "tokens", filename)
	require.Equal(t, 1, code)
	require.NotContains(t, errOut, "WARN")
	require.Equal(t, "langc: 1 syntax error: "+filename+":1:3: hex literal has no digits\n", errOut)

	code, _, errOut = runCmd(t, "--log-level=debug", "tokens", filename)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "scanned file")

	code, _, errOut = runCmd(t, "--log-level=loud", "tokens", filename)
	require.Equal(t, 1, code)
	require.Contains(t, errOut, `log level "loud"`)
}

func TestTokensJSON(t *testing.T) {
	filename := writeTempSource(t, "a 1.5 'x'")
	code, out, errOut := runCmd(t, "tokens", "--format=json", filename)
	require.Equal(t, 0, code, errOut)

	var toks []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	require.Len(t, toks, 4)

	require.Equal(t, "name", toks[0]["kind"])
	require.Equal(t, "a", toks[0]["value"])
	require.Equal(t, "a", toks[0]["text"])
	require.Equal(t, filename+":1:1", toks[0]["pos"])

	require.Equal(t, "float", toks[1]["kind"])
	require.Equal(t, 1.5, toks[1]["value"])
	require.Equal(t, float64(2), toks[1]["start"])
	require.Equal(t, float64(5), toks[1]["end"])
	require.NotContains(t, toks[1], "mod")

	require.Equal(t, "integer", toks[2]["kind"])
	require.Equal(t, "char", toks[2]["mod"])
	require.Equal(t, float64('x'), toks[2]["value"])
	require.Equal(t, "'x'", toks[2]["text"])

	require.Equal(t, "end of file", toks[3]["kind"])
}

func TestTokensBadFormat(t *testing.T) {
	filename := writeTempSource(t, "a")
	code, out, errOut := runCmd(t, "tokens", "--format=xml", filename)
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, errOut, `unknown format "xml"`)
}

func TestTokensDump(t *testing.T) {
	filename := writeTempSource(t, "n")
	code, out, _ := runCmd(t, "tokens", "--dump", filename)
	require.Equal(t, 0, code)
	require.Contains(t, out, filename+":1:1: syntax.Token{")
	require.Equal(t, 2, strings.Count(out, "syntax.Token{"))
}

func TestNames(t *testing.T) {
	filename := writeTempSource(t, `b a b "s" a "b"`)
	code, out, errOut := runCmd(t, "names", filename)
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "   0  \"b\"\n   1  \"a\"\n   2  \"s\"\n", out)
}

func TestMissingFile(t *testing.T) {
	code, _, errOut := runCmd(t, "names", filepath.Join(t.TempDir(), "nope.c"))
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "langc: reading source")
}

func TestVersion(t *testing.T) {
	code, out, _ := runCmd(t, "--version")
	require.Equal(t, 0, code)
	require.Equal(t, "langc version "+Version+"\n", out)
}
