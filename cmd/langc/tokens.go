package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/lang/internal/syntax"
)

type scannedToken struct {
	tok  syntax.Token
	pos  syntax.Pos
	text string
}

func (c *cli) runTokens(cmd *cobra.Command, args []string) error {
	var toks []scannedToken
	collect := func(s *syntax.Scanner) {
		toks = append(toks, scannedToken{tok: s.Token(), pos: s.Pos(), text: string(s.Text())})
	}
	s, err := c.scanFile(args[0], collect)
	if s == nil {
		return err
	}
	collect(s) // EOF

	switch {
	case c.dump:
		for _, t := range toks {
			pretty.Fprintf(c.stdout, "%s: %# v\n", t.pos, t.tok)
		}
	case c.format == formatJSON:
		if jerr := writeTokensJSON(c.stdout, toks); jerr != nil {
			return jerr
		}
	default:
		writeTokensText(c.stdout, toks)
	}
	return err
}

// writeTokensText prints one token per line under a column header.
func writeTokensText(w io.Writer, toks []scannedToken) {
	fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for _, t := range toks {
		fmt.Fprintf(w, "%-20s %-12s %s\n", t.pos, t.tok.Kind, formatLiteral(t.tok))
	}
}

// formatLiteral formats a token's payload for display. Tokens without a
// payload format as the empty string.
func formatLiteral(tok syntax.Token) string {
	switch tok.Kind {
	case syntax.IntLit:
		if tok.Mod == syntax.ModChar {
			return strconv.QuoteRune(rune(tok.Int))
		}
		return fmt.Sprintf("%d (%s)", tok.Int, tok.Mod)
	case syntax.FloatLit:
		return strconv.FormatFloat(tok.Float, 'g', -1, 64)
	case syntax.StringLit:
		return strconv.Quote(tok.Text.String())
	case syntax.Name:
		return tok.Text.String()
	}
	return ""
}

type jsonToken struct {
	Pos   string      `json:"pos"`
	Start int         `json:"start"`
	End   int         `json:"end"`
	Kind  string      `json:"kind"`
	Mod   string      `json:"mod,omitempty"`
	Text  string      `json:"text"`
	Value interface{} `json:"value,omitempty"`
}

func writeTokensJSON(w io.Writer, toks []scannedToken) error {
	out := make([]jsonToken, len(toks))
	for i, t := range toks {
		jt := jsonToken{
			Pos:   t.pos.String(),
			Start: t.tok.Span.Start,
			End:   t.tok.Span.End,
			Kind:  t.tok.Kind.String(),
			Mod:   t.tok.Mod.String(),
			Text:  t.text,
		}
		switch t.tok.Kind {
		case syntax.IntLit:
			jt.Value = t.tok.Int
		case syntax.FloatLit:
			jt.Value = t.tok.Float
		case syntax.StringLit, syntax.Name:
			jt.Value = t.tok.Text.String()
		}
		out[i] = jt
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (c *cli) runNames(cmd *cobra.Command, args []string) error {
	s, err := c.scanFile(args[0], func(*syntax.Scanner) {})
	if s == nil {
		return err
	}
	for i, n := range s.Names().Names() {
		fmt.Fprintf(c.stdout, "%4d  %s\n", i, strconv.Quote(n.String()))
	}
	return err
}
