// Package syntax implements lexical analysis for the language front end.
package syntax

import (
	"fmt"
	"strconv"

	"github.com/you-not-fish/lang/internal/intern"
)

// Kind classifies a token. Values 0 through 127 are single ASCII
// characters standing for themselves; 0 also marks end of input.
// Literal and compound-operator kinds follow after the ASCII range.
type Kind int

const (
	EOF      Kind = 0
	lastChar Kind = 127
)

const (
	// Literals
	IntLit Kind = lastChar + 1 + iota // 42, 0xff, 011, 0b1010, 'a'
	FloatLit                          // 1.5, 1e3, .23
	Name                              // foo, _wer
	StringLit                         // "text"

	// Compound operators
	Shl         // <<
	Shr         // >>
	Eq          // ==
	NotEq       // !=
	LtEq        // <=
	GtEq        // >=
	AndAnd      // &&
	OrOr        // ||
	Inc         // ++
	Dec         // --
	ColonAssign // :=
	AddAssign   // +=
	SubAssign   // -=
	OrAssign    // |=
	AndAssign   // &=
	XorAssign   // ^=
	ShlAssign   // <<=
	ShrAssign   // >>=
	MulAssign   // *=
	DivAssign   // /=
	ModAssign   // %=

	kindEnd
)

var kindNames = [...]string{
	IntLit - IntLit:      "integer",
	FloatLit - IntLit:    "float",
	Name - IntLit:        "name",
	StringLit - IntLit:   "string",
	Shl - IntLit:         "<<",
	Shr - IntLit:         ">>",
	Eq - IntLit:          "==",
	NotEq - IntLit:       "!=",
	LtEq - IntLit:        "<=",
	GtEq - IntLit:        ">=",
	AndAnd - IntLit:      "&&",
	OrOr - IntLit:        "||",
	Inc - IntLit:         "++",
	Dec - IntLit:         "--",
	ColonAssign - IntLit: ":=",
	AddAssign - IntLit:   "+=",
	SubAssign - IntLit:   "-=",
	OrAssign - IntLit:    "|=",
	AndAssign - IntLit:   "&=",
	XorAssign - IntLit:   "^=",
	ShlAssign - IntLit:   "<<=",
	ShrAssign - IntLit:   ">>=",
	MulAssign - IntLit:   "*=",
	DivAssign - IntLit:   "/=",
	ModAssign - IntLit:   "%=",
}

// String returns the operator text for operator kinds, the character for
// printable single-character kinds, and a descriptive word otherwise.
func (k Kind) String() string {
	switch {
	case k == EOF:
		return "end of file"
	case k > EOF && k <= lastChar:
		if k >= ' ' && k <= '~' {
			return string(rune(k))
		}
		return fmt.Sprintf("<ASCII %d>", int(k))
	case k >= IntLit && k < kindEnd:
		return kindNames[k-IntLit]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsAssign reports whether k is a compound assignment operator
// (including :=).
func (k Kind) IsAssign() bool {
	return k >= ColonAssign && k <= ModAssign
}

// Modifier refines an integer literal: its radix, or that it came from a
// character literal.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModDec
	ModHex
	ModOct
	ModBin
	ModChar
)

var modNames = [...]string{
	ModNone: "",
	ModDec:  "dec",
	ModHex:  "hex",
	ModOct:  "oct",
	ModBin:  "bin",
	ModChar: "char",
}

func (m Modifier) String() string {
	if int(m) < len(modNames) {
		return modNames[m]
	}
	return fmt.Sprintf("Modifier(%d)", m)
}

// Span is the half-open byte range [Start, End) of a token in the source.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Token is a classified lexical unit. Exactly one payload field is
// meaningful, chosen by Kind: Int for IntLit, Float for FloatLit, and Text
// for Name and StringLit. Text is the intern table's canonical handle, so
// two name tokens spell the same identifier iff their Text pointers match.
type Token struct {
	Kind Kind
	Mod  Modifier
	Span Span

	Int   uint64
	Float float64
	Text  *intern.Name
}

// String renders the token for dumps and tests.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF"
	case IntLit:
		if t.Mod == ModChar {
			return fmt.Sprintf("char %q", rune(t.Int))
		}
		return fmt.Sprintf("int %d %s", t.Int, t.Mod)
	case FloatLit:
		return "float " + strconv.FormatFloat(t.Float, 'g', -1, 64)
	case StringLit:
		return "string " + strconv.Quote(t.Text.String())
	case Name:
		return "name " + t.Text.String()
	}
	return t.Kind.String()
}
