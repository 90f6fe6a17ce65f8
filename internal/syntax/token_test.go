package syntax

import (
	"testing"

	"github.com/you-not-fish/lang/internal/intern"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		// Special
		{EOF, "end of file"},
		{Kind(7), "<ASCII 7>"},
		{Kind(127), "<ASCII 127>"},
		{kindEnd, "Kind(153)"},

		// Single characters
		{'+', "+"},
		{'(', "("},
		{';', ";"},
		{'~', "~"},

		// Literals
		{IntLit, "integer"},
		{FloatLit, "float"},
		{Name, "name"},
		{StringLit, "string"},

		// Compound operators
		{Shl, "<<"},
		{Shr, ">>"},
		{Eq, "=="},
		{NotEq, "!="},
		{LtEq, "<="},
		{GtEq, ">="},
		{AndAnd, "&&"},
		{OrOr, "||"},
		{Inc, "++"},
		{Dec, "--"},
		{ColonAssign, ":="},
		{AddAssign, "+="},
		{SubAssign, "-="},
		{OrAssign, "|="},
		{AndAssign, "&="},
		{XorAssign, "^="},
		{ShlAssign, "<<="},
		{ShrAssign, ">>="},
		{MulAssign, "*="},
		{DivAssign, "/="},
		{ModAssign, "%="},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindValues(t *testing.T) {
	if IntLit != 128 {
		t.Errorf("IntLit = %d, want 128", IntLit)
	}
	for k := IntLit; k < kindEnd; k++ {
		if k.String() == "" {
			t.Errorf("Kind(%d) has no name", int(k))
		}
	}
}

func TestKindIsAssign(t *testing.T) {
	assign := []Kind{ColonAssign, AddAssign, SubAssign, OrAssign, AndAssign,
		XorAssign, ShlAssign, ShrAssign, MulAssign, DivAssign, ModAssign}
	for _, k := range assign {
		if !k.IsAssign() {
			t.Errorf("%s.IsAssign() = false, want true", k)
		}
	}

	notAssign := []Kind{'=', Eq, NotEq, Shl, Inc, Name, EOF}
	for _, k := range notAssign {
		if k.IsAssign() {
			t.Errorf("%s.IsAssign() = true, want false", k)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModDec, "dec"},
		{ModHex, "hex"},
		{ModOct, "oct"},
		{ModBin, "bin"},
		{ModChar, "char"},
		{Modifier(42), "Modifier(42)"},
	}
	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	names := intern.NewTable()
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: EOF}, "EOF"},
		{Token{Kind: IntLit, Mod: ModHex, Int: 255}, "int 255 hex"},
		{Token{Kind: IntLit, Mod: ModChar, Int: 'a'}, "char 'a'"},
		{Token{Kind: IntLit, Mod: ModChar, Int: '\n'}, `char '\n'`},
		{Token{Kind: FloatLit, Float: 0.25}, "float 0.25"},
		{Token{Kind: FloatLit, Float: 1e21}, "float 1e+21"},
		{Token{Kind: StringLit, Text: names.InternString("a\tb")}, `string "a\tb"`},
		{Token{Kind: Name, Text: names.InternString("foo")}, "name foo"},
		{Token{Kind: ShlAssign}, "<<="},
		{Token{Kind: '{'}, "{"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("Token.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{Start: 3, End: 7}).Len(); got != 4 {
		t.Errorf("Span.Len() = %d, want 4", got)
	}
	if got := (Span{Start: 5, End: 5}).Len(); got != 0 {
		t.Errorf("empty Span.Len() = %d, want 0", got)
	}
}
