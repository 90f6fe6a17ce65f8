package syntax

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/you-not-fish/lang/internal/buf"
	"github.com/you-not-fish/lang/internal/intern"
)

// ErrUnexpectedToken is returned by Expect when the current token does not
// have the required kind.
var ErrUnexpectedToken = errors.New("unexpected token")

// Scanner turns source text into tokens, one at a time. Each Scanner is an
// independent session; it owns the current token and shares nothing with
// other scanners unless they are given the same intern table.
type Scanner struct {
	source

	names  *intern.Table
	tok    Token
	tokPos Pos

	lit buf.Buffer[byte] // string literal accumulator
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFilename sets the file name shown in diagnostic positions.
func WithFilename(name string) Option {
	return func(s *Scanner) { s.filename = name }
}

// WithSink routes recoverable errors to sink. The default logs them to
// the global zap logger.
func WithSink(sink Sink) Option {
	return func(s *Scanner) { s.sink = sink }
}

// WithNames makes the scanner intern into t instead of a private table.
func WithNames(t *intern.Table) Option {
	return func(s *Scanner) { s.names = t }
}

// NewScanner starts scanning src and positions the scanner on the first
// token. src must not be modified while the scanner is in use.
func NewScanner(src []byte, opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	if s.names == nil {
		s.names = intern.NewTable()
	}
	if s.sink == nil {
		s.sink = NewLogSink(zap.L())
	}
	s.source.init(s.filename, src, s.sink)
	s.Next()
	return s
}

// Token returns the current token.
func (s *Scanner) Token() Token { return s.tok }

// Pos returns the position of the current token's first byte.
func (s *Scanner) Pos() Pos { return s.tokPos }

// Text returns the source bytes covered by the current token.
func (s *Scanner) Text() []byte {
	return s.buf[s.tok.Span.Start:s.tok.Span.End]
}

// Names returns the intern table used for names and string literals.
func (s *Scanner) Names() *intern.Table { return s.names }

// ErrorCount returns how many recoverable errors have been reported.
func (s *Scanner) ErrorCount() int { return s.errors }

// Is reports whether the current token has kind k.
func (s *Scanner) Is(k Kind) bool { return s.tok.Kind == k }

// IsName reports whether the current token is the name n.
func (s *Scanner) IsName(n *intern.Name) bool {
	return s.tok.Kind == Name && s.tok.Text == n
}

// Match advances and returns true if the current token has kind k.
// Otherwise it returns false and leaves the scanner unchanged.
func (s *Scanner) Match(k Kind) bool {
	if s.tok.Kind != k {
		return false
	}
	s.Next()
	return true
}

// Expect is Match for tokens the caller cannot do without: a mismatch is
// returned as an error wrapping ErrUnexpectedToken, and the scanner does
// not advance.
func (s *Scanner) Expect(k Kind) error {
	if s.Match(k) {
		return nil
	}
	return errors.Wrapf(ErrUnexpectedToken, "%s: expected %s, got %s", s.tokPos, k, s.tok.Kind)
}

// Next scans the next token, makes it current, and returns it.
// At end of input it keeps returning EOF.
func (s *Scanner) Next() Token {
redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tok = Token{Span: Span{Start: s.offs}}
	s.tokPos = s.pos()

	switch c := s.ch; {
	case s.eof():
		s.tok.Kind = EOF
	case c == '"':
		s.scanString()
	case c == '\'':
		s.scanChar()
	case isDigit(c), c == '.' && isDigit(s.peek(1)):
		s.scanNumber()
	case isLetter(c):
		s.scanName()
	case c >= utf8.RuneSelf:
		s.errorf("unexpected character %#x", c)
		s.nextch()
		goto redo
	default:
		s.scanOperator()
	}

	s.tok.Span.End = s.offs
	return s.tok
}

func (s *Scanner) scanName() {
	start := s.offs
	for isLetter(s.ch) || isDigit(s.ch) {
		s.nextch()
	}
	s.tok.Kind = Name
	s.tok.Text = s.names.Intern(s.buf[start:s.offs])
}

// scanNumber looks past the leading digits without consuming them to
// choose between an integer and a float literal.
func (s *Scanner) scanNumber() {
	i := s.offs
	for isDigit(s.at(i)) {
		i++
	}
	switch s.at(i) {
	case '.', 'e', 'E':
		s.scanFloat()
	default:
		s.scanInt()
	}
}

func (s *Scanner) scanInt() {
	radix := uint64(10)
	s.tok.Mod = ModDec
	if s.ch == '0' {
		s.nextch()
		switch {
		case lower(s.ch) == 'x':
			radix = 16
			s.tok.Mod = ModHex
			s.nextch()
			s.requireDigit("hex")
		case lower(s.ch) == 'b':
			radix = 2
			s.tok.Mod = ModBin
			s.nextch()
			s.requireDigit("binary")
		case isDigit(s.ch):
			radix = 8
			s.tok.Mod = ModOct
		}
	}

	// Past an overflow the digit run is still checked against the radix
	// but no longer accumulated.
	var val uint64
	overflow := false
	for {
		d := digitValue(s.ch)
		if d < 0 {
			break
		}
		switch {
		case uint64(d) >= radix:
			s.errorf("digit %q out of range for base %d", s.ch, radix)
		case overflow:
		case val > (math.MaxUint64-uint64(d))/radix:
			s.errorf("integer literal overflow")
			overflow = true
			val = 0
		default:
			val = val*radix + uint64(d)
		}
		s.nextch()
	}

	s.tok.Kind = IntLit
	s.tok.Int = val
}

func (s *Scanner) requireDigit(base string) {
	if digitValue(s.ch) < 0 {
		s.errorf("%s literal has no digits", base)
	}
}

func (s *Scanner) scanFloat() {
	start := s.offs
	for isDigit(s.ch) {
		s.nextch()
	}
	if s.ch == '.' {
		s.nextch()
	}
	for isDigit(s.ch) {
		s.nextch()
	}
	end := -1
	if lower(s.ch) == 'e' {
		mantissa := s.offs
		s.nextch()
		if s.ch == '+' || s.ch == '-' {
			s.nextch()
		}
		if !isDigit(s.ch) {
			s.errorf("expected digit after float literal exponent, found %q", s.ch)
			end = mantissa
		}
		for isDigit(s.ch) {
			s.nextch()
		}
	}
	if end < 0 {
		end = s.offs
	}

	text := string(s.buf[start:end])
	val, err := strconv.ParseFloat(text, 64)
	switch {
	case math.IsInf(val, 0):
		s.errorf("float literal overflow")
	case err != nil && !errors.Is(err, strconv.ErrRange):
		s.errorf("malformed float literal %q", text)
	}

	s.tok.Kind = FloatLit
	s.tok.Mod = ModNone
	s.tok.Float = val
}

// scanChar scans a character literal. The result is an integer token
// marked ModChar.
func (s *Scanner) scanChar() {
	s.nextch() // opening '
	s.tok.Kind = IntLit
	s.tok.Mod = ModChar

	var val byte
	switch {
	case s.eof():
		s.errorf("unexpected end of input in char literal")
		return
	case s.ch == '\'':
		s.errorf("char literal cannot be empty")
		s.nextch()
		return
	case s.ch == '\n':
		s.errorf("char literal cannot contain newline")
	case s.ch == '\\':
		s.nextch()
		if s.eof() {
			s.errorf("unexpected end of input in char literal")
			return
		}
		v, ok := escapeValue(s.ch)
		if !ok {
			s.errorf("invalid char literal escape '\\%c'", s.ch)
		}
		val = v
		s.nextch()
	default:
		val = s.ch
		s.nextch()
	}

	if s.ch != '\'' {
		s.errorf("expected closing char quote, got %q", s.ch)
	} else {
		s.nextch()
	}
	s.tok.Int = uint64(val)
}

// scanString scans a string literal. Its decoded contents are interned.
func (s *Scanner) scanString() {
	s.nextch() // opening "
	s.lit.Reset()

	for !s.eof() && s.ch != '"' {
		switch s.ch {
		case '\n':
			s.errorf("string literal cannot contain newline")
			s.lit.Push(s.ch)
			s.nextch()
		case '\\':
			s.nextch()
			if s.eof() {
				continue
			}
			if v, ok := escapeValue(s.ch); ok {
				s.lit.Push(v)
			} else {
				s.errorf("invalid string literal escape '\\%c'", s.ch)
			}
			s.nextch()
		default:
			s.lit.Push(s.ch)
			s.nextch()
		}
	}

	if s.eof() {
		s.errorf("unexpected end of input in string literal")
	} else {
		s.nextch() // closing "
	}

	s.tok.Kind = StringLit
	s.tok.Text = s.names.Intern(s.lit.Slice())
}

// follow consumes the current byte and sets kind k if the byte is c.
func (s *Scanner) follow(c byte, k Kind) bool {
	if s.ch != c {
		return false
	}
	s.nextch()
	s.tok.Kind = k
	return true
}

// scanOperator matches the longest operator starting at the current byte.
// Any other byte becomes a single-character token of that value.
func (s *Scanner) scanOperator() {
	c := s.ch
	s.nextch()
	s.tok.Kind = Kind(c)

	switch c {
	case '<':
		if s.follow('<', Shl) {
			s.follow('=', ShlAssign)
		} else {
			s.follow('=', LtEq)
		}
	case '>':
		if s.follow('>', Shr) {
			s.follow('=', ShrAssign)
		} else {
			s.follow('=', GtEq)
		}
	case ':':
		s.follow('=', ColonAssign)
	case '*':
		s.follow('=', MulAssign)
	case '/':
		s.follow('=', DivAssign)
	case '%':
		s.follow('=', ModAssign)
	case '^':
		s.follow('=', XorAssign)
	case '=':
		s.follow('=', Eq)
	case '!':
		s.follow('=', NotEq)
	case '+':
		if !s.follow('+', Inc) {
			s.follow('=', AddAssign)
		}
	case '-':
		if !s.follow('-', Dec) {
			s.follow('=', SubAssign)
		}
	case '&':
		if !s.follow('&', AndAnd) {
			s.follow('=', AndAssign)
		}
	case '|':
		if !s.follow('|', OrOr) {
			s.follow('=', OrAssign)
		}
	}
}
