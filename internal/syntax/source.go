package syntax

import "fmt"

// source is a byte cursor over caller-owned text with line/column tracking.
// The text is never modified.
type source struct {
	buf      []byte
	filename string

	ch   byte // current byte, 0 at end of input
	offs int  // offset of ch in buf
	line uint32
	col  uint32

	sink   Sink
	errors int
}

func (s *source) init(filename string, buf []byte, sink Sink) {
	s.buf = buf
	s.filename = filename
	s.sink = sink
	s.offs = 0
	s.line, s.col = 1, 1
	s.errors = 0
	s.ch = s.at(0)
}

// nextch advances past the current byte. At end of input it does nothing.
func (s *source) nextch() {
	if s.eof() {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.offs++
	s.ch = s.at(s.offs)
}

// at returns the byte at offset i, or 0 past the end.
func (s *source) at(i int) byte {
	if i < len(s.buf) {
		return s.buf[i]
	}
	return 0
}

// peek returns the byte n positions after the current one.
func (s *source) peek(n int) byte { return s.at(s.offs + n) }

func (s *source) eof() bool { return s.offs >= len(s.buf) }

func (s *source) pos() Pos {
	return NewPos(s.filename, s.offs, s.line, s.col)
}

// errorf reports a recoverable error at the current position.
func (s *source) errorf(format string, args ...interface{}) {
	s.errors++
	if s.sink != nil {
		s.sink.Report(s.pos(), fmt.Sprintf(format, args...))
	}
}

// Character classification helpers. Only ASCII is recognized.

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// lower maps ASCII upper-case letters to lower case; 0x20 is 'a' - 'A'.
func lower(c byte) byte {
	return ('a' - 'A') | c
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// digitValue returns the value of c as a digit in any base up to 16,
// or -1 if c is not a digit.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= lower(c) && lower(c) <= 'f':
		return int(lower(c)-'a') + 10
	}
	return -1
}

// escapeValue maps the character after a backslash to the byte it denotes.
func escapeValue(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case 'b':
		return '\b', true
	case 'a':
		return '\a', true
	case '0':
		return 0, true
	case '\\', '\'', '"':
		return c, true
	}
	return 0, false
}
