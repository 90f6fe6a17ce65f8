package syntax

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"go.uber.org/zap"
)

// A Sink receives recoverable lexical errors. Scanning continues after
// every report.
type Sink interface {
	Report(pos Pos, msg string)
}

// SinkFunc adapts an ordinary function to a Sink.
type SinkFunc func(pos Pos, msg string)

func (f SinkFunc) Report(pos Pos, msg string) { f(pos, msg) }

// Discard drops every report.
var Discard Sink = SinkFunc(func(Pos, string) {})

// NewLogSink returns a Sink that logs each report as a warning.
func NewLogSink(l *zap.Logger) Sink {
	return logSink{l: l}
}

type logSink struct {
	l *zap.Logger
}

func (s logSink) Report(pos Pos, msg string) {
	s.l.Warn("syntax error", zap.Stringer("pos", pos), zap.String("msg", msg))
}

// Diagnostic is one reported error.
type Diagnostic struct {
	Pos Pos
	Msg string
}

func (d Diagnostic) String() string {
	return d.Pos.String() + ": " + d.Msg
}

// SafeFormat implements redact.SafeFormatter. The position is safe to
// report; the message may quote source text and is not.
func (d Diagnostic) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%v: %s", redact.Safe(d.Pos), d.Msg)
}

// DiagnosticList is a Sink that keeps every report in order.
type DiagnosticList []Diagnostic

func (l *DiagnosticList) Report(pos Pos, msg string) {
	*l = append(*l, Diagnostic{Pos: pos, Msg: msg})
}

// Err returns nil for an empty list, otherwise an error describing the
// first diagnostic and how many followed it.
func (l DiagnosticList) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return errors.Newf("%s", l[0])
	}
	if len(l) == 2 {
		return errors.Newf("%s (and 1 more error)", l[0])
	}
	return errors.Newf("%s (and %d more errors)", l[0], len(l)-1)
}
