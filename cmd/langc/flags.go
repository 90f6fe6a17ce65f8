package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// outputFormat is the --format flag of the tokens command.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON:
		*f = v
		return nil
	}
	return errors.Newf("unknown format %q (want text or json)", s)
}

func (f *outputFormat) Type() string { return "format" }

// logLevel adapts a zap level to pflag.Value.
type logLevel zapcore.Level

var _ pflag.Value = (*logLevel)(nil)

func (l *logLevel) String() string { return zapcore.Level(*l).String() }

func (l *logLevel) Set(s string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return errors.Wrapf(err, "log level %q", s)
	}
	*l = logLevel(lvl)
	return nil
}

func (l *logLevel) Type() string { return "level" }
