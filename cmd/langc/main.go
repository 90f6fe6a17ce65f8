// Package main implements langc, a debugging tool for the language front end.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/you-not-fish/lang/internal/syntax"
)

// Version information
const Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return newCLI(stdout, stderr).execute(args)
}

// cli holds the flag values and output streams shared by all commands.
type cli struct {
	stdout, stderr io.Writer
	logger         *zap.Logger
	// onFatal is what the logger does after writing a Fatal entry.
	// The zero value exits the process.
	onFatal zapcore.CheckWriteAction

	level  logLevel
	format outputFormat
	dump   bool
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{stdout: stdout, stderr: stderr, format: formatText, level: logLevel(zapcore.WarnLevel)}
}

func (c *cli) execute(args []string) int {
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)
	err := root.Execute()
	if c.logger != nil {
		_ = c.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(c.stderr, "langc: %v\n", err)
		return 1
	}
	return 0
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "langc [command]",
		Short: "inspect how the front end sees a source file",
		Long: `
  Runs the scanner over a source file and prints what it produces.
  The exit status is 1 if any syntax errors were reported.
`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.logger = newLogger(c.stderr, zapcore.Level(c.level), zap.OnFatal(c.onFatal))
		},
	}
	root.PersistentFlags().Var(&c.level, "log-level", "minimum level of log output (debug, info, warn, error)")

	tokens := &cobra.Command{
		Use:   "tokens <file>",
		Short: "print the token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runTokens,
	}
	tokens.Flags().Var(&c.format, "format", "output format (text or json)")
	tokens.Flags().BoolVar(&c.dump, "dump", false, "print every token as a Go value")

	names := &cobra.Command{
		Use:   "names <file>",
		Short: "print the interned names and strings of a file in first-seen order",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runNames,
	}

	check := &cobra.Command{
		Use:   "check <file>",
		Short: "verify that brackets, parentheses and braces are balanced",
		Long: `
  Scans a file and matches every closing delimiter against the innermost
  open one. A mismatch is logged as fatal and ends the process.
`,
		Args: cobra.ExactArgs(1),
		RunE: c.runCheck,
	}

	root.AddCommand(tokens, names, check)
	return root
}

// newLogger returns a console logger without timestamps.
func newLogger(w io.Writer, level zapcore.Level, opts ...zap.Option) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core, opts...)
}

// openScanner reads filename and returns a scanner on its first token.
// Diagnostics are logged and appended to diags.
func (c *cli) openScanner(filename string, diags *syntax.DiagnosticList) (*syntax.Scanner, []byte, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading source")
	}

	logSink := syntax.NewLogSink(c.logger.With(zap.String("file", filename)))
	sink := syntax.SinkFunc(func(pos syntax.Pos, msg string) {
		diags.Report(pos, msg)
		logSink.Report(pos, msg)
	})
	return syntax.NewScanner(src, syntax.WithFilename(filename), syntax.WithSink(sink)), src, nil
}

// scanFile scans filename to the end, calling f for every token before EOF.
// Diagnostics are logged and collected; a non-empty list becomes the error.
func (c *cli) scanFile(filename string, f func(s *syntax.Scanner)) (*syntax.Scanner, error) {
	var diags syntax.DiagnosticList
	s, src, err := c.openScanner(filename, &diags)
	if err != nil {
		return nil, err
	}
	for ; !s.Is(syntax.EOF); s.Next() {
		f(s)
	}
	c.logger.Debug("scanned file",
		zap.String("file", filename),
		zap.Int("bytes", len(src)),
		zap.Int("names", s.Names().Len()),
		zap.Int("errors", len(diags)))

	if err := diags.Err(); err != nil {
		return s, errors.Wrap(err, countErrors(len(diags)))
	}
	return s, nil
}

func countErrors(n int) string {
	if n == 1 {
		return "1 syntax error"
	}
	return fmt.Sprintf("%d syntax errors", n)
}
