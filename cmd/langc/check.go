package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/you-not-fish/lang/internal/syntax"
)

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]
	var diags syntax.DiagnosticList
	s, _, err := c.openScanner(filename, &diags)
	if err != nil {
		return err
	}
	if err := checkDelimiters(s); err != nil {
		c.logger.Fatal("unbalanced delimiters", zap.String("file", filename), zap.Error(err))
		return err
	}
	if err := diags.Err(); err != nil {
		return errors.Wrap(err, countErrors(len(diags)))
	}
	fmt.Fprintf(c.stdout, "%s: ok\n", filename)
	return nil
}

var closers = map[syntax.Kind]syntax.Kind{'(': ')', '[': ']', '{': '}'}

// checkDelimiters consumes s to EOF and requires every closing delimiter to
// match the innermost open one. The returned error wraps
// syntax.ErrUnexpectedToken and leaves s on the offending token.
func checkDelimiters(s *syntax.Scanner) error {
	var open []syntax.Kind // expected closers, innermost last
	for !s.Is(syntax.EOF) {
		k := s.Token().Kind
		if closer, ok := closers[k]; ok {
			open = append(open, closer)
			s.Next()
			continue
		}
		switch k {
		case ')', ']', '}':
			if len(open) == 0 {
				return errors.Wrapf(syntax.ErrUnexpectedToken, "%s: unmatched %s", s.Pos(), k)
			}
			if err := s.Expect(open[len(open)-1]); err != nil {
				return err
			}
			open = open[:len(open)-1]
		default:
			s.Next()
		}
	}
	if len(open) > 0 {
		return s.Expect(open[len(open)-1])
	}
	return nil
}
