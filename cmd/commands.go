package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ian-shakespeare/golox/internal/interpret"
)

func newTokenizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <file>",
		Short: "Print the tokens of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lox, log, err := a.openLox(args[0], cmd.Name())
			if err != nil {
				return err
			}

			for _, token := range lox.Tokens() {
				fmt.Fprintln(a.stdout, token)
			}
			return a.finish(log, lox.HadError(), nil)
		},
	}
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the parenthesized syntax tree of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lox, log, err := a.openLox(args[0], cmd.Name())
			if err != nil {
				return err
			}

			expr, ok := lox.Parse()
			if ok {
				fmt.Fprintln(a.stdout, interpret.Print(expr))
			}
			return a.finish(log, !ok, nil)
		},
	}
}

func newEvaluateCmd(a *app, use string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <file>",
		Short: "Print the value of the expression in a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lox, log, err := a.openLox(args[0], cmd.Name())
			if err != nil {
				return err
			}

			value, evalErr := lox.Evaluate()
			if !lox.HadError() && evalErr == nil {
				fmt.Fprintln(a.stdout, interpret.Display(value))
			}
			return a.finish(log, lox.HadError(), evalErr)
		},
	}
}

func (a *app) openLox(path string, command string) (*interpret.Lox, *zap.Logger, error) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.stderr, "Failed to read file %s: %v\n", path, err)
		return nil, nil, &exitError{code: a.cfg.Exit.NoInput}
	}
	defer f.Close()

	lox, log, err := a.newLox(f, command)
	if err != nil {
		fmt.Fprintf(a.stderr, "Failed to read file %s: %v\n", path, err)
		return nil, nil, &exitError{code: a.cfg.Exit.NoInput}
	}
	return lox, log, nil
}

// Maps the outcome of a run to its exit status. Diagnostics have already
// been written to stderr.
func (a *app) finish(log *zap.Logger, hadError bool, evalErr error) error {
	switch {
	case hadError:
		log.Debug("run failed", zap.Int("exit", a.cfg.Exit.DataError))
		return &exitError{code: a.cfg.Exit.DataError}
	case evalErr != nil:
		log.Debug("run failed", zap.Int("exit", a.cfg.Exit.TypeError), zap.Error(evalErr))
		return &exitError{code: a.cfg.Exit.TypeError}
	}
	log.Debug("run finished")
	return nil
}
