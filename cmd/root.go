package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ian-shakespeare/golox/internal/config"
	"github.com/ian-shakespeare/golox/internal/interpret"
	"github.com/ian-shakespeare/golox/internal/logger"
)

// exitError ends the process with code. Its message has already been
// written by the time it is returned.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

type app struct {
	cfg    *config.Config
	log    *zap.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfgFile string
	debug   bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		cfg:    config.Default(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "golox",
		Short: "Scan, parse and evaluate Lox expressions",
		Long: `golox runs the expression pipeline of a tree-walking Lox interpreter.

Commands:
  tokenize  Print the tokens of a source file
  parse     Print the parenthesized syntax tree of a source file
  evaluate  Print the value of the expression in a source file
  run       Same as evaluate
  prompt    Evaluate expressions line by line
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newTokenizeCmd(a),
		newParseCmd(a),
		newEvaluateCmd(a, "evaluate"),
		newEvaluateCmd(a, "run"),
		newPromptCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	return nil
}

// newLox starts a run over source with its own run id.
func (a *app) newLox(source io.Reader, command string) (*interpret.Lox, *zap.Logger, error) {
	log := a.log.With(zap.String("run_id", uuid.NewString()), zap.String("command", command))
	log.Debug("run started")

	lox, err := interpret.NewLox(source, interpret.Options{
		Stderr: a.stderr,
		Logger: log,
	})
	if err != nil {
		return nil, nil, err
	}
	return lox, log, nil
}
