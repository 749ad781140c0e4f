package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ian-shakespeare/golox/internal/interpret"
)

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Evaluate expressions line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.prompt()
		},
	}
}

// prompt evaluates each input line in a fresh run until stdin ends.
// Errors are reported but never end the loop.
func (a *app) prompt() error {
	lines := bufio.NewReader(a.stdin)
	for {
		fmt.Fprint(a.stdout, a.cfg.Prompt.Input)

		// Lines have no length limit; a final line without a newline
		// still counts.
		line, err := lines.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		lox, log, err := a.newLox(strings.NewReader(line), "prompt")
		if err != nil {
			return err
		}

		value, err := lox.Evaluate()
		if lox.HadError() || err != nil {
			log.Debug("line rejected")
			continue
		}
		fmt.Fprintf(a.stdout, "%s%s\n", a.cfg.Prompt.Result, interpret.Display(value))
	}
	fmt.Fprintln(a.stdout)

	return nil
}
