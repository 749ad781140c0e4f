package interpret

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Reporter collects the diagnostics of one scan and parse run. The
// scanner and parser of a run share a single Reporter.
type Reporter struct {
	diagnostics []*Error
	out         io.Writer
	log         *zap.Logger
}

// NewReporter echoes each diagnostic to out when out is non-nil.
func NewReporter(out io.Writer, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{out: out, log: log}
}

func (r *Reporter) Error(line int, message string) {
	r.Report(NewLexicalErrorf(line, "%s", message))
}

func (r *Reporter) ErrorAt(token Token, message string) {
	r.Report(NewSyntaxErrorf(token, "%s", message))
}

func (r *Reporter) Report(err *Error) {
	r.diagnostics = append(r.diagnostics, err)
	r.log.Debug("diagnostic recorded",
		zap.String("type", err.Type),
		zap.Int("line", err.Line),
		zap.String("message", err.Message),
	)
	if r.out != nil {
		fmt.Fprintln(r.out, err.Error())
	}
}

func (r *Reporter) Diagnostics() []*Error {
	return r.diagnostics
}

// Errors returns the formatted diagnostics in the order they were reported.
func (r *Reporter) Errors() []string {
	errs := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		errs = append(errs, d.Error())
	}
	return errs
}

func (r *Reporter) HadError() bool {
	return len(r.diagnostics) > 0
}
