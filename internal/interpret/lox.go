package interpret

import (
	"io"

	"go.uber.org/zap"
)

// Options configures a Lox run. Stderr receives diagnostics as they are
// reported; it may be nil.
type Options struct {
	Stderr io.Writer
	Logger *zap.Logger
}

// Lox is a single scan, parse and evaluate run over one source. Nothing
// is shared between runs; a prompt builds a new Lox for every line.
type Lox struct {
	reporter *Reporter
	tokens   []Token
	opts     Options
}

// NewLox scans source immediately. Diagnostics are available through
// HadError and Reporter; the error is only for failures reading source.
func NewLox(source io.Reader, opts Options) (*Lox, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	reporter := NewReporter(opts.Stderr, opts.Logger)
	tokens, err := NewScanner(source, reporter).ScanTokens()
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("scanned source",
		zap.Int("tokens", len(tokens)),
		zap.Int("diagnostics", len(reporter.Diagnostics())),
	)

	return &Lox{
		reporter: reporter,
		tokens:   tokens,
		opts:     opts,
	}, nil
}

func (l *Lox) Tokens() []Token {
	return l.tokens
}

// Parse returns the expression tree and whether it can be trusted, which
// is only the case when neither scanning nor parsing reported anything.
func (l *Lox) Parse() (Expr, bool) {
	expr := NewParser(l.tokens, l.reporter).Parse()
	return expr, !l.reporter.HadError()
}

// Evaluate parses and evaluates the source. If scanning or parsing
// reported a diagnostic the tree is not evaluated and nil, nil is
// returned; check HadError.
func (l *Lox) Evaluate() (Value, error) {
	expr, ok := l.Parse()
	if !ok {
		return nil, nil
	}
	return NewInterpreter(l.opts.Stderr, l.opts.Logger).Evaluate(expr)
}

func (l *Lox) HadError() bool {
	return l.reporter.HadError()
}

func (l *Lox) Reporter() *Reporter {
	return l.reporter
}
