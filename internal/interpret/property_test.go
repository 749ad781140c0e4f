package interpret_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ian-shakespeare/golox/internal/interpret"
	"pgregory.net/rapid"
)

var punctuation = []string{"(", ")", "{", "}", ",", ".", "-", "+", ";", "*", "/"}

func numberLiteral() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		whole := rapid.IntRange(0, 99999).Draw(t, "whole")
		if rapid.Bool().Draw(t, "fractional") {
			return fmt.Sprintf("%d.%d", whole, rapid.IntRange(0, 999).Draw(t, "fraction"))
		}
		return fmt.Sprint(whole)
	})
}

func TestPropertyTokenCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.OneOf(rapid.SampledFrom(punctuation), numberLiteral())).Draw(t, "items")

		var source strings.Builder
		lines := 1
		for i, item := range items {
			source.WriteString(item)
			sep := rapid.SampledFrom([]string{" ", "\t", "\n", "\r\n"}).Draw(t, fmt.Sprintf("sep%d", i))
			lines += strings.Count(sep, "\n")
			source.WriteString(sep)
		}

		r := interpret.NewReporter(nil, nil)
		tokens := interpret.Scan(source.String(), r)

		if r.HadError() {
			t.Fatalf("unexpected diagnostics for %q: %v", source.String(), r.Errors())
		}
		if len(tokens) != len(items)+1 {
			t.Fatalf("scanned %d tokens from %d items in %q", len(tokens), len(items), source.String())
		}
		last := tokens[len(tokens)-1]
		if last.Type != interpret.EOF_TOKEN || last.Line != lines {
			t.Fatalf("last token %v at line %d, want EOF at line %d", last, last.Line, lines)
		}
	})
}

func TestPropertyScanIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.String().Draw(t, "source")

		first := interpret.NewReporter(nil, nil)
		second := interpret.NewReporter(nil, nil)
		a := interpret.Scan(source, first)
		b := interpret.Scan(source, second)

		if fmt.Sprint(a) != fmt.Sprint(b) {
			t.Fatalf("scans differ: %v vs %v", a, b)
		}
		if fmt.Sprint(first.Errors()) != fmt.Sprint(second.Errors()) {
			t.Fatalf("diagnostics differ: %v vs %v", first.Errors(), second.Errors())
		}
		if a[len(a)-1].Type != interpret.EOF_TOKEN {
			t.Fatalf("last token is %v", a[len(a)-1])
		}
	})
}

func TestPropertyArithmetic(t *testing.T) {
	operators := map[string]func(a, b float64) interpret.Value{
		"+":  func(a, b float64) interpret.Value { return interpret.NumberValue(a + b) },
		"-":  func(a, b float64) interpret.Value { return interpret.NumberValue(a - b) },
		"*":  func(a, b float64) interpret.Value { return interpret.NumberValue(a * b) },
		"<":  func(a, b float64) interpret.Value { return interpret.BooleanValue(a < b) },
		">=": func(a, b float64) interpret.Value { return interpret.BooleanValue(a >= b) },
		"==": func(a, b float64) interpret.Value { return interpret.BooleanValue(a == b) },
	}
	names := []string{"+", "-", "*", "<", ">=", "=="}

	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1e6, 1e6).Draw(t, "a")
		b := rapid.Float64Range(-1e6, 1e6).Draw(t, "b")
		op := rapid.SampledFrom(names).Draw(t, "op")

		source := fmt.Sprintf("%s %s %s", interpret.NumberValue(a), op, interpret.NumberValue(b))
		r := interpret.NewReporter(nil, nil)
		expr := interpret.NewParser(interpret.Scan(source, r), r).Parse()
		if r.HadError() {
			t.Fatalf("diagnostics for %q: %v", source, r.Errors())
		}

		i := interpret.NewInterpreter(nil, nil)
		first, err := i.Evaluate(expr)
		if err != nil {
			t.Fatalf("evaluating %q: %v", source, err)
		}
		second, err := i.Evaluate(expr)
		if err != nil {
			t.Fatalf("evaluating %q again: %v", source, err)
		}

		expect := operators[op](a, b)
		if !interpret.Equal(first, expect) || !interpret.Equal(first, second) {
			t.Fatalf("%q = %#v then %#v, want %#v", source, first, second, expect)
		}
	})
}
