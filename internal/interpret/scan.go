package interpret

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ian-shakespeare/golox/pkg/array"
	"github.com/ian-shakespeare/golox/pkg/iterator"
	"github.com/ian-shakespeare/golox/pkg/runes"
)

var whitespace = []rune{' ', '\r', '\t'}

type scanner struct {
	input    *runes.Reader
	reporter *Reporter
	lexeme   strings.Builder
	current  int
	line     int
	done     bool
	err      error
}

func NewScanner(input io.Reader, reporter *Reporter) *scanner {
	if reporter == nil {
		reporter = NewReporter(nil, nil)
	}
	return &scanner{
		input:    runes.NewReader(input),
		reporter: reporter,
		// Source, even if empty, starts at the first line.
		line: 1,
	}
}

// Scan tokenizes source, recording diagnostics in reporter.
func Scan(source string, reporter *Reporter) []Token {
	// A strings.Reader never fails, so only diagnostics can come back.
	tokens, _ := NewScanner(strings.NewReader(source), reporter).ScanTokens()
	return tokens
}

// NextToken returns the next token. Malformed input is reported and
// skipped. After the EOF token has been returned, io.EOF is returned.
func (s *scanner) NextToken() (Token, error) {
	for {
		if s.isAtEnd() {
			if s.err != nil {
				return Token{}, s.err
			}
			if s.done {
				return Token{}, io.EOF
			}
			s.done = true
			return NewToken(EOF_TOKEN, "", nil, s.line), nil
		}

		s.lexeme.Reset()
		token, ok := s.scanToken()
		if s.err != nil {
			return Token{}, s.err
		}
		if ok {
			return token, nil
		}
	}
}

func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(token, err) || err != nil {
				return
			}
		}
	}
}

// ScanTokens drains the scanner. The returned tokens always end with the
// EOF token unless reading the input failed.
func (s *scanner) ScanTokens() ([]Token, error) {
	tokens, errs := iterator.Collect2(s.Tokens())
	if i := array.Some(errs, func(err error) bool {
		return err != nil
	}); i > -1 {
		return tokens[:i], fmt.Errorf("scanning input: %w", errs[i])
	}
	return tokens, nil
}

func (s *scanner) scanToken() (Token, bool) {
	offset := s.current
	char, size := s.advance()
	if size == 0 {
		return Token{}, false
	}

	switch char {
	case '(':
		return s.token(LEFT_PAREN_TOKEN, nil), true
	case ')':
		return s.token(RIGHT_PAREN_TOKEN, nil), true
	case '{':
		return s.token(LEFT_BRACE_TOKEN, nil), true
	case '}':
		return s.token(RIGHT_BRACE_TOKEN, nil), true
	case ',':
		return s.token(COMMA_TOKEN, nil), true
	case '.':
		return s.token(DOT_TOKEN, nil), true
	case '-':
		return s.token(MINUS_TOKEN, nil), true
	case '+':
		return s.token(PLUS_TOKEN, nil), true
	case ';':
		return s.token(SEMICOLON_TOKEN, nil), true
	case '*':
		return s.token(STAR_TOKEN, nil), true
	case '!':
		return s.token(s.either('=', BANG_EQUAL_TOKEN, BANG_TOKEN), nil), true
	case '=':
		return s.token(s.either('=', EQUAL_EQUAL_TOKEN, EQUAL_TOKEN), nil), true
	case '<':
		return s.token(s.either('=', LESS_EQUAL_TOKEN, LESS_TOKEN), nil), true
	case '>':
		return s.token(s.either('=', GREATER_EQUAL_TOKEN, GREATER_TOKEN), nil), true
	case '/':
		if s.match('/') {
			s.scanComment()
			return Token{}, false
		}
		return s.token(SLASH_TOKEN, nil), true
	case '\n':
		s.line++
		return Token{}, false
	case '"':
		return s.scanString()
	}

	switch {
	case array.Contains(whitespace, char):
		return Token{}, false
	case isDigit(char):
		return s.scanNumber()
	case isAlpha(char):
		return s.scanIdentifier(), true
	case char == utf8.RuneError && size == 1:
		s.reporter.Error(s.line, fmt.Sprintf("Invalid UTF-8 codepoint at: %d", offset))
	default:
		s.reporter.Error(s.line, fmt.Sprintf("Unexpected character: %c", char))
	}
	return Token{}, false
}

func (s *scanner) scanComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) scanString() (Token, bool) {
	for s.peek() != '"' && !s.isAtEnd() {
		// Strings may span lines.
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.reporter.Error(s.line, "Unterminated string.")
		return Token{}, false
	}

	// The closing quote.
	s.advance()

	text := s.lexeme.String()
	return s.token(STRING_TOKEN, StringValue(text[1:len(text)-1])), true
}

func (s *scanner) scanNumber() (Token, bool) {
	for isDigit(s.peek()) {
		s.advance()
	}

	// A trailing '.' is left for the next token.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// Digit runs past the float64 range become +Inf.
	n, err := strconv.ParseFloat(s.lexeme.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		s.reporter.Error(s.line, fmt.Sprintf("Invalid number: %s", s.lexeme.String()))
		return Token{}, false
	}
	return s.token(NUMBER_TOKEN, NumberValue(n)), true
}

func (s *scanner) scanIdentifier() Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	return s.token(LookupKeyword(s.lexeme.String()), nil)
}

// Consumes the next rune, returning its encoded size, or 0 at the end of
// input. Invalid bytes come back as utf8.RuneError with size 1.
func (s *scanner) advance() (rune, int) {
	char, size, err := s.input.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) && s.err == nil {
			s.err = err
		}
		return 0, 0
	}

	if char == utf8.RuneError && size == 1 {
		// Keep the raw byte in the lexeme.
		_ = s.input.UnreadRune()
		b, _ := s.input.ReadByte()
		s.lexeme.WriteByte(b)
	} else {
		s.lexeme.WriteRune(char)
	}
	s.current += size
	return char, size
}

func (s *scanner) match(expected rune) bool {
	if s.isAtEnd() || s.peek() != expected {
		return false
	}
	s.advance()
	return true
}

func (s *scanner) either(expected rune, matched TokenType, otherwise TokenType) TokenType {
	if s.match(expected) {
		return matched
	}
	return otherwise
}

func (s *scanner) peek() rune {
	return s.lookahead(1)
}

func (s *scanner) peekNext() rune {
	return s.lookahead(2)
}

// Returns the nth upcoming rune, or 0 when the input ends before it.
func (s *scanner) lookahead(n int) rune {
	chars, err := s.input.PeekRunes(n)
	if err != nil && s.err == nil {
		s.err = err
	}
	if len(chars) < n {
		return 0
	}
	return chars[n-1]
}

func (s *scanner) isAtEnd() bool {
	chars, err := s.input.PeekRunes(1)
	if err != nil && s.err == nil {
		s.err = err
	}
	return len(chars) == 0
}

func (s *scanner) token(t TokenType, literal Value) Token {
	return NewToken(t, s.lexeme.String(), literal, s.line)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
