package interpret

import "fmt"

const (
	LexicalErrorType = "lexicalerror"
	SyntaxErrorType  = "syntaxerror"
	TypeErrorType    = "typeerror"
)

// Error is a diagnostic tied to a source line. Where is empty, " at end"
// or " at '<lexeme>'".
type Error struct {
	Type    string
	Line    int
	Where   string
	Message string
}

func NewLexicalErrorf(line int, format string, a ...any) *Error {
	return &Error{
		Type:    LexicalErrorType,
		Line:    line,
		Message: fmt.Sprintf(format, a...),
	}
}

func NewSyntaxErrorf(token Token, format string, a ...any) *Error {
	return &Error{
		Type:    SyntaxErrorType,
		Line:    token.Line,
		Where:   where(token),
		Message: fmt.Sprintf(format, a...),
	}
}

func NewTypeErrorf(operator Token, format string, a ...any) *Error {
	return &Error{
		Type:    TypeErrorType,
		Line:    operator.Line,
		Where:   where(operator),
		Message: fmt.Sprintf(format, a...),
	}
}

func where(token Token) string {
	if token.Type == EOF_TOKEN {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", token.Lexeme)
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}
