package interpret

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

type interpreter struct {
	stderr io.Writer
	log    *zap.Logger
}

// NewInterpreter writes type errors to stderr when it is non-nil.
func NewInterpreter(stderr io.Writer, log *zap.Logger) *interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	return &interpreter{stderr: stderr, log: log}
}

// Interpret evaluates e and writes its display form to w, or an empty
// line when there is no value.
func (i *interpreter) Interpret(e Expr, w io.Writer) error {
	v, err := i.Evaluate(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, Display(v))
	return err
}

// Evaluate returns the value of e. An absent literal yields a nil Value
// and a nil error. An operator applied to operands it does not support
// yields a nil Value and a *Error of TypeErrorType.
func (i *interpreter) Evaluate(e Expr) (Value, error) {
	switch e := e.(type) {
	case *Literal:
		return e.Value, nil
	case *Grouping:
		return i.Evaluate(e.Expression)
	case *Unary:
		return i.evaluateUnary(e)
	case *Binary:
		return i.evaluateBinary(e)
	default:
		return nil, fmt.Errorf("unexpected expression %T", e)
	}
}

func (i *interpreter) evaluateUnary(e *Unary) (Value, error) {
	right, err := i.Evaluate(e.Right)
	if err != nil || right == nil {
		return nil, err
	}

	switch e.Operator.Type {
	case MINUS_TOKEN:
		if n, ok := right.(NumberValue); ok {
			return -n, nil
		}
	case BANG_TOKEN:
		if b, ok := right.(BooleanValue); ok {
			return !b, nil
		}
	}

	return nil, i.typeError(NewTypeErrorf(e.Operator,
		"Incompatible type for operator %s: %#v", e.Operator.Type, right))
}

func (i *interpreter) evaluateBinary(e *Binary) (Value, error) {
	left, err := i.Evaluate(e.Left)
	if err != nil || left == nil {
		return nil, err
	}
	right, err := i.Evaluate(e.Right)
	if err != nil || right == nil {
		return nil, err
	}

	if !compatible(e.Operator.Type, left, right) {
		return nil, i.typeError(NewTypeErrorf(e.Operator,
			"Incompatible types for operator %s: %#v, %#v", e.Operator.Type, left, right))
	}

	switch e.Operator.Type {
	case BANG_EQUAL_TOKEN:
		return BooleanValue(!Equal(left, right)), nil
	case EQUAL_EQUAL_TOKEN:
		return BooleanValue(Equal(left, right)), nil
	case PLUS_TOKEN:
		if l, ok := left.(StringValue); ok {
			return l + right.(StringValue), nil
		}
	}

	l, r := left.(NumberValue), right.(NumberValue)
	switch e.Operator.Type {
	case PLUS_TOKEN:
		return l + r, nil
	case MINUS_TOKEN:
		return l - r, nil
	case SLASH_TOKEN:
		return l / r, nil
	case STAR_TOKEN:
		return l * r, nil
	case GREATER_TOKEN:
		return BooleanValue(l > r), nil
	case GREATER_EQUAL_TOKEN:
		return BooleanValue(l >= r), nil
	case LESS_TOKEN:
		return BooleanValue(l < r), nil
	case LESS_EQUAL_TOKEN:
		return BooleanValue(l <= r), nil
	}

	return nil, fmt.Errorf("unhandled operator %s", e.Operator.Type)
}

// Reports whether operator is defined for the operand pair.
func compatible(operator TokenType, left, right Value) bool {
	_, leftNumber := left.(NumberValue)
	_, rightNumber := right.(NumberValue)
	_, leftString := left.(StringValue)
	_, rightString := right.(StringValue)

	switch operator {
	case PLUS_TOKEN:
		return (leftNumber && rightNumber) || (leftString && rightString)
	case MINUS_TOKEN, SLASH_TOKEN, STAR_TOKEN,
		GREATER_TOKEN, GREATER_EQUAL_TOKEN, LESS_TOKEN, LESS_EQUAL_TOKEN:
		return leftNumber && rightNumber
	case BANG_EQUAL_TOKEN, EQUAL_EQUAL_TOKEN:
		return true
	default:
		return false
	}
}

func (i *interpreter) typeError(err *Error) error {
	i.log.Debug("type error",
		zap.Int("line", err.Line),
		zap.String("message", err.Message),
	)
	if i.stderr != nil {
		fmt.Fprintln(i.stderr, err.Error())
	}
	return err
}
