package interpret

import (
	"fmt"
	"strings"
)

// Expr is an expression tree node. The set of node types is closed and
// each composite node owns its children.
type Expr interface {
	expr()
}

// Literal carries a value. A nil Value marks an absent literal, which is
// what Parse returns after a syntax error.
type Literal struct {
	Value Value
}

type Grouping struct {
	Expression Expr
}

type Unary struct {
	Operator Token
	Right    Expr
}

type Binary struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (*Literal) expr()  {}
func (*Grouping) expr() {}
func (*Unary) expr()    {}
func (*Binary) expr()   {}

// Print renders e fully parenthesized, e.g. "(+ 1.0 (group 2.0))".
func Print(e Expr) string {
	switch e := e.(type) {
	case *Literal:
		if e.Value == nil {
			return "null"
		}
		return e.Value.String()
	case *Grouping:
		return parenthesize("group", e.Expression)
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	default:
		panic(fmt.Sprintf("unexpected expression %T", e))
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Print(e))
	}
	b.WriteString(")")
	return b.String()
}
