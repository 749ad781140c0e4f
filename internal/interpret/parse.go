package interpret

import "github.com/ian-shakespeare/golox/pkg/array"

// Tokens that begin a statement; synchronization stops in front of them.
var statementStarts = []TokenType{
	CLASS_TOKEN,
	FUN_TOKEN,
	VAR_TOKEN,
	FOR_TOKEN,
	IF_TOKEN,
	WHILE_TOKEN,
	PRINT_TOKEN,
	RETURN_TOKEN,
}

type parser struct {
	tokens   []Token
	current  int
	reporter *Reporter
}

// NewParser parses tokens, which must end with an EOF token as produced
// by the scanner.
func NewParser(tokens []Token, reporter *Reporter) *parser {
	if reporter == nil {
		reporter = NewReporter(nil, nil)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF_TOKEN {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], NewToken(EOF_TOKEN, "", nil, line))
	}
	return &parser{
		tokens:   tokens,
		reporter: reporter,
	}
}

// Parse returns the expression tree. On a syntax error the error is
// recorded in the reporter and an absent literal is returned.
func (p *parser) Parse() Expr {
	expr, err := p.expression()
	if err != nil {
		return &Literal{}
	}
	return expr
}

func (p *parser) HadError() bool {
	return p.reporter.HadError()
}

func (p *parser) expression() (Expr, error) {
	return p.equality()
}

func (p *parser) equality() (Expr, error) {
	return p.binary(p.comparison, BANG_EQUAL_TOKEN, EQUAL_EQUAL_TOKEN)
}

func (p *parser) comparison() (Expr, error) {
	return p.binary(p.term, GREATER_TOKEN, GREATER_EQUAL_TOKEN, LESS_TOKEN, LESS_EQUAL_TOKEN)
}

func (p *parser) term() (Expr, error) {
	return p.binary(p.factor, MINUS_TOKEN, PLUS_TOKEN)
}

func (p *parser) factor() (Expr, error) {
	return p.binary(p.unary, SLASH_TOKEN, STAR_TOKEN)
}

// Folds operand (op operand)* into left-associative Binary nodes.
func (p *parser) binary(operand func() (Expr, error), operators ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	if p.match(BANG_TOKEN, MINUS_TOKEN) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	switch {
	case p.match(FALSE_TOKEN):
		return &Literal{Value: BooleanValue(false)}, nil
	case p.match(TRUE_TOKEN):
		return &Literal{Value: BooleanValue(true)}, nil
	case p.match(NIL_TOKEN):
		return &Literal{Value: NilValue{}}, nil
	case p.match(NUMBER_TOKEN, STRING_TOKEN):
		return &Literal{Value: p.previous().Literal}, nil
	case p.match(LEFT_PAREN_TOKEN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(RIGHT_PAREN_TOKEN, "Expect ')' after expression."); err != nil {
			p.synchronize()
			return nil, err
		}
		return &Grouping{Expression: expr}, nil
	}

	return nil, p.error(p.peek(), "Expect expression.")
}

func (p *parser) consume(t TokenType, message string) error {
	if p.check(t) {
		p.advance()
		return nil
	}
	return p.error(p.peek(), message)
}

func (p *parser) error(token Token, message string) error {
	err := NewSyntaxErrorf(token, "%s", message)
	p.reporter.Report(err)
	return err
}

// Discards tokens until the start of the next statement.
func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == SEMICOLON_TOKEN {
			return
		}
		if array.Contains(statementStarts, p.peek().Type) {
			return
		}
		p.advance()
	}
}

func (p *parser) match(types ...TokenType) bool {
	if p.isAtEnd() || !array.Contains(types, p.peek().Type) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) check(t TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF_TOKEN
}

func (p *parser) peek() Token {
	return p.tokens[p.current]
}

func (p *parser) previous() Token {
	return p.tokens[p.current-1]
}
