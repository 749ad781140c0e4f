package interpret

// ParseRemaining parses tokens and also returns the token the parser
// stopped at.
func ParseRemaining(tokens []Token, reporter *Reporter) (Expr, Token) {
	p := NewParser(tokens, reporter)
	expr := p.Parse()
	return expr, p.peek()
}
