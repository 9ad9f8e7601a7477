package errs

import "fmt"

// NewUnmatchedCloser reports a `)` or `}` with no corresponding opener.
func NewUnmatchedCloser(line, column int, lexeme string) *SpockError {
	return newError(StageParser, CategoryGrouping,
		fmt.Sprintf("unmatched closing delimiter %q", lexeme)).WithLocation(line, column).WithToken(lexeme)
}

// NewUnmatchedOpener reports a `(` or `{` still open when the token stream
// reaches the `$$` sentinel.
func NewUnmatchedOpener(line, column int, lexeme string) *SpockError {
	return newError(StageParser, CategoryGrouping,
		fmt.Sprintf("unmatched opening delimiter %q", lexeme)).WithLocation(line, column).WithToken(lexeme)
}

// NewStatementInExpression reports a `statement`-kind token found inside a
// parenthesized or set-literal group.
func NewStatementInExpression(line, column int, lexeme string) *SpockError {
	return newError(StageParser, CategoryGrouping,
		fmt.Sprintf("statement token %q is not allowed inside an expression", lexeme)).
		WithLocation(line, column).WithToken(lexeme)
}

// NewPrematureTermination reports a `.` reached while a `(` or `{` group
// is still open.
func NewPrematureTermination(line, column int) *SpockError {
	return newError(StageParser, CategoryGrouping,
		"premature termination by period").WithLocation(line, column)
}

// NewMissingTerminalPeriod reports a final statement that never reaches a
// terminating `.` before `$$`.
func NewMissingTerminalPeriod(line, column int) *SpockError {
	return newError(StageParser, CategoryGrouping,
		"terminal period missing from end of last statement").WithLocation(line, column)
}

// NewInfixArityError reports an infix operator missing an operand on one
// side (§4.4, §8 scenario 6).
func NewInfixArityError(exprNum, column int, lexeme, side string) *SpockError {
	return newError(StageParser, CategoryShape,
		fmt.Sprintf("Expression %d: infix operator '%s' is missing an operand on its %s side",
			exprNum, lexeme, side)).WithExpression(exprNum, column).WithToken(lexeme)
}

// NewAdjacentOperandsError reports two operand nodes with no intervening
// infix operator.
func NewAdjacentOperandsError(exprNum, column int) *SpockError {
	return newError(StageParser, CategoryShape,
		fmt.Sprintf("Expression %d: two operands appear with no operator between them", exprNum)).
		WithExpression(exprNum, column)
}

// NewSubstitutionShapeError reports a malformed `/x ≡ ...` / `/x ↔ ...`
// pattern.
func NewSubstitutionShapeError(exprNum, column int) *SpockError {
	return newError(StageParser, CategoryShape,
		fmt.Sprintf("Expression %d: '/' must be followed by an identifier (or a parenthesized single "+
			"identifier) and then '≡' or '↔'", exprNum)).WithExpression(exprNum, column)
}

// NewUnrecognizedOperatorError reports an operator lexeme absent from both
// the precedence table and the unary-prefix set.
func NewUnrecognizedOperatorError(exprNum, column int, lexeme string) *SpockError {
	return newError(StageParser, CategoryShape,
		fmt.Sprintf("Expression %d: operator '%s' has no known precedence or associativity", exprNum, lexeme)).
		WithExpression(exprNum, column).WithToken(lexeme)
}
