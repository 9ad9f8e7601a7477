package errs

import "fmt"

// NewFramingError reports a violation of the "N.  " physical-line framing
// protocol (§4.2 algorithm step 3, §7 "framing errors").
func NewFramingError(line int, message string) *SpockError {
	return newError(StageScanner, CategoryFraming, message).WithLocation(line, 1)
}

// NewMissingLineNumber reports a physical line that doesn't begin with a
// decimal line number.
func NewMissingLineNumber(line, column int) *SpockError {
	return newError(StageScanner, CategoryFraming,
		"physical line does not begin with a line number").WithLocation(line, column)
}

// NewMissingPeriod reports a line number not immediately followed by `.`.
func NewMissingPeriod(line, column int) *SpockError {
	return newError(StageScanner, CategoryFraming,
		"line number must be followed immediately by '.'").WithLocation(line, column)
}

// NewInsufficientSpacing reports fewer than two spaces after the framing
// period.
func NewInsufficientSpacing(line, column int) *SpockError {
	return newError(StageScanner, CategoryFraming,
		"there must be at least two spaces after each line number").WithLocation(line, column)
}

// NewMissingSentinel reports a source that never reaches the `$$` sentinel.
func NewMissingSentinel() *SpockError {
	return newError(StageScanner, CategoryFraming, "input is missing the '$$' terminator")
}

// NewUndefinedCharacter reports a character with no lexicon entry and no
// detector match.
func NewUndefinedCharacter(line, column int, r rune) *SpockError {
	return newError(StageScanner, CategoryLexical,
		fmt.Sprintf("undefined character %q", r)).WithLocation(line, column).WithToken(string(r))
}

// NewUnbalancedComment reports a `/*` with no matching `*/` before EOF.
func NewUnbalancedComment(line, column int) *SpockError {
	return newError(StageScanner, CategoryLexical,
		"unterminated block comment").WithLocation(line, column)
}
