package spock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spock-lang/spock"
)

// The end-to-end scenarios from spec.md §8.

func TestAnalyzeConjunctionOfLiterals(t *testing.T) {
	out, err := spock.Analyze("1.  True ∧ False .$$")
	require.Nil(t, err)
	assert.Equal(t, "False\n", out)
}

func TestAnalyzeExcludedMiddleResidual(t *testing.T) {
	out, err := spock.Analyze("1.  p ∨ ¬p .$$")
	require.Nil(t, err)
	assert.Equal(t, "(p ∨ (¬p))\n", out)
}

func TestAnalyzePureResidualImplication(t *testing.T) {
	out, err := spock.Analyze("1.  p → (q → p) .$$")
	require.Nil(t, err)
	assert.Equal(t, "(p → (q → p))\n", out)
}

func TestAnalyzeSetLiteral(t *testing.T) {
	out, err := spock.Analyze("1.  {a, b, c} .$$")
	require.Nil(t, err)
	assert.Equal(t, "{a, b, c}\n", out)
}

func TestAnalyzeSubstitutionAppliesToLaterLine(t *testing.T) {
	out, err := spock.Analyze("1.  /p ≡ (q ∧ r) .\n2.  p ∨ s .$$")
	require.Nil(t, err)
	assert.Equal(t, "(q ∧ r / p)\n(q ∧ r ∨ s)\n", out)
}

func TestAnalyzeInfixArityErrorReportsExpressionNumber(t *testing.T) {
	_, err := spock.Analyze("1.  p ∧ .$$")
	require.NotNil(t, err)
	assert.Equal(t, "parser", string(err.Stage))
	assert.Contains(t, err.Message, "Expression 1")
	assert.Contains(t, err.Message, "infix operator '∧' is missing an operand on its right side")
}

func TestAnalyzeEmptySetDegeneratesToFalse(t *testing.T) {
	out, err := spock.Analyze("1.  {} .$$")
	require.Nil(t, err)
	assert.Equal(t, "False\n", out)
}

func TestAnalyzeBareTrueLiteral(t *testing.T) {
	out, err := spock.Analyze("1.  True .$$")
	require.Nil(t, err)
	assert.Equal(t, "True\n", out)
}

func TestAnalyzeFramingViolationFailsBeforeEvaluation(t *testing.T) {
	_, err := spock.Analyze("1.  True .\n2. False .$$")
	require.NotNil(t, err)
	assert.Equal(t, "scanner", string(err.Stage))
	assert.Equal(t, "framing", string(err.Category))
}

func TestAnalyzeMissingSentinelIsRejected(t *testing.T) {
	_, err := spock.Analyze("1.  True .")
	require.NotNil(t, err)
	assert.Equal(t, "scanner", string(err.Stage))
}

func TestAnalyzeUnmatchedParenReportsGroupingError(t *testing.T) {
	_, err := spock.Analyze("1.  (p ∧ q .$$")
	require.NotNil(t, err)
	assert.Equal(t, "parser", string(err.Stage))
	assert.Equal(t, "grouping", string(err.Category))
}

func TestAnalyzeUndefinedCharacterIsLexicalError(t *testing.T) {
	_, err := spock.Analyze("1.  p @ q .$$")
	require.NotNil(t, err)
	assert.Equal(t, "scanner", string(err.Stage))
	assert.Equal(t, "lexical", string(err.Category))
}

func TestAnalyzeMembershipAlwaysResiduates(t *testing.T) {
	out, err := spock.Analyze("1.  a ∈ {a, b} .$$")
	require.Nil(t, err)
	assert.Equal(t, "(a ∈ {a, b})\n", out)
}

func TestAnalyzeMultipleExpressionsJoinedByNewline(t *testing.T) {
	out, err := spock.Analyze("1.  True ∧ True .\n2.  False ∨ False .$$")
	require.Nil(t, err)
	assert.Equal(t, "True\nFalse\n", out)
}
