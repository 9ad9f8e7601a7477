package evalengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spock-lang/spock/internal/evalengine"
	"github.com/spock-lang/spock/internal/parser"
	"github.com/spock-lang/spock/internal/scanner"
)

func planLines(t *testing.T, src string) []parser.LineRPN {
	t.Helper()
	toks, err := scanner.Scan(src)
	require.Nil(t, err)
	program, perr := parser.Parse(toks)
	require.Nil(t, perr)
	require.Nil(t, parser.Validate(program))
	return parser.PlanRPN(program)
}

func TestEvaluateDefiniteConjunction(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  True ∧ False .$$"))
	require.Nil(t, err)
	assert.Equal(t, "False\n", out)
}

func TestEvaluateShortCircuitFalseAndResidual(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  False ∧ p .$$"))
	require.Nil(t, err)
	assert.Equal(t, "False\n", out)
}

func TestEvaluateShortCircuitTrueOrResidual(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  True ∨ p .$$"))
	require.Nil(t, err)
	assert.Equal(t, "True\n", out)
}

func TestEvaluateImplicationFalseAntecedentIsTrue(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  False → p .$$"))
	require.Nil(t, err)
	assert.Equal(t, "True\n", out)
}

func TestEvaluateImplicationTrueConsequentIsTrue(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  p → True .$$"))
	require.Nil(t, err)
	assert.Equal(t, "True\n", out)
}

func TestEvaluateBiconditionalRequiresBothDefinite(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  p ↔ q .$$"))
	require.Nil(t, err)
	assert.Equal(t, "(p ↔ q)\n", out)
}

func TestEvaluateNegationOfDefiniteBoolean(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  ¬True .$$"))
	require.Nil(t, err)
	assert.Equal(t, "False\n", out)
}

func TestEvaluateNegationResidual(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  ¬p .$$"))
	require.Nil(t, err)
	assert.Equal(t, "(¬p)\n", out)
}

func TestEvaluateQuantifierWrapsResidually(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  ∃p .$$"))
	require.Nil(t, err)
	assert.Equal(t, "(∃p)\n", out)
}

func TestEvaluateNandAndNorDefinite(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  True ↑ True .$$"))
	require.Nil(t, err)
	assert.Equal(t, "False\n", out)

	out, err = evalengine.Evaluate(planLines(t, "1.  False ↓ False .$$"))
	require.Nil(t, err)
	assert.Equal(t, "True\n", out)
}

func TestEvaluateExclusiveOrRequiresBothDefinite(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  p ⨁ q .$$"))
	require.Nil(t, err)
	assert.Equal(t, "(p ⨁ q)\n", out)

	out, err = evalengine.Evaluate(planLines(t, "1.  True ⨁ False .$$"))
	require.Nil(t, err)
	assert.Equal(t, "True\n", out)
}

func TestEvaluateSetLiteralRendersValuesOnly(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  {a, b, {c, d}} .$$"))
	require.Nil(t, err)
	assert.Equal(t, "{a, b, {c, d}}\n", out)
}

func TestEvaluateSubstitutionBindsForwardOnly(t *testing.T) {
	out, err := evalengine.Evaluate(planLines(t, "1.  /p ≡ (q ∧ r) .\n2.  p ∨ s .$$"))
	require.Nil(t, err)
	assert.Equal(t, "(q ∧ r / p)\n(q ∧ r ∨ s)\n", out)
}

func TestEvaluateIdempotentAcrossRepeatedCalls(t *testing.T) {
	lines := planLines(t, "1.  p ∧ q .$$")
	first, err := evalengine.Evaluate(lines)
	require.Nil(t, err)
	second, err := evalengine.Evaluate(lines)
	require.Nil(t, err)
	assert.Equal(t, first, second)
}
