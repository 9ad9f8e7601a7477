package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spock-lang/spock/internal/scanner"
	"github.com/spock-lang/spock/internal/token"
)

func lexemes(toks []*token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Lexeme
	}
	return out
}

func TestScanBasicExpression(t *testing.T) {
	toks, err := scanner.Scan("1.  True ∧ False .$$")
	require.Nil(t, err)
	require.Equal(t, []string{"True", "∧", "False", ".", "$$"}, lexemes(toks))
	assert.Equal(t, token.KindBoolean, toks[0].Kind)
	assert.Equal(t, token.KindOperator, toks[1].Kind)
	assert.Equal(t, token.KindBoolean, toks[2].Kind)
	assert.Equal(t, token.KindDelimiter, toks[3].Kind)
	assert.Equal(t, token.KindDelimiter, toks[4].Kind)
}

func TestScanMissingPeriodIsFramingError(t *testing.T) {
	_, err := scanner.Scan("1  True .$$")
	require.NotNil(t, err)
	assert.Equal(t, "scanner", string(err.Stage))
	assert.Equal(t, "framing", string(err.Category))
}

func TestScanInsufficientSpacingIsFramingError(t *testing.T) {
	_, err := scanner.Scan("1. True .$$")
	require.NotNil(t, err)
	assert.Equal(t, "framing", string(err.Category))
}

func TestScanMissingSentinelFails(t *testing.T) {
	_, err := scanner.Scan("1.  True .")
	require.NotNil(t, err)
	assert.Equal(t, "scanner", string(err.Stage))
}

func TestScanDoubleNegationCollapsesToNothing(t *testing.T) {
	plain, err := scanner.Scan("1.  p .$$")
	require.Nil(t, err)
	negated, err := scanner.Scan("1.  ¬¬p .$$")
	require.Nil(t, err)
	assert.Equal(t, lexemes(plain), lexemes(negated))
}

func TestScanNegatedBooleanLiteral(t *testing.T) {
	toks, err := scanner.Scan("1.  ¬T .$$")
	require.Nil(t, err)
	require.Equal(t, []string{"F", ".", "$$"}, lexemes(toks))
	assert.Equal(t, token.KindBoolean, toks[0].Kind)
}

func TestScanNegatedBinaryOperators(t *testing.T) {
	cases := map[string]string{
		"¬∧": "↑",
		"¬∨": "↓",
		"¬⨁": "≡",
		"¬≡": "⨁",
		"¬↓": "∨",
		"¬↑": "∧",
	}
	for src, want := range cases {
		toks, err := scanner.Scan("1.  a " + src + " b .$$")
		require.Nil(t, err, src)
		require.Equal(t, []string{"a", want, "b", ".", "$$"}, lexemes(toks), src)
	}
}

func TestScanDigitPromotion(t *testing.T) {
	toks, err := scanner.Scan("1.  0 ∨ 1 .$$")
	require.Nil(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, token.KindBoolean, toks[0].Kind)
	assert.Equal(t, "0", toks[0].Lexeme)
	assert.Equal(t, token.KindBoolean, toks[2].Kind)
	assert.Equal(t, "1", toks[2].Lexeme)
}

func TestScanMultiDigitNumberIsNotBoolean(t *testing.T) {
	toks, err := scanner.Scan("1.  42 .$$")
	require.Nil(t, err)
	assert.Equal(t, token.KindNumber, toks[0].Kind)
	assert.Equal(t, "42", toks[0].Lexeme)
}

func TestScanStripsBlockComments(t *testing.T) {
	toks, err := scanner.Scan("1.  a /* this\nspans lines */ ∧ b .$$")
	require.Nil(t, err)
	require.Equal(t, []string{"a", "∧", "b", ".", "$$"}, lexemes(toks))
}

func TestScanUnterminatedCommentFails(t *testing.T) {
	_, err := scanner.Scan("1.  a /* never closed")
	require.NotNil(t, err)
	assert.Equal(t, "lexical", string(err.Category))
}

func TestScanSemicolonBumpsLogicalLine(t *testing.T) {
	toks, err := scanner.Scan("1.  a ; b .$$")
	require.Nil(t, err)
	require.Equal(t, []string{"a", ";", "b", ".", "$$"}, lexemes(toks))
	assert.Less(t, toks[0].Line, toks[2].Line)
}

func TestScanSetLiteralKeepsCommasAsTokens(t *testing.T) {
	toks, err := scanner.Scan("1.  {a, b, c} .$$")
	require.Nil(t, err)
	require.Equal(t, []string{"{", "a", ",", "b", ",", "c", "}", ".", "$$"}, lexemes(toks))
}

func TestScanReservedIdentifiers(t *testing.T) {
	toks, err := scanner.Scan("1.  φ ∧ ψ .$$")
	require.Nil(t, err)
	assert.Equal(t, token.KindIdentifier, toks[0].Kind)
	assert.Equal(t, token.KindIdentifier, toks[2].Kind)
}

func TestScanUndefinedCharacter(t *testing.T) {
	_, err := scanner.Scan("1.  @ .$$")
	require.NotNil(t, err)
	assert.Equal(t, "lexical", string(err.Category))
}
