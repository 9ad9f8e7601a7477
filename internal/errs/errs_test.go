package errs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spock-lang/spock/internal/errs"
)

func TestExitCodeParsesNumericSuffix(t *testing.T) {
	err := errs.NewFramingError(2, "line 2 is missing its numbering prefix")
	assert.Equal(t, 53, err.ExitCode())
}

func TestExitCodeFallsBackToOneOnMalformedCode(t *testing.T) {
	err := &errs.SpockError{Code: "not-a-code"}
	assert.Equal(t, 1, err.ExitCode())
}

func TestErrorStringIncludesExpressionNumber(t *testing.T) {
	err := errs.NewInfixArityError(3, 7, "∧", "right")
	assert.Contains(t, err.Error(), "expression 3")
	assert.Contains(t, err.Error(), "column 7")
}

func TestErrorStringIncludesLineWhenNoExpression(t *testing.T) {
	err := errs.NewUndefinedCharacter(4, 9, '@')
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), "column 9")
}
