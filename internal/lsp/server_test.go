package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spock-lang/spock/internal/errs"
)

func TestNewServerDefaultsToNopLogger(t *testing.T) {
	server := NewServer(nil)
	assert.NotNil(t, server)
	assert.NotNil(t, server.logger)
	assert.True(t, server.capabilities.TextDocumentSync.OpenClose)
}

func TestNewServerUsesProvidedLogger(t *testing.T) {
	logger := zap.NewNop()
	server := NewServer(logger)
	assert.Same(t, logger, server.logger)
}

func TestToDiagnosticReportsScannerLocation(t *testing.T) {
	err := errs.NewUndefinedCharacter(2, 5, '@')
	d := toDiagnostic(err)
	assert.Equal(t, uint32(1), d.Range.Start.Line)
	assert.Equal(t, uint32(4), d.Range.Start.Character)
	assert.Equal(t, "spock", d.Source)
}

func TestToDiagnosticReportsValidationExpressionInMessage(t *testing.T) {
	err := errs.NewInfixArityError(1, 4, "∧", "right")
	d := toDiagnostic(err)
	assert.Contains(t, d.Message, "Expression 1")
}
