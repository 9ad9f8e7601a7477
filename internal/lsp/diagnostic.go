package lsp

import (
	"go.lsp.dev/protocol"

	"github.com/spock-lang/spock/internal/errs"
)

// toDiagnostic converts a SpockError into an LSP diagnostic. Scanner and
// grouping errors carry a physical Line; validation errors carry an
// ExprNum instead (§4.4) and have no physical line to point at, so they
// are reported against line 0 with the expression number folded into
// the message.
func toDiagnostic(e *errs.SpockError) protocol.Diagnostic {
	line := e.Line
	if line > 0 {
		line--
	}
	column := e.Column
	if column > 0 {
		column--
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(column)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(column + 1)},
		},
		Severity: protocol.DiagnosticSeverityError,
		Code:     e.Code,
		Source:   "spock",
		Message:  e.Error(),
	}
}
