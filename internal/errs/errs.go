// Package errs is the structured error carrier for every stage of the
// Spock pipeline (§7), modeled on the teacher's compiler/errors package:
// one carrier type, chainable WithX() builders, and per-category
// constructor files (scanner.go, parser.go, evaluator.go).
package errs

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage identifies which pipeline stage raised the error (§6: "a stage tag
// in {scanner, parser, evaluator, unknown}").
type Stage string

const (
	StageScanner   Stage = "scanner"
	StageParser    Stage = "parser"
	StageEvaluator Stage = "evaluator"
	StageUnknown   Stage = "unknown"
)

// Category is the error taxonomy from §7.
type Category string

const (
	CategoryFraming    Category = "framing"
	CategoryLexical    Category = "lexical"
	CategoryGrouping   Category = "grouping"
	CategoryShape      Category = "shape"
	CategoryEvaluation Category = "evaluation"
	CategoryRuntime    Category = "runtime"
)

// Severity mirrors the teacher's error-severity field; Spock's own taxonomy
// never produces warnings, but the field is carried for collaborator
// layers (e.g. the LSP) that may want to surface non-fatal diagnostics.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// exitCodes maps each category to the Exit_NN identifier from §6, grounded
// in original_source's PY_EXC_TO_EXIT table: syntax-shaped failures
// (framing, lexical, grouping, shape) are Exit_53; evaluator-stage
// failures are the runtime code Exit_49.
var exitCodes = map[Category]string{
	CategoryFraming:    "Exit_53",
	CategoryLexical:    "Exit_53",
	CategoryGrouping:   "Exit_53",
	CategoryShape:      "Exit_53",
	CategoryEvaluation: "Exit_49",
	CategoryRuntime:    "Exit_49",
}

// SpockError is the single structured error type returned by every stage.
type SpockError struct {
	Stage    Stage
	Category Category
	Severity Severity
	Code     string
	Message  string

	// Location. Scanner/grouping errors use Line/Column; validation
	// errors use ExprNum/Column (§4.4: "a 1-based expression number...
	// together with the offending token's column").
	Line    int
	Column  int
	ExprNum int

	// Token is the offending lexeme, when known.
	Token string

	// Suggestion is an optional human-readable hint, following the
	// teacher's CompilerError.Suggestion field.
	Suggestion string
}

func newError(stage Stage, category Category, message string) *SpockError {
	return &SpockError{
		Stage:    stage,
		Category: category,
		Severity: SeverityError,
		Code:     exitCodes[category],
		Message:  message,
	}
}

func (e *SpockError) Error() string {
	if e.ExprNum > 0 {
		return fmt.Sprintf("%s: %s (expression %d, column %d)", e.Stage, e.Message, e.ExprNum, e.Column)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d, column %d)", e.Stage, e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Message)
}

// ExitCode parses the numeric suffix of Code (e.g. "Exit_53" -> 53) for
// use as a process exit status. Falls back to 1 if Code is malformed.
func (e *SpockError) ExitCode() int {
	n, err := strconv.Atoi(strings.TrimPrefix(e.Code, "Exit_"))
	if err != nil {
		return 1
	}
	return n
}

// WithLocation sets Line/Column (scanner and grouping errors).
func (e *SpockError) WithLocation(line, column int) *SpockError {
	e.Line = line
	e.Column = column
	return e
}

// WithExpression sets ExprNum/Column (validation errors, §4.4).
func (e *SpockError) WithExpression(exprNum, column int) *SpockError {
	e.ExprNum = exprNum
	e.Column = column
	return e
}

// WithToken records the offending lexeme.
func (e *SpockError) WithToken(lexeme string) *SpockError {
	e.Token = lexeme
	return e
}

// WithSuggestion attaches a human-readable hint.
func (e *SpockError) WithSuggestion(suggestion string) *SpockError {
	e.Suggestion = suggestion
	return e
}

// WithSeverity overrides the default error severity.
func (e *SpockError) WithSeverity(s Severity) *SpockError {
	e.Severity = s
	return e
}
