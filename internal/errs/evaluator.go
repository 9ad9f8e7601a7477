package errs

import "fmt"

// NewUnknownOperatorError reports an operator lexeme reaching reduction
// time with no evaluator handler.
func NewUnknownOperatorError(lexeme string) *SpockError {
	return newError(StageEvaluator, CategoryEvaluation,
		fmt.Sprintf("no evaluation rule for operator %q", lexeme)).WithToken(lexeme)
}

// NewStackCorruptionError reports an RPN sequence whose arity underflow
// could not be resolved even after parking the offending operator in the
// jail (§7: "malformed RPN producing an arity-underflow that cannot be
// resolved via the jail").
func NewStackCorruptionError(line int) *SpockError {
	return newError(StageEvaluator, CategoryRuntime,
		"evaluation stack corrupted: RPN sequence left no result").WithLocation(line, 0)
}

// NewRuntimeError wraps an unexpected internal failure, tagged to the
// evaluator stage (§7: "wraps any unexpected language-level exception into
// a runtime error").
func NewRuntimeError(message string) *SpockError {
	return newError(StageEvaluator, CategoryRuntime, message)
}
