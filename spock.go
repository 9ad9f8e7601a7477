// Package spock implements the three-stage Spock pipeline entry point
// (spec.md §6): Scan → Parse (grouping, validation, RPN planning) →
// Evaluate, wired as a single pure `Analyze` function with no I/O, no
// configuration, and no state carried across calls (spec.md §5).
//
// Grounded in original_source/bertrand/language_services/Chomsky.py's
// chomsky() hub function for stage sequencing and per-stage error
// wrapping, renamed away from its source naming theme.
package spock

import (
	"github.com/spock-lang/spock/internal/errs"
	"github.com/spock-lang/spock/internal/evalengine"
	"github.com/spock-lang/spock/internal/parser"
	"github.com/spock-lang/spock/internal/scanner"
)

// Analyze runs the full pipeline over source and returns the rendered
// result string, or a structured error pinned to the stage and location
// that failed (spec.md §6). The caller is responsible for UTF-8
// sanitizing source and appending the `$$` terminator before calling
// Analyze; Scan itself only normalizes line endings (§6's collaborator
// contract).
func Analyze(source string) (string, *errs.SpockError) {
	tokens, serr := scanner.Scan(source)
	if serr != nil {
		return "", serr
	}

	program, perr := parser.Parse(tokens)
	if perr != nil {
		return "", perr
	}

	if verr := parser.Validate(program); verr != nil {
		return "", verr
	}

	lines := parser.PlanRPN(program)

	result, eerr := evaluate(lines)
	if eerr != nil {
		return "", eerr
	}
	return result, nil
}

// evaluate wraps evalengine.Evaluate, converting any unexpected panic
// inside the evaluator into a runtime error tagged to the evaluator stage
// (spec.md §7: "The evaluator wraps any unexpected language-level
// exception into a runtime error tagged with the evaluator stage").
func evaluate(lines []parser.LineRPN) (result string, err *errs.SpockError) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = errs.NewRuntimeError(panicMessage(r))
		}
	}()
	return evalengine.Evaluate(lines)
}

// AnalyzeStream runs the same Scan/Parse/Validate/Plan pipeline as Analyze,
// but evaluates incrementally: emit is called once per source line with
// that line's own rendered result as soon as it reduces, rather than
// waiting for the whole program to finish. A non-nil return from emit
// (e.g. a failed websocket write) aborts evaluation and is propagated as
// the returned error, tagged to the evaluator stage.
func AnalyzeStream(source string, emit func(string) *errs.SpockError) *errs.SpockError {
	tokens, serr := scanner.Scan(source)
	if serr != nil {
		return serr
	}

	program, perr := parser.Parse(tokens)
	if perr != nil {
		return perr
	}

	if verr := parser.Validate(program); verr != nil {
		return verr
	}

	lines := parser.PlanRPN(program)

	return evaluateStream(lines, emit)
}

// evaluateStream mirrors evaluate's panic-recovery wrapper for the
// incremental EvaluateStream path.
func evaluateStream(lines []parser.LineRPN, emit func(string) *errs.SpockError) (err *errs.SpockError) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.NewRuntimeError(panicMessage(r))
		}
	}()
	return evalengine.EvaluateStream(lines, emit)
}

func panicMessage(r interface{}) string {
	if e, ok := r.(error); ok {
		return e.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unexpected evaluator panic"
}
