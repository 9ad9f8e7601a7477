package evalengine

import (
	"strings"

	"github.com/spock-lang/spock/internal/errs"
	"github.com/spock-lang/spock/internal/parser"
	"github.com/spock-lang/spock/internal/token"
)

// Evaluate reduces every line's RPN sequence in order, threading one
// Environment across all of them, and renders the results (§4.6, §6).
func Evaluate(lines []parser.LineRPN) (string, *errs.SpockError) {
	env := NewEnvironment()
	var results []*Value

	for _, line := range lines {
		val, err := evalLine(line, env)
		if err != nil {
			return "", err
		}
		results = append(results, val)
	}

	return render(results), nil
}

// EvaluateStream is Evaluate's incremental twin: it threads the same single
// Environment across lines for forward substitution, but hands each line's
// rendered result to emit as soon as that line reduces, instead of
// collecting every result before returning. Collaborator transports (the
// /v1/stream websocket) use this to push results to the client as the
// engine produces them rather than buffering a whole program's output.
func EvaluateStream(lines []parser.LineRPN, emit func(string) *errs.SpockError) *errs.SpockError {
	env := NewEnvironment()

	for _, line := range lines {
		val, err := evalLine(line, env)
		if err != nil {
			return err
		}
		if emitErr := emit(render([]*Value{val})); emitErr != nil {
			return emitErr
		}
	}

	return nil
}

// evalLine runs one line's RPN sequence through the operand stack plus
// the "operator jail" (a list of parked operators), ported from
// Knuth.eval_rpn. The jail
// absorbs arity underflow when a unary operator's operand hasn't been
// pushed yet, or when a binary operator is encountered before both of its
// operands are available (letting a later operator "cut in line" and be
// evaluated first, exactly as in the reference stack machine).
func evalLine(line parser.LineRPN, env *Environment) (*Value, *errs.SpockError) {
	var stack []*Value
	var jail []*token.Token

	for _, raw := range line.Tokens {
		tok := raw
		handledAsOperand := tok.Kind != token.KindOperator

		if handledAsOperand {
			stack = append(stack, valueFromToken(tok, env))
			if len(jail) > 0 && token.IsUnaryPrefix(jail[len(jail)-1].Lexeme) {
				tok = jail[len(jail)-1]
				jail = jail[:len(jail)-1]
			} else if len(stack) < 2 {
				continue
			}
		}

		// Intentionally a second, independent `if` (not `else`): a unary
		// operator just popped out of jail above falls straight through
		// into operator handling within the same token's iteration.
		if tok.Kind == token.KindOperator {
			if len(jail) > 0 {
				jail = append([]*token.Token{tok}, jail...)
				tok = jail[len(jail)-1]
				jail = jail[:len(jail)-1]
			}

			op := tok.Lexeme
			arity := 2
			if token.IsUnaryPrefix(op) {
				arity = 1
			}

			if len(stack) < arity {
				jail = append([]*token.Token{tok}, jail...)
				continue
			}

			var res *Value
			if arity == 1 {
				a := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				res = evalUnary(op, a)
			} else {
				b := stack[len(stack)-1]
				a := stack[len(stack)-1:]
				_ = a
				stack = stack[:len(stack)-1]
				a2 := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				res = evalBinary(op, a2, b, env)
			}
			if res == nil {
				return nil, errs.NewUnknownOperatorError(op)
			}
			stack = append(stack, res)
			continue
		}
	}

	if len(stack) == 0 {
		return nil, errs.NewStackCorruptionError(line.Line)
	}
	return stack[len(stack)-1], nil
}

// render formats the final per-line values (§4.6: booleans print as
// True/False, everything else prints its residual or set display text).
func render(results []*Value) string {
	var b strings.Builder
	for _, v := range results {
		if v == nil {
			continue
		}
		switch v.Truth {
		case token.ValueTrue:
			b.WriteString("True")
		case token.ValueFalse:
			b.WriteString("False")
		default:
			b.WriteString(v.Lexeme)
		}
		b.WriteString("\n")
	}
	return b.String()
}
