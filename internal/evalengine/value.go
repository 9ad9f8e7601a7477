// Package evalengine implements the Spock evaluator (§4.6): a three-valued
// stack machine over per-line reverse-Polish token sequences, with an
// "operator jail" (a list of parked operators) absorbing arity underflow between
// intermixed unary and binary operators.
//
// Grounded line-by-line on
// original_source/bertrand/analytical_engine/babbage_eval.py's Knuth
// class.
package evalengine

import (
	"strings"

	"github.com/spock-lang/spock/internal/token"
)

// Value is one reduced stack entry: a definite truth value, or a residual
// display string (possibly carrying a structured set for top-level
// set-literal results).
type Value struct {
	Truth  token.Value
	Lexeme string
	Set    *token.SetNode
}

// NewBool returns a definite True/False value.
func NewBool(b bool) *Value {
	if b {
		return &Value{Truth: token.ValueTrue, Lexeme: "True"}
	}
	return &Value{Truth: token.ValueFalse, Lexeme: "False"}
}

// NewResidual returns an unresolved symbolic value carrying display text.
func NewResidual(text string) *Value {
	return &Value{Truth: token.ValueUnknown, Lexeme: text}
}

// valueFromToken lifts a scanned/grouped operand token into a stack Value,
// consulting env for a substitution binding when the token is an
// identifier (§9 Design Notes: operand-lookup-time substitution).
func valueFromToken(tok *token.Token, env *Environment) *Value {
	switch tok.Kind {
	case token.KindIdentifier:
		if truth, text, ok := env.Resolve(tok.Lexeme); ok {
			if truth != token.ValueUnknown {
				return &Value{Truth: truth, Lexeme: truth.String()}
			}
			return &Value{Truth: token.ValueUnknown, Lexeme: text}
		}
		return &Value{Truth: token.ValueUnknown, Lexeme: tok.Lexeme}
	case token.KindBoolean:
		return &Value{Truth: token.BoolValueOf(tok.Lexeme), Lexeme: tok.Lexeme}
	case token.KindSet:
		return &Value{Truth: token.ValueUnknown, Lexeme: renderSet(tok.Set), Set: tok.Set}
	default:
		return &Value{Truth: token.ValueUnknown, Lexeme: tok.Lexeme}
	}
}

// renderSet formats a set literal's display mapping recursively (§4.6:
// "sets print as their values only").
func renderSet(s *token.SetNode) string {
	if s.Empty() {
		return "{}"
	}
	parts := make([]string, len(s.Elements))
	for i, el := range s.Elements {
		if el.IsScalar {
			parts[i] = el.Scalar
		} else {
			parts[i] = renderSet(el.Nested)
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
