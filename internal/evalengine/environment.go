package evalengine

import (
	"strings"

	"github.com/spock-lang/spock/internal/token"
)

// Environment is the request-scoped substitution binding map spanning an
// entire Analyze call (§9 Design Notes: "fold substitution into an
// environment consulted at operand-lookup time, producing the residual
// string only at render time"). This replaces
// babbage_eval.py's in-place RPN-list mutation, which cannot by itself
// explain cross-line substitution (each line's RPN list is evaluated in
// total isolation in the reference implementation).
type Environment struct {
	bindings map[string]binding
}

type binding struct {
	value       token.Value
	displayText string
}

// NewEnvironment returns an empty binding map, created once per Analyze
// call and threaded through every line's evaluation.
func NewEnvironment() *Environment {
	return &Environment{bindings: map[string]binding{}}
}

// Bind records that identifier name now resolves to val, mirroring
// babbage_eval.py's subst(): when val carries a concrete truth value the
// binding resolves by value; otherwise it resolves by display text, with
// exactly one layer of outer parentheses stripped (the rule that keeps
// `/`'s own rendering and its bound value consistent — see subst's
// observable behavior in the worked substitution example).
func (e *Environment) Bind(name string, val *Value) {
	e.bindings[name] = binding{
		value:       val.Truth,
		displayText: stripOneParenLayer(val.Lexeme),
	}
}

// Resolve returns the effective value for an identifier if a binding
// exists, and whether one was found.
func (e *Environment) Resolve(lexeme string) (token.Value, string, bool) {
	b, ok := e.bindings[lexeme]
	if !ok {
		return token.ValueUnknown, "", false
	}
	return b.value, b.displayText, true
}

// stripOneParenLayer removes exactly one layer of outer parentheses from
// s, if present and balanced across the whole string.
func stripOneParenLayer(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return s
			}
		}
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}
