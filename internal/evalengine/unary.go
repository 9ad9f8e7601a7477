package evalengine

import "fmt"

// evalUnary ports Knuth._eval_unary. Quantifier adornments (∃/∀) are left
// as a stub per spec's own explicit instruction (§9 Open Questions): no
// variable binding or scope is implemented, so a quantified operand always
// wraps into a residual exactly like any other unary operator, passing
// through a's own truth value when it is already known.
func evalUnary(op string, a *Value) *Value {
	switch op {
	case "¬", "!":
		if unk(a) {
			return NewResidual(fmt.Sprintf("(¬%s)", a.Lexeme))
		}
		return NewBool(!isTrue(a))

	case "∃", "¬∃", "!∃":
		negated := op == "¬∃" || op == "!∃"
		symbol := "∃"
		if negated {
			symbol = "¬∃"
		}
		if unk(a) {
			return NewResidual(fmt.Sprintf("(%s%s)", symbol, a.Lexeme))
		}
		if negated {
			return NewBool(!isTrue(a))
		}
		return NewBool(isTrue(a))

	case "∀", "¬∀", "!∀":
		negated := op == "¬∀" || op == "!∀"
		symbol := "∀"
		if negated {
			symbol = "¬∀"
		}
		if unk(a) {
			return NewResidual(fmt.Sprintf("(%s%s)", symbol, a.Lexeme))
		}
		if negated {
			return NewBool(!isTrue(a))
		}
		return NewBool(isTrue(a))

	default:
		return nil
	}
}
