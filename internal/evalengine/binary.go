package evalengine

import (
	"fmt"

	"github.com/spock-lang/spock/internal/token"
)

func unk(v *Value) bool { return v.Truth == token.ValueUnknown }
func isTrue(v *Value) bool  { return v.Truth == token.ValueTrue }
func isFalse(v *Value) bool { return v.Truth == token.ValueFalse }

// and_ ports Knuth.and_.
func and_(a, b *Value) *Value {
	if (unk(a) && (unk(b) || isTrue(b))) || (unk(b) && (unk(a) || isTrue(a))) {
		return NewResidual(fmt.Sprintf("(%s ∧ %s)", a.Lexeme, b.Lexeme))
	}
	if isFalse(a) || isFalse(b) {
		return NewBool(false)
	}
	return NewBool(isTrue(a) && isTrue(b))
}

// incOr ports Knuth.inc_or.
func incOr(a, b *Value) *Value {
	if (unk(a) && (unk(b) || isFalse(b))) || (unk(b) && (unk(a) || isFalse(a))) {
		return NewResidual(fmt.Sprintf("(%s ∨ %s)", a.Lexeme, b.Lexeme))
	}
	if isTrue(a) || isTrue(b) {
		return NewBool(true)
	}
	return NewBool(isTrue(a) || isTrue(b))
}

// nand ports Knuth.nand.
func nand(a, b *Value) *Value {
	if (unk(a) && (unk(b) || isTrue(b))) || (unk(b) && (unk(a) || isTrue(a))) {
		return NewResidual(fmt.Sprintf("(%s ↑ %s)", a.Lexeme, b.Lexeme))
	}
	if isFalse(a) || isFalse(b) {
		return NewBool(true)
	}
	return NewBool(!(isTrue(a) && isTrue(b)))
}

// nor ports Knuth.nor.
func nor(a, b *Value) *Value {
	if (unk(a) && (unk(b) || isFalse(b))) || (unk(b) && (unk(a) || isFalse(a))) {
		return NewResidual(fmt.Sprintf("(%s ↓ %s)", a.Lexeme, b.Lexeme))
	}
	if isTrue(a) || isTrue(b) {
		return NewBool(false)
	}
	return NewBool(!(isTrue(a) || isTrue(b)))
}

// excOr ports Knuth.exc_or.
func excOr(a, b *Value) *Value {
	if unk(a) || unk(b) {
		return NewResidual(fmt.Sprintf("(%s ⨁ %s)", a.Lexeme, b.Lexeme))
	}
	return NewBool((isTrue(a) && !isTrue(b)) || (!isTrue(a) && isTrue(b)))
}

// imp ports Knuth.imp.
func imp(a, b *Value) *Value {
	if isFalse(a) {
		return NewBool(true)
	}
	if isTrue(b) {
		return NewBool(true)
	}
	if !unk(a) && !unk(b) {
		return NewBool(!isTrue(a) || isTrue(b))
	}
	return NewResidual(fmt.Sprintf("(%s → %s)", a.Lexeme, b.Lexeme))
}

// biImp ports Knuth.bi_imp and Knuth.eqv, which share one body.
func biImp(op string, a, b *Value) *Value {
	if unk(a) || unk(b) {
		return NewResidual(fmt.Sprintf("(%s %s %s)", a.Lexeme, op, b.Lexeme))
	}
	return NewBool((isTrue(a) && isTrue(b)) || (isFalse(a) && isFalse(b)))
}

// residualInfix ports Knuth.memb, reused for the restored `=` comparison
// operator (SPEC_FULL: "always residuates like ∈/∉").
func residualInfix(op string, a, b *Value) *Value {
	return NewResidual(fmt.Sprintf("(%s %s %s)", a.Lexeme, op, b.Lexeme))
}

// subst ports Knuth.subst via the Environment binding map instead of
// in-place RPN mutation (see environment.go). a is the reduced
// right-hand expression value; b is the identifier being bound.
func subst(env *Environment, a, b *Value) *Value {
	env.Bind(b.Lexeme, a)
	return NewResidual(fmt.Sprintf("(%s / %s)", stripOneParenLayer(a.Lexeme), b.Lexeme))
}

func evalBinary(op string, a, b *Value, env *Environment) *Value {
	switch op {
	case "/":
		return subst(env, a, b)
	case "∈", "∉", "=":
		return residualInfix(op, a, b)
	case "∧", "&":
		return and_(a, b)
	case "∨":
		return incOr(a, b)
	case "↑":
		return nand(a, b)
	case "↓":
		return nor(a, b)
	case "⨁":
		return excOr(a, b)
	case "→":
		return imp(a, b)
	case "↔", "≡":
		return biImp(op, a, b)
	default:
		return nil
	}
}
