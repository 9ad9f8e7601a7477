package parser

import (
	"github.com/spock-lang/spock/internal/ast"
	"github.com/spock-lang/spock/internal/errs"
	"github.com/spock-lang/spock/internal/token"
)

// Validate runs §4.4's shape checks over every non-opaque statement group:
// infix arity, the substitution operator's fixed shape, and adjacent
// operands with no intervening operator. Checks are scoped per immediate
// container (a group's own Children slice), recursing into subgroups
// independently (§4.4); physical lines are not consulted.
//
// Grounded in
// original_source/bertrand/language_services/base_parser.py's
// BaseParser._check_infix_operands.
func Validate(program *ast.Program) *errs.SpockError {
	exprNum := 0
	for _, stmt := range program.Statements {
		if stmt.Opaque {
			continue
		}
		exprNum++
		if err := validateGroup(stmt, exprNum); err != nil {
			return err
		}
	}
	return nil
}

func validateGroup(node *ast.Node, exprNum int) *errs.SpockError {
	if !node.IsGroup {
		return nil
	}
	children := node.Children

	for _, child := range children {
		if child.IsGroup {
			if err := validateGroup(child, exprNum); err != nil {
				return err
			}
		}
	}

	for i, child := range children {
		if child.IsGroup {
			continue
		}
		tok := child.Tok
		if tok.Kind != token.KindOperator {
			continue
		}
		if tok.Lexeme == "/" {
			if err := validateSubstitutionShape(children, i, exprNum); err != nil {
				return err
			}
			continue
		}
		if token.IsUnaryPrefix(tok.Lexeme) {
			continue
		}
		if !isOperandLeft(children, i-1) {
			return errs.NewInfixArityError(exprNum, tok.Column, tok.Lexeme, "left")
		}
		if !isOperandOrPrefixRight(children, i+1) {
			return errs.NewInfixArityError(exprNum, tok.Column, tok.Lexeme, "right")
		}
	}

	return checkAdjacentOperands(children, exprNum)
}

func isOperandLeft(children []*ast.Node, idx int) bool {
	if idx < 0 || idx >= len(children) {
		return false
	}
	n := children[idx]
	if n.IsGroup {
		return true
	}
	return n.Tok.IsOperand()
}

func isOperandOrPrefixRight(children []*ast.Node, idx int) bool {
	if idx < 0 || idx >= len(children) {
		return false
	}
	n := children[idx]
	if n.IsGroup {
		return true
	}
	return n.Tok.IsOperand() || token.IsUnaryPrefix(n.Tok.Lexeme)
}

// checkAdjacentOperands reports two completed operand units with no infix
// operator between them (a unary-prefix token starting a fresh chain right
// after a completed operand counts as a second operand unit for this
// purpose).
func checkAdjacentOperands(children []*ast.Node, exprNum int) *errs.SpockError {
	for i := 0; i < len(children)-1; i++ {
		left := children[i]
		leftIsOperand := left.IsGroup || left.Tok.IsOperand()
		if !leftIsOperand {
			continue
		}
		right := children[i+1]
		rightStartsOperand := right.IsGroup || right.Tok.IsOperand() || (right.Tok.Kind == token.KindOperator && token.IsUnaryPrefix(right.Tok.Lexeme))
		if rightStartsOperand {
			_, col := locate(right)
			return errs.NewAdjacentOperandsError(exprNum, col)
		}
	}
	return nil
}

func locate(n *ast.Node) (int, int) {
	if !n.IsGroup {
		return n.Tok.Line, n.Tok.Column
	}
	leaves := n.Leaves()
	if len(leaves) == 0 {
		return 0, 0
	}
	return leaves[0].Line, leaves[0].Column
}

// validateSubstitutionShape enforces §4.4's fixed shape for the
// substitution operator: `/` followed by a bare identifier or a
// parenthesized single identifier, then `≡` or `↔`.
func validateSubstitutionShape(children []*ast.Node, idx int, exprNum int) *errs.SpockError {
	slash := children[idx].Tok
	fail := func() *errs.SpockError {
		return errs.NewSubstitutionShapeError(exprNum, slash.Column)
	}

	if idx+2 >= len(children) {
		return fail()
	}
	if idx+3 >= len(children) {
		// nothing follows `≡`/`↔`: no expression to bind.
		return fail()
	}
	name := children[idx+1]
	switch {
	case !name.IsGroup && name.Tok.Kind == token.KindIdentifier:
		// bare identifier, ok
	case name.IsGroup && len(name.Children) == 1 && !name.Children[0].IsGroup && name.Children[0].Tok.Kind == token.KindIdentifier:
		// parenthesized single identifier, ok
	default:
		return fail()
	}

	eqv := children[idx+2]
	if eqv.IsGroup || eqv.Tok.Kind != token.KindOperator {
		return fail()
	}
	if eqv.Tok.Lexeme != "≡" && eqv.Tok.Lexeme != "↔" {
		return fail()
	}
	return nil
}
