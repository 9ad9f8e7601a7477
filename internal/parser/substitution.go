package parser

import (
	"github.com/spock-lang/spock/internal/ast"
	"github.com/spock-lang/spock/internal/token"
)

// rewriteSubstitutions walks every non-opaque statement and, wherever it
// finds the fixed `/ IDENT (≡|↔) REST...` shape inside a group's own
// Children slice, rewrites that slice to `(REST...) (IDENT) /` — dropping
// the `≡`/`↔` marker entirely. REST and IDENT each sit in their own group
// (REST keeps its group when it already is a single parenthesized group),
// so the planner's coordinate order puts REST's tokens first, IDENT next,
// and `/` last.
//
// This turns the substitution operator from a prefix-like marker (which
// generic precedence-driven shunting-yard cannot express directly) into an
// ordinary postfix-binary operand pair: REST reduces to a residual value
// through the normal stack machine, IDENT is pushed as the ordinary
// right-hand operand, and `/` combines them. Run after Validate (which depends
// on seeing the original shape) and before AssignCoordinates (which
// depends on seeing the final shape).
func rewriteSubstitutions(program *ast.Program) {
	for _, stmt := range program.Statements {
		if stmt.Opaque {
			continue
		}
		rewriteGroup(stmt)
	}
}

func rewriteGroup(node *ast.Node) {
	if !node.IsGroup {
		return
	}
	for _, child := range node.Children {
		rewriteGroup(child)
	}

	children := node.Children
	for i, child := range children {
		if child.IsGroup || child.Tok.Lexeme != "/" {
			continue
		}
		if i+2 >= len(children) {
			continue
		}
		name, ok := substitutionName(children[i+1])
		if !ok {
			continue
		}
		eqv := children[i+2]
		if eqv.IsGroup || (eqv.Tok.Lexeme != "≡" && eqv.Tok.Lexeme != "↔") {
			continue
		}

		rest := children[i+3:]
		restNode := ast.NewGroupNode(append([]*ast.Node(nil), rest...))
		if len(rest) == 1 && rest[0].IsGroup {
			restNode = rest[0]
		}
		rewritten := make([]*ast.Node, 0, len(children))
		rewritten = append(rewritten, children[:i]...)
		rewritten = append(rewritten, restNode, ast.NewGroupNode([]*ast.Node{name}), child)
		node.Children = rewritten
		return
	}
}

// substitutionName reports the identifier node a `/` binds to: a bare
// identifier, or the sole child of a single-element parenthesized group
// (unwrapped so it behaves as a plain operand downstream).
func substitutionName(n *ast.Node) (*ast.Node, bool) {
	if !n.IsGroup {
		if n.Tok.Kind == token.KindIdentifier {
			return n, true
		}
		return nil, false
	}
	if len(n.Children) != 1 || n.Children[0].IsGroup {
		return nil, false
	}
	if n.Children[0].Tok.Kind != token.KindIdentifier {
		return nil, false
	}
	return n.Children[0], true
}
