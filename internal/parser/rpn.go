package parser

import (
	"sort"

	"github.com/spock-lang/spock/internal/ast"
	"github.com/spock-lang/spock/internal/token"
)

// LineRPN is one physical/logical line's reverse-Polish token sequence,
// ready for the evaluator (§4.5, §4.6).
type LineRPN struct {
	Line   int
	Tokens []*token.Token
}

// AssignCoordinates walks every non-opaque statement, assigning each leaf
// token its (depth, gpad, pig) coordinate (§3, §4.5 step 1).
//
// depth is the nesting level (0 = top). gpad is a single counter per depth,
// shared across the whole program and incremented once per group opened at
// that depth — not reset per parent — so that every group at a given depth
// occupies a distinct, globally increasing slot. pig is an item's index
// within its immediate parent's Children slice (a nested group occupies
// one slot for its siblings' pig-counting purposes, same as a leaf would).
//
// This replaces the stringify-and-reparse trick of
// original_source/bertrand/language_services/turing_parser.py's coordinate
// assignment with a direct tree walk, per spec's explicit redesign
// instruction.
func AssignCoordinates(program *ast.Program) {
	gpad := map[int]int{}

	var walk func(node *ast.Node, depth int)
	walk = func(node *ast.Node, depth int) {
		g := gpad[depth]
		gpad[depth] = g + 1
		for pig, child := range node.Children {
			if child.IsGroup {
				walk(child, depth+1)
				continue
			}
			child.Tok.Depth = depth
			child.Tok.GPAD = g
			child.Tok.PIG = pig
		}
	}

	for _, stmt := range program.Statements {
		if stmt.Opaque {
			continue
		}
		walk(stmt, 0)
	}
}

// PlanRPN assigns coordinates, flattens every non-opaque statement's leaves
// into one document-order sequence, groups them by physical line, and
// shunting-yards each line's tokens into reverse Polish notation (§4.5).
func PlanRPN(program *ast.Program) []LineRPN {
	rewriteSubstitutions(program)
	AssignCoordinates(program)

	var all []*token.Token
	for _, stmt := range program.Statements {
		if stmt.Opaque {
			continue
		}
		all = append(all, stmt.Leaves()...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Depth != b.Depth {
			return a.Depth < b.Depth
		}
		if a.GPAD != b.GPAD {
			return a.GPAD < b.GPAD
		}
		return a.PIG < b.PIG
	})

	var lines []LineRPN
	var cur []*token.Token
	curLine := 0
	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, LineRPN{Line: curLine, Tokens: planLine(cur)})
			cur = nil
		}
	}
	for _, tok := range all {
		if len(cur) > 0 && tok.Line != curLine {
			flush()
		}
		curLine = tok.Line
		cur = append(cur, tok)
	}
	flush()

	return lines
}

type stackEntry struct {
	isParen bool
	tok     *token.Token
}

// planLine runs the shunting-yard algorithm with virtual parentheses
// (§4.5 step 2): as depth rises or falls across the coordinate-sorted
// tokens of one line, a virtual `(` is pushed or popped once per unit of
// depth change, exactly as a real parenthesis would drive the algorithm.
// A change of gpad at the same depth (one sibling group ending and the
// next beginning) closes the current virtual `(` and opens a new one.
func planLine(tokens []*token.Token) []*token.Token {
	if len(tokens) == 0 {
		return nil
	}

	var output []*token.Token
	var stack []stackEntry
	baseDepth := tokens[0].Depth
	curDepth := baseDepth
	prevGPAD := tokens[0].GPAD

	popOperators := func() {
		for len(stack) > 0 && !stack[len(stack)-1].isParen {
			output = append(output, stack[len(stack)-1].tok)
			stack = stack[:len(stack)-1]
		}
	}
	closeOneLevel := func() {
		popOperators()
		if len(stack) > 0 && stack[len(stack)-1].isParen {
			stack = stack[:len(stack)-1]
		}
		curDepth--
	}

	for _, tok := range tokens {
		if tok.Depth == curDepth && tok.Depth > baseDepth && tok.GPAD != prevGPAD {
			closeOneLevel()
			stack = append(stack, stackEntry{isParen: true})
			curDepth++
		}
		prevGPAD = tok.GPAD
		for curDepth < tok.Depth {
			stack = append(stack, stackEntry{isParen: true})
			curDepth++
		}
		for curDepth > tok.Depth {
			closeOneLevel()
		}

		if tok.IsOperand() {
			output = append(output, tok)
			continue
		}

		rightAssoc := token.RightAssociative(tok.Lexeme)
		for len(stack) > 0 && !stack[len(stack)-1].isParen {
			top := stack[len(stack)-1].tok
			tighter := top.OpPrec < tok.OpPrec
			equalLeft := top.OpPrec == tok.OpPrec && !rightAssoc
			if tighter || equalLeft {
				output = append(output, top)
				stack = stack[:len(stack)-1]
				continue
			}
			break
		}
		stack = append(stack, stackEntry{tok: tok})
	}

	for curDepth > baseDepth {
		closeOneLevel()
	}
	popOperators()

	return output
}
