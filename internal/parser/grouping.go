// Package parser implements the Spock parser's three stages: grouping
// (§4.3), validation (§4.4), and RPN planning (§4.5).
//
// Grounded in internal/compiler/parser/parser.go's Parser{tokens,current}
// recursive-descent shape, and in
// original_source/bertrand/language_services/turing_parser.py's Turing/
// _SetContainerParser classes and base_parser.py's BaseParser for the
// grouping/validation algorithms themselves.
package parser

import (
	"strings"

	"github.com/spock-lang/spock/internal/ast"
	"github.com/spock-lang/spock/internal/errs"
	"github.com/spock-lang/spock/internal/token"
)

// grouper holds grouping-stage cursor state over the flat token stream.
type grouper struct {
	tokens []*token.Token
	pos    int
}

// Parse groups a flat, scanner-produced token stream into a Program: one
// statement group per top-level `.`-terminated (or opaque `statement`-led)
// sequence (§4.3).
func Parse(tokens []*token.Token) (*ast.Program, *errs.SpockError) {
	g := &grouper{tokens: tokens}
	program := &ast.Program{}

	for g.pos < len(g.tokens) {
		tok := g.tokens[g.pos]
		if tok.Kind == token.KindDelimiter && tok.Lexeme == "$$" {
			break
		}
		stmt, err := g.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (g *grouper) current() *token.Token {
	if g.pos >= len(g.tokens) {
		return nil
	}
	return g.tokens[g.pos]
}

// parseStatement consumes one top-level statement: either an opaque
// `statement`-typed group (`val ...` / `:= ...`) or an ordinary expression
// group terminated by `.`.
func (g *grouper) parseStatement() (*ast.Node, *errs.SpockError) {
	if tok := g.current(); tok != nil && tok.Kind == token.KindStatement {
		return g.parseOpaqueStatement()
	}

	var children []*ast.Node
	for {
		tok := g.current()
		if tok == nil || tok.Lexeme == "$$" {
			line, col := 0, 0
			if tok != nil {
				line, col = tok.Line, tok.Column
			}
			return nil, errs.NewMissingTerminalPeriod(line, col)
		}
		if tok.Kind == token.KindDelimiter && tok.Lexeme == "." {
			g.pos++
			return ast.NewGroupNode(children), nil
		}
		if tok.Kind == token.KindStatement {
			return nil, errs.NewStatementInExpression(tok.Line, tok.Column, tok.Lexeme)
		}
		node, err := g.parseElement()
		if err != nil {
			return nil, err
		}
		if node != nil {
			children = append(children, node)
		}
	}
}

// parseOpaqueStatement collects tokens up to the next `.` without
// recursing into grouping structure (§4.3: "parsed as a unit but its
// internal grammar is opaque to the core beyond wrapping").
func (g *grouper) parseOpaqueStatement() (*ast.Node, *errs.SpockError) {
	var children []*ast.Node
	for {
		tok := g.current()
		if tok == nil || tok.Lexeme == "$$" {
			line, col := 0, 0
			if tok != nil {
				line, col = tok.Line, tok.Column
			}
			return nil, errs.NewMissingTerminalPeriod(line, col)
		}
		if tok.Kind == token.KindDelimiter && tok.Lexeme == "." {
			g.pos++
			node := ast.NewGroupNode(children)
			node.Opaque = true
			return node, nil
		}
		if tok.Kind == token.KindDelimiter && (tok.Lexeme == "," || tok.Lexeme == ";") {
			g.pos++
			continue
		}
		children = append(children, ast.NewTokenNode(tok))
		g.pos++
	}
}

// parseElement consumes exactly one grouped element at the cursor: a
// parenthesized subexpression, a set literal, a swallowed structural
// separator (`,`/`;`, which yield no node), or a plain leaf token.
func (g *grouper) parseElement() (*ast.Node, *errs.SpockError) {
	tok := g.current()
	switch {
	case tok.Lexeme == "(":
		return g.parseParenGroup()
	case tok.Lexeme == "{":
		return g.parseSetLiteral()
	case tok.Lexeme == "set":
		if next := g.peekAt(1); next != nil && next.Lexeme == "{" {
			g.pos++
			return g.parseSetLiteral()
		}
		g.pos++
		return ast.NewTokenNode(tok), nil
	case tok.Lexeme == ")" || tok.Lexeme == "}":
		g.pos++
		return nil, errs.NewUnmatchedCloser(tok.Line, tok.Column, tok.Lexeme)
	case tok.Kind == token.KindDelimiter && (tok.Lexeme == "," || tok.Lexeme == ";"):
		g.pos++
		return nil, nil
	default:
		g.pos++
		return ast.NewTokenNode(tok), nil
	}
}

func (g *grouper) peekAt(offset int) *token.Token {
	idx := g.pos + offset
	if idx >= len(g.tokens) {
		return nil
	}
	return g.tokens[idx]
}

// parseParenGroup consumes `( ... )`, recursing for nested elements.
func (g *grouper) parseParenGroup() (*ast.Node, *errs.SpockError) {
	open := g.current()
	g.pos++

	var children []*ast.Node
	for {
		tok := g.current()
		if tok == nil || tok.Lexeme == "$$" {
			return nil, errs.NewUnmatchedOpener(open.Line, open.Column, "(")
		}
		if tok.Lexeme == ")" {
			g.pos++
			return ast.NewGroupNode(children), nil
		}
		if tok.Lexeme == "." {
			return nil, errs.NewPrematureTermination(tok.Line, tok.Column)
		}
		if tok.Kind == token.KindStatement {
			return nil, errs.NewStatementInExpression(tok.Line, tok.Column, tok.Lexeme)
		}
		node, err := g.parseElement()
		if err != nil {
			return nil, err
		}
		if node != nil {
			children = append(children, node)
		}
	}
}

// parseSetLiteral consumes `{ ... }`, accumulating scalar display text
// between separators and recursing into nested `{...}` members (§4.3,
// SPEC_FULL's set-literal display-key collapsing note). An empty set
// degenerates to boolean False with lexeme `∅`.
func (g *grouper) parseSetLiteral() (*ast.Node, *errs.SpockError) {
	open := g.current()
	g.pos++

	var elements []token.SetElement
	var scalarParts []string
	flush := func() {
		if len(scalarParts) > 0 {
			elements = append(elements, token.SetElement{Scalar: strings.Join(scalarParts, " "), IsScalar: true})
			scalarParts = nil
		}
	}

	for {
		tok := g.current()
		if tok == nil || tok.Lexeme == "$$" {
			return nil, errs.NewUnmatchedOpener(open.Line, open.Column, "{")
		}
		switch {
		case tok.Lexeme == "}":
			g.pos++
			flush()
			return g.finishSetLiteral(open, elements), nil
		case tok.Lexeme == ",":
			g.pos++
			flush()
		case tok.Lexeme == "{":
			nested, err := g.parseSetLiteral()
			if err != nil {
				return nil, err
			}
			if nested.Tok.Kind == token.KindSet {
				elements = append(elements, token.SetElement{Nested: nested.Tok.Set})
			} else {
				elements = append(elements, token.SetElement{Nested: &token.SetNode{}})
			}
		case tok.Lexeme == ".":
			return nil, errs.NewPrematureTermination(tok.Line, tok.Column)
		case tok.Kind == token.KindStatement:
			return nil, errs.NewStatementInExpression(tok.Line, tok.Column, tok.Lexeme)
		default:
			scalarParts = append(scalarParts, tok.Lexeme)
			g.pos++
		}
	}
}

func (g *grouper) finishSetLiteral(open *token.Token, elements []token.SetElement) *ast.Node {
	setNode := &token.SetNode{Elements: elements}
	result := &token.Token{
		Kind: token.KindSet, Set: setNode,
		Line: open.Line, Column: open.Column, Position: open.Position,
		Value: token.ValueUnknown, OpPrec: token.PrecedenceOf(""),
	}
	if setNode.Empty() {
		result.Kind = token.KindBoolean
		result.Lexeme = "∅"
		result.Value = token.ValueFalse
		result.Set = nil
	}
	return ast.NewTokenNode(result)
}
