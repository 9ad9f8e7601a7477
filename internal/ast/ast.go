// Package ast defines the grouped-tree shape produced by the parser's
// grouping stage (§3 "Grouped node", §9's "GroupNode = Token | Group |
// SetNode" design note).
//
// Set literals resolve to a single token during grouping (§4.3: "the
// outermost } yields a single set token"), so the recursive variant
// collapses to two cases rather than three: a leaf token (itself possibly
// carrying a token.SetNode payload) or a nested group.
package ast

import "github.com/spock-lang/spock/internal/token"

// Node is one element of a grouped sequence: either a leaf token or a
// nested group produced by `(...)`.
type Node struct {
	IsGroup bool

	// Tok is populated when !IsGroup.
	Tok *token.Token

	// Children is populated when IsGroup.
	Children []*Node

	// Opaque marks a statement group (§4.3: "parsed as a unit but its
	// internal grammar is opaque to the core beyond wrapping"); opaque
	// groups are skipped by validation and RPN planning.
	Opaque bool
}

// NewTokenNode wraps a leaf token.
func NewTokenNode(tok *token.Token) *Node {
	return &Node{Tok: tok}
}

// NewGroupNode wraps a nested sequence.
func NewGroupNode(children []*Node) *Node {
	return &Node{IsGroup: true, Children: children}
}

// Program is the top-level sequence of statement groups produced by one
// parse (one Node per statement, in source order).
type Program struct {
	Statements []*Node
}

// Leaves returns every leaf token in document order via a pre-order walk,
// used by PlanRPN to flatten each statement and by validation's
// token-location lookup.
func (n *Node) Leaves() []*token.Token {
	var out []*token.Token
	var walk func(*Node)
	walk = func(node *Node) {
		if !node.IsGroup {
			out = append(out, node.Tok)
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return out
}
