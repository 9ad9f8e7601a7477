package token

import "sort"

// The tables below are the three static lexicon tables described in §4.1:
// read-only process-wide data, loaded once (as package-level map literals,
// the idiomatic Go equivalent of "load at startup").

var precedence = map[string]int{
	"/": 0,
	":": 1, "∃": 1, "∀": 1, "¬∃": 1, "¬∀": 1, "!∃": 1, "!∀": 1,
	"¬": 2, "!": 2,
	"↑": 5,
	"∧": 6, "&": 6,
	"⨁": 7, "↓": 7,
	"∨": 9,
	"→": 10,
	"↔": 11, "≡": 11,
}

// defaultPrecedence is the sort key for operators absent from the table
// (§4.1: "Operators absent from the map sort at 99"), which includes the
// restored `=` comparison and the membership operators `∈`/`∉`.
const defaultPrecedence = 99

// PrecedenceOf returns an operator's binding strength; lower binds tighter.
func PrecedenceOf(lexeme string) int {
	if p, ok := precedence[lexeme]; ok {
		return p
	}
	return defaultPrecedence
}

var rightAssociative = map[string]bool{
	"/": true, ":": true,
	"¬": true, "!": true,
	"∃": true, "∀": true, "¬∃": true, "¬∀": true, "!∃": true, "!∀": true,
	"→": true,
}

// RightAssociative reports associativity for the shunting-yard pop rule
// (§4.5 step 4: "precedence strictly tighter, or equal with
// left-associativity"). Everything not listed here is left-associative.
func RightAssociative(lexeme string) bool {
	return rightAssociative[lexeme]
}

var unaryPrefix = map[string]bool{
	"¬": true, "!": true,
	"∃": true, "∀": true,
	"¬∃": true, "¬∀": true, "!∃": true, "!∀": true,
}

// IsUnaryPrefix reports whether lexeme is one of §4.4's unary prefix
// operators, which may chain to the left of a binary operator's
// right-hand operand.
func IsUnaryPrefix(lexeme string) bool {
	return unaryPrefix[lexeme]
}

var booleanLexemes = map[string]bool{
	"⊤": true, "⊥": true, "T": true, "F": true,
	"True": true, "False": true, "true": true, "false": true,
	"∅": true,
}

var operatorLexemes = map[string]bool{
	"¬": true, "!": true, "∧": true, "∨": true, "→": true, "⨁": true,
	"↓": true, "↑": true, "&": true, "↔": true, "≡": true, "/": true,
	":": true, "∈": true, "∉": true, "=": true,
	"∃": true, "∀": true, "¬∃": true, "¬∀": true, "!∃": true, "!∀": true,
}

var containerLexemes = map[string]bool{
	"(": true, ")": true, "{": true, "}": true, "set": true,
}

var delimiterLexemes = map[string]bool{
	";": true, ",": true, ".": true, "$$": true,
}

var statementLexemes = map[string]bool{
	":=": true, "val": true,
}

var reservedIdentifiers = map[rune]bool{
	'φ': true, 'ϕ': true, 'ψ': true,
}

// ClassifyLexeme is the single source of truth for the token-kind map: it
// assigns a Kind to an already-recognized lexeme spelling (after two-char
// fusion/negation-collapse and after identifier/digit-run keyword checks),
// defaulting to KindIdentifier for anything not in the static tables.
func ClassifyLexeme(lexeme string) Kind {
	switch {
	case booleanLexemes[lexeme]:
		return KindBoolean
	case operatorLexemes[lexeme]:
		return KindOperator
	case containerLexemes[lexeme]:
		return KindContainer
	case delimiterLexemes[lexeme]:
		return KindDelimiter
	case statementLexemes[lexeme]:
		return KindStatement
	default:
		return KindIdentifier
	}
}

// singleCharKind maps a single rune scanned in isolation to its kind, for
// symbols that aren't alpha-run or digit-run candidates: operator glyphs,
// containers, delimiters, and the reserved metavariable identifiers
// φ/ϕ/ψ (recognized here, ahead of the generic identifier scan, per
// SPEC_FULL's supplemented-features note).
var singleCharKind = map[rune]Kind{
	'(': KindContainer, ')': KindContainer,
	'{': KindContainer, '}': KindContainer,
	';': KindDelimiter, ',': KindDelimiter, '.': KindDelimiter,
	'¬': KindOperator, '!': KindOperator, '∧': KindOperator, '∨': KindOperator,
	'→': KindOperator, '⨁': KindOperator, '↓': KindOperator, '↑': KindOperator,
	'&': KindOperator, '↔': KindOperator, '≡': KindOperator, '/': KindOperator,
	':': KindOperator, '∈': KindOperator, '∉': KindOperator, '=': KindOperator,
	'∃': KindOperator, '∀': KindOperator,
	'⊤': KindBoolean, '⊥': KindBoolean, '∅': KindBoolean,
	'φ': KindIdentifier, 'ϕ': KindIdentifier, 'ψ': KindIdentifier,
}

// SingleCharKind reports the kind for r if it is recognized as a standalone
// single-character token, and whether it was found at all.
func SingleCharKind(r rune) (Kind, bool) {
	k, ok := singleCharKind[r]
	return k, ok
}

// collapseResult describes the outcome of a two-character negation-collapse
// lookup (§4.2).
type collapseResult struct {
	Lexeme string
	Cancel bool
}

// CollapseNegation implements the table-driven two-character rewrite of
// §4.2: first is ¬ or !, second is an operator or boolean spelling.
// Mutual negations cancel outright (ok=true, Cancel=true, no token
// emitted); quantifier fusions (¬∃, !∀, ...) preserve the original negation
// spelling; every other pair canonicalizes to a single symbol regardless of
// whether ¬ or ! triggered it.
func CollapseNegation(first, second rune) (result collapseResult, ok bool) {
	switch second {
	case '¬', '!':
		return collapseResult{Cancel: true}, true
	case '∧':
		return collapseResult{Lexeme: "↑"}, true
	case '∨':
		return collapseResult{Lexeme: "↓"}, true
	case '⨁':
		return collapseResult{Lexeme: "≡"}, true
	case '≡':
		return collapseResult{Lexeme: "⨁"}, true
	case '↓':
		return collapseResult{Lexeme: "∨"}, true
	case '↑':
		return collapseResult{Lexeme: "∧"}, true
	case 'T':
		return collapseResult{Lexeme: "F"}, true
	case 'F':
		return collapseResult{Lexeme: "T"}, true
	case '⊤':
		return collapseResult{Lexeme: "⊥"}, true
	case '⊥':
		return collapseResult{Lexeme: "⊤"}, true
	case '∈':
		return collapseResult{Lexeme: "∉"}, true
	case '∉':
		return collapseResult{Lexeme: "∈"}, true
	case '∃':
		return collapseResult{Lexeme: string(first) + "∃"}, true
	case '∀':
		return collapseResult{Lexeme: string(first) + "∀"}, true
	default:
		return collapseResult{}, false
	}
}

// KnownLexemes returns every operator and boolean spelling recognized by
// the lexicon, sorted for deterministic output. Collaborator-layer
// tooling (internal/cli/ui's fuzzy matcher) uses this as the candidate
// set when suggesting a correction for an undefined character.
func KnownLexemes() []string {
	out := make([]string, 0, len(operatorLexemes)+len(booleanLexemes))
	for l := range operatorLexemes {
		out = append(out, l)
	}
	for l := range booleanLexemes {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// BoolValueOf returns the canonical truth value for a recognized boolean
// lexeme spelling (§4.6 normalization).
func BoolValueOf(lexeme string) Value {
	switch lexeme {
	case "⊤", "T", "True", "true", "1":
		return ValueTrue
	case "⊥", "F", "False", "false", "∅", "0":
		return ValueFalse
	default:
		return ValueUnknown
	}
}
