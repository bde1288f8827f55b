package compiler

import "nilox/token"

// Precedence orders the grammar's infix operators from loosest to
// tightest binding. parsePrecedence only consumes infix operators whose
// rule precedence is at least as tight as the level it was called with.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecAssignment
	PrecOr
	PrecAnd
	PrecEquality
	PrecComparison
	PrecTerm
	PrecFactor
	PrecUnary
	PrecCall
	PrecPrimary
)

type parseFunc func(*Compiler)

// parseRule binds a token kind to its prefix parse action (when the token
// starts an expression), its infix parse action (when the token appears
// between two already-parsed operands), and the precedence used to decide
// whether parsePrecedence should keep consuming it as an infix operator.
type parseRule struct {
	prefix     parseFunc
	infix      parseFunc
	precedence Precedence
}

// rules is a dense array indexed by token.Type, grounded on the
// array-table idiom (as opposed to a map lookup) used for Lox-family
// Pratt parsers. PrecOr, PrecAnd, and PrecCall have no active rule yet;
// the slots are reserved for operators this slice of the language
// doesn't implement.
var rules [int(token.Eof) + 1]parseRule

func init() {
	rules[token.LeftParen] = parseRule{prefix: (*Compiler).grouping, precedence: PrecNone}
	rules[token.Minus] = parseRule{prefix: (*Compiler).unary, infix: (*Compiler).binary, precedence: PrecTerm}
	rules[token.Plus] = parseRule{infix: (*Compiler).binary, precedence: PrecTerm}
	rules[token.Slash] = parseRule{infix: (*Compiler).binary, precedence: PrecFactor}
	rules[token.Star] = parseRule{infix: (*Compiler).binary, precedence: PrecFactor}
	rules[token.Bang] = parseRule{prefix: (*Compiler).unary, precedence: PrecNone}
	rules[token.BangEqual] = parseRule{infix: (*Compiler).binary, precedence: PrecEquality}
	rules[token.Equal] = parseRule{infix: (*Compiler).binary, precedence: PrecEquality}
	rules[token.Greater] = parseRule{infix: (*Compiler).binary, precedence: PrecComparison}
	rules[token.GreaterEqual] = parseRule{infix: (*Compiler).binary, precedence: PrecComparison}
	rules[token.Less] = parseRule{infix: (*Compiler).binary, precedence: PrecComparison}
	rules[token.LessEqual] = parseRule{infix: (*Compiler).binary, precedence: PrecComparison}
	rules[token.Number] = parseRule{prefix: (*Compiler).number, precedence: PrecNone}
	rules[token.String] = parseRule{prefix: (*Compiler).string, precedence: PrecNone}
	rules[token.Identifier] = parseRule{prefix: (*Compiler).variable, precedence: PrecNone}
	rules[token.Nil] = parseRule{prefix: (*Compiler).literal, precedence: PrecNone}
	rules[token.True] = parseRule{prefix: (*Compiler).literal, precedence: PrecNone}
	rules[token.False] = parseRule{prefix: (*Compiler).literal, precedence: PrecNone}
}

func getRule(kind token.Type) parseRule {
	return rules[kind]
}
