// Package token defines the lexical token kinds recognized by the nilox
// scanner and the Token value the scanner produces.
package token

import "fmt"

// Type classifies a lexeme into one of the closed set of token kinds
// the language grammar recognizes.
type Type int

const (
	// single-character punctuation
	LeftParen Type = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	SemiColon
	Slash
	Star

	// one- or two-character operators
	Bang
	BangEqual
	Assign
	Equal
	Greater
	GreaterEqual
	Less
	LessEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// special
	Error
	Eof
)

// Keywords maps reserved identifiers to their keyword Type. Anything not in
// this table that starts with a letter or underscore is an Identifier.
var Keywords = map[string]Type{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

var names = map[Type]string{
	LeftParen: "LeftParen", RightParen: "RightParen",
	LeftBrace: "LeftBrace", RightBrace: "RightBrace",
	Comma: "Comma", Dot: "Dot", Minus: "Minus", Plus: "Plus",
	SemiColon: "SemiColon", Slash: "Slash", Star: "Star",
	Bang: "Bang", BangEqual: "BangEqual", Assign: "Assign", Equal: "Equal",
	Greater: "Greater", GreaterEqual: "GreaterEqual",
	Less: "Less", LessEqual: "LessEqual",
	Identifier: "Identifier", String: "String", Number: "Number",
	And: "And", Class: "Class", Else: "Else", False: "False",
	Fun: "Fun", For: "For", If: "If", Nil: "Nil", Or: "Or",
	Print: "Print", Return: "Return", Super: "Super", This: "This",
	True: "True", Var: "Var", While: "While",
	Error: "Error", Eof: "Eof",
}

// String returns the human-readable name of a Type, used by Token.String.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is a single lexical unit: its kind, the exact source text it came
// from, and the 1-based source line it started on.
//
// An Error token carries its diagnostic message in Lexeme rather than source
// text. Eof marks end of input and carries an empty Lexeme.
type Token struct {
	Type   Type
	Lexeme string
	Line   int
}

// New constructs a Token whose Lexeme is the given source slice.
func New(kind Type, lexeme string, line int) Token {
	return Token{Type: kind, Lexeme: lexeme, Line: line}
}

// NewError constructs an Error token carrying a diagnostic message.
func NewError(message string, line int) Token {
	return Token{Type: Error, Lexeme: message, Line: line}
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s %q line=%d}", t.Type, t.Lexeme, t.Line)
}
