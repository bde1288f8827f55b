// Package compiler implements the single-pass compiler: a Pratt expression
// parser driving statement-level recursive descent, emitting bytecode
// directly with no intermediate syntax tree.
package compiler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"nilox/chunk"
	"nilox/lexer"
	"nilox/token"
	"nilox/value"
)

// Compiler holds the full compile-time state: the token stream (produced
// lazily from the lexer), the parser's error-recovery flags, and the
// chunk being built.
type Compiler struct {
	lex *lexer.Lexer

	previous token.Token
	current  token.Token

	hadError  bool
	panicMode bool
	errors    *multierror.Error

	chunk *chunk.Chunk
}

// Compile compiles source into a Chunk. It always returns a non-nil Chunk;
// callers must check the returned error before handing the chunk to the VM.
func Compile(source string) (*chunk.Chunk, error) {
	c := &Compiler{
		lex:   lexer.New(source),
		chunk: chunk.New(),
	}

	c.advance()
	for !c.match(token.Eof) {
		c.declaration()
	}
	c.emitByte(byte(chunk.OpReturn))

	if c.hadError {
		return c.chunk, c.errors.ErrorOrNil()
	}
	return c.chunk, nil
}

// --- token stream -----------------------------------------------------

func (c *Compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.lex.Scan()
		if c.current.Type != token.Error {
			return
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *Compiler) check(kind token.Type) bool {
	return c.current.Type == kind
}

func (c *Compiler) match(kind token.Type) bool {
	if !c.check(kind) {
		return false
	}
	c.advance()
	return true
}

func (c *Compiler) consume(kind token.Type, message string) {
	if c.current.Type == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

// --- statement grammar --------------------------------------------------

func (c *Compiler) declaration() {
	if c.match(token.Var) {
		c.varDeclaration()
	} else {
		c.statement()
	}

	if c.panicMode {
		c.synchronize()
	}
}

func (c *Compiler) varDeclaration() {
	c.consume(token.Identifier, "Expect variable name.")
	global := c.identifierConstant(c.previous)

	if c.match(token.Assign) {
		c.expression()
	} else {
		c.emitByte(byte(chunk.OpNil))
	}
	c.consume(token.SemiColon, "Expect ';' after variable declaration.")
	c.emitBytes(byte(chunk.OpDefineGlobal), global)
}

func (c *Compiler) statement() {
	if c.match(token.Print) {
		c.printStatement()
		return
	}
	c.expressionStatement()
}

func (c *Compiler) printStatement() {
	c.expression()
	c.consume(token.SemiColon, "Expect ';' after value.")
	c.emitByte(byte(chunk.OpPrint))
}

func (c *Compiler) expressionStatement() {
	c.expression()
	c.consume(token.SemiColon, "Expect ';' after expression.")
	c.emitByte(byte(chunk.OpPop))
}

func (c *Compiler) synchronize() {
	c.panicMode = false
	for c.current.Type != token.Eof {
		if c.previous.Type == token.SemiColon {
			return
		}
		switch c.current.Type {
		case token.Class, token.Fun, token.Var, token.For,
			token.If, token.While, token.Print, token.Return:
			return
		}
		c.advance()
	}
}

// --- Pratt expression parser --------------------------------------------

func (c *Compiler) expression() {
	c.parsePrecedence(PrecAssignment)
}

func (c *Compiler) parsePrecedence(precedence Precedence) {
	c.advance()
	prefix := getRule(c.previous.Type).prefix
	if prefix == nil {
		c.error("Expected expression.")
		return
	}
	prefix(c)

	for precedence <= getRule(c.current.Type).precedence {
		c.advance()
		infix := getRule(c.previous.Type).infix
		infix(c)
	}
}

func (c *Compiler) number() {
	n, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(n))
}

func (c *Compiler) string() {
	lexeme := c.previous.Lexeme
	c.emitConstant(value.Str(lexeme[1 : len(lexeme)-1]))
}

func (c *Compiler) literal() {
	switch c.previous.Type {
	case token.Nil:
		c.emitByte(byte(chunk.OpNil))
	case token.True:
		c.emitByte(byte(chunk.OpTrue))
	case token.False:
		c.emitByte(byte(chunk.OpFalse))
	}
}

func (c *Compiler) variable() {
	name := c.identifierConstant(c.previous)
	c.emitBytes(byte(chunk.OpGetGlobal), name)
}

func (c *Compiler) grouping() {
	c.expression()
	c.consume(token.RightParen, "Expect ')' after expression.")
}

func (c *Compiler) unary() {
	operator := c.previous.Type
	c.parsePrecedence(PrecUnary)

	switch operator {
	case token.Minus:
		c.emitByte(byte(chunk.OpNegate))
	case token.Bang:
		c.emitByte(byte(chunk.OpNot))
	}
}

func (c *Compiler) binary() {
	operator := c.previous.Type
	rule := getRule(operator)
	c.parsePrecedence(rule.precedence + 1)

	switch operator {
	case token.Plus:
		c.emitByte(byte(chunk.OpAdd))
	case token.Minus:
		c.emitByte(byte(chunk.OpSubtract))
	case token.Star:
		c.emitByte(byte(chunk.OpMultiply))
	case token.Slash:
		c.emitByte(byte(chunk.OpDivide))
	case token.Equal:
		c.emitByte(byte(chunk.OpEqual))
	case token.BangEqual:
		c.emitByte(byte(chunk.OpBangEqual))
	case token.Greater:
		c.emitByte(byte(chunk.OpGreater))
	case token.GreaterEqual:
		c.emitByte(byte(chunk.OpGreaterEqual))
	case token.Less:
		c.emitByte(byte(chunk.OpLess))
	case token.LessEqual:
		c.emitByte(byte(chunk.OpLessEqual))
	}
}

// --- emit helpers ---------------------------------------------------------

func (c *Compiler) emitByte(b byte) {
	c.chunk.WriteByte(b, c.previous.Line)
}

func (c *Compiler) emitBytes(a, b byte) {
	c.emitByte(a)
	c.emitByte(b)
}

func (c *Compiler) emitConstant(v value.Value) {
	index := c.chunk.AddConstant(v)
	if index == -1 {
		c.error("Too many constants in one chunk.")
		return
	}
	c.emitBytes(byte(chunk.OpConstant), byte(index))
}

func (c *Compiler) identifierConstant(name token.Token) byte {
	index := c.chunk.AddConstant(value.Str(name.Lexeme))
	if index == -1 {
		c.error("Too many constants in one chunk.")
		return 0
	}
	return byte(index)
}

// --- diagnostics -----------------------------------------------------------

func (c *Compiler) error(message string) {
	c.errorAt(c.previous, message)
}

func (c *Compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *Compiler) errorAt(tok token.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	var where string
	switch tok.Type {
	case token.Eof:
		where = " at end."
	case token.Error:
		where = ""
	default:
		where = fmt.Sprintf(" at '%s'", tok.Lexeme)
	}

	diagnostic := fmt.Sprintf("[line %d] Error%s: %s", tok.Line, where, message)
	fmt.Fprintln(os.Stderr, diagnostic)
	c.errors = multierror.Append(c.errors, fmt.Errorf("%s", diagnostic))
}
