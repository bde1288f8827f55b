package chunk

import (
	"fmt"
	"strings"

	"nilox/value"
)

// maxConstants is the constant pool's capacity: indices are encoded as a
// single byte operand, so the pool cannot hold more than 256 entries.
const maxConstants = 256

// Chunk is a compiled sequence of instructions: a flat byte stream, one
// source line recorded per byte (Lines[i] is the line that produced
// Code[i]), and the pool of constant Values the stream indexes into.
type Chunk struct {
	Code      []byte
	Lines     []int
	Constants []value.Value
}

// New returns an empty Chunk ready to be written into.
func New() *Chunk {
	return &Chunk{}
}

// WriteOp appends an opcode byte, tagging it with the source line that
// produced it.
func (c *Chunk) WriteOp(op Opcode, line int) int {
	return c.WriteByte(byte(op), line)
}

// WriteByte appends a raw byte (an opcode or an operand) and returns its
// offset in Code.
func (c *Chunk) WriteByte(b byte, line int) int {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
	return len(c.Code) - 1
}

// AddConstant appends v to the constant pool and returns its index, or
// -1 if the pool is already full.
func (c *Chunk) AddConstant(v value.Value) int {
	if len(c.Constants) >= maxConstants {
		return -1
	}
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// ConstantAt returns the pooled constant at index i.
func (c *Chunk) ConstantAt(i byte) value.Value {
	return c.Constants[i]
}

// LineAt returns the source line that produced the instruction byte at
// offset.
func (c *Chunk) LineAt(offset int) int {
	return c.Lines[offset]
}

// Len reports the number of bytes currently written to Code.
func (c *Chunk) Len() int {
	return len(c.Code)
}

// String renders the full chunk in disassembled form, suitable for the
// disassemble subcommand and for trace logging.
func (c *Chunk) String() string {
	var b strings.Builder
	offset := 0
	for offset < c.Len() {
		var line string
		next, text := Disassemble(c, offset)
		if offset > 0 && c.LineAt(offset) == c.LineAt(offset-1) {
			line = "   |"
		} else {
			line = fmt.Sprintf("%4d", c.LineAt(offset))
		}
		fmt.Fprintf(&b, "%04d %s %s\n", offset, line, text)
		offset = next
	}
	return b.String()
}
