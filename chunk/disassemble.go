package chunk

import "fmt"

// Disassemble renders the single instruction starting at offset as
// human-readable text, returning the offset of the following instruction
// alongside it.
func Disassemble(c *Chunk, offset int) (next int, text string) {
	op := Opcode(c.Code[offset])

	if !op.HasOperand() {
		return offset + 1, op.String()
	}

	operand := c.Code[offset+1]
	constant := c.ConstantAt(operand)
	return offset + 2, fmt.Sprintf("%-16s %4d '%s'", op.String(), operand, constant.String())
}
