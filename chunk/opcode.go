// Package chunk implements the bytecode container the compiler emits into
// and the VM executes from: a flat byte stream, one source line per byte,
// and a constant pool.
package chunk

// Opcode is a single-byte instruction tag. Values are stable across
// releases: scripts compiled against one version disassemble correctly
// against another.
type Opcode byte

const (
	OpConstant Opcode = iota
	OpReturn
	OpNegate
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpNil
	OpTrue
	OpFalse
	OpNot
	OpEqual
	OpGreater
	OpLess
	OpBangEqual
	OpGreaterEqual
	OpLessEqual
	OpPrint
	OpPop
	OpDefineGlobal
	OpGetGlobal
)

var opcodeNames = map[Opcode]string{
	OpConstant:     "OP_CONSTANT",
	OpReturn:       "OP_RETURN",
	OpNegate:       "OP_NEGATE",
	OpAdd:          "OP_ADD",
	OpSubtract:     "OP_SUBTRACT",
	OpMultiply:     "OP_MULTIPLY",
	OpDivide:       "OP_DIVIDE",
	OpNil:          "OP_NIL",
	OpTrue:         "OP_TRUE",
	OpFalse:        "OP_FALSE",
	OpNot:          "OP_NOT",
	OpEqual:        "OP_EQUAL",
	OpGreater:      "OP_GREATER",
	OpLess:         "OP_LESS",
	OpBangEqual:    "OP_BANG_EQUAL",
	OpGreaterEqual: "OP_GREATER_EQUAL",
	OpLessEqual:    "OP_LESS_EQUAL",
	OpPrint:        "OP_PRINT",
	OpPop:          "OP_POP",
	OpDefineGlobal: "OP_DEFINE_GLOBAL",
	OpGetGlobal:    "OP_GET_GLOBAL",
}

// String returns the opcode's disassembly mnemonic.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "OP_UNKNOWN"
}

// HasOperand reports whether op is followed by a one-byte constant-pool
// index. Every other opcode is exactly one byte wide.
func (op Opcode) HasOperand() bool {
	switch op {
	case OpConstant, OpDefineGlobal, OpGetGlobal:
		return true
	default:
		return false
	}
}
