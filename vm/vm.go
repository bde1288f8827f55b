// Package vm implements the stack-based bytecode interpreter: a
// fetch-decode-execute loop over a chunk.Chunk, with optional
// trace-execution logging for debugging.
package vm

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"nilox/chunk"
	"nilox/value"
)

// VM is the runtime environment bytecode chunks execute in. Each VM owns
// its own stack and global variable table; a single VM is reused across
// REPL lines so that globals persist between them.
type VM struct {
	chunk *chunk.Chunk
	ip    int
	stack stack

	globals map[string]value.Value

	out io.Writer
	log *logrus.Logger
}

// New creates a VM that writes Print output to out. Pass a *logrus.Logger
// configured at debug level to enable per-instruction trace logging;
// pass nil to disable tracing entirely.
func New(out io.Writer, log *logrus.Logger) *VM {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &VM{
		globals: make(map[string]value.Value),
		out:     out,
		log:     log,
	}
}

// RuntimeError is returned by Run when execution fails. Its Error() text
// is exactly what the driver should print to stderr.
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d] in script.", e.Message, e.Line)
}

// Run executes c to completion, returning a *RuntimeError if execution
// fails. The stack is cleared before returning on either path so a reused
// VM starts the next chunk clean.
func (vm *VM) Run(c *chunk.Chunk) error {
	vm.chunk = c
	vm.ip = 0

	for {
		if vm.log.IsLevelEnabled(logrus.DebugLevel) {
			_, text := chunk.Disassemble(vm.chunk, vm.ip)
			vm.log.Debugf("stack=%v  %s", vm.stack, text)
		}

		op := chunk.Opcode(vm.readByte())

		switch op {
		case chunk.OpConstant:
			vm.stack.push(vm.chunk.ConstantAt(vm.readByte()))

		case chunk.OpNil:
			vm.stack.push(value.Nil)
		case chunk.OpTrue:
			vm.stack.push(value.Boolean(true))
		case chunk.OpFalse:
			vm.stack.push(value.Boolean(false))

		case chunk.OpPop:
			vm.stack.pop()

		case chunk.OpEqual:
			b := vm.stack.pop()
			a := vm.stack.pop()
			vm.stack.push(value.Boolean(a.Equal(b)))
		case chunk.OpBangEqual:
			b := vm.stack.pop()
			a := vm.stack.pop()
			vm.stack.push(value.Boolean(!a.Equal(b)))

		case chunk.OpGreater:
			if err := vm.comparison(func(a, b float64) bool { return a > b }); err != nil {
				return err
			}
		case chunk.OpGreaterEqual:
			if err := vm.comparison(func(a, b float64) bool { return a >= b }); err != nil {
				return err
			}
		case chunk.OpLess:
			if err := vm.comparison(func(a, b float64) bool { return a < b }); err != nil {
				return err
			}
		case chunk.OpLessEqual:
			if err := vm.comparison(func(a, b float64) bool { return a <= b }); err != nil {
				return err
			}

		case chunk.OpAdd:
			if err := vm.add(); err != nil {
				return err
			}
		case chunk.OpSubtract:
			if err := vm.arithmetic(func(a, b float64) float64 { return a - b }); err != nil {
				return err
			}
		case chunk.OpMultiply:
			if err := vm.arithmetic(func(a, b float64) float64 { return a * b }); err != nil {
				return err
			}
		case chunk.OpDivide:
			if err := vm.divide(); err != nil {
				return err
			}

		case chunk.OpNot:
			vm.stack.push(value.Boolean(!vm.stack.pop().Truthy()))
		case chunk.OpNegate:
			if !vm.stack.peek(0).IsNumber() {
				return vm.runtimeError("Operand must be a number.")
			}
			v := vm.stack.pop()
			vm.stack.push(value.Number(-v.AsNumber()))

		case chunk.OpPrint:
			fmt.Fprintln(vm.out, vm.stack.pop().String())

		case chunk.OpDefineGlobal:
			name := vm.chunk.ConstantAt(vm.readByte()).AsString()
			vm.globals[name] = vm.stack.pop()
		case chunk.OpGetGlobal:
			name := vm.chunk.ConstantAt(vm.readByte()).AsString()
			v, ok := vm.globals[name]
			if !ok {
				return vm.runtimeError(fmt.Sprintf("Undefined variable '%s'.", name))
			}
			vm.stack.push(v)

		case chunk.OpReturn:
			vm.stack.reset()
			return nil

		default:
			return vm.runtimeError(fmt.Sprintf("Unknown opcode %d.", op))
		}
	}
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

func (vm *VM) add() error {
	b := vm.stack.peek(0)
	a := vm.stack.peek(1)

	concatable := func(v value.Value) bool { return v.IsString() || v.IsNumber() }

	switch {
	case a.IsNumber() && b.IsNumber():
		vm.stack.pop()
		vm.stack.pop()
		vm.stack.push(value.Number(a.AsNumber() + b.AsNumber()))
	case concatable(a) && concatable(b) && (a.IsString() || b.IsString()):
		// String concatenation coerces a number operand to its
		// Print-formatted text; any other mix is a runtime error.
		vm.stack.pop()
		vm.stack.pop()
		vm.stack.push(value.Str(a.String() + b.String()))
	default:
		return vm.runtimeError("Operands must be two numbers or two strings.")
	}
	return nil
}

func (vm *VM) arithmetic(op func(a, b float64) float64) error {
	if !vm.stack.peek(0).IsNumber() || !vm.stack.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	b := vm.stack.pop()
	a := vm.stack.pop()
	vm.stack.push(value.Number(op(a.AsNumber(), b.AsNumber())))
	return nil
}

func (vm *VM) divide() error {
	if !vm.stack.peek(0).IsNumber() || !vm.stack.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be numbers.")
	}
	if vm.stack.peek(0).AsNumber() == 0 {
		return vm.runtimeError("Can't divide by zero.")
	}
	b := vm.stack.pop()
	a := vm.stack.pop()
	vm.stack.push(value.Number(a.AsNumber() / b.AsNumber()))
	return nil
}

func (vm *VM) comparison(op func(a, b float64) bool) error {
	if !vm.stack.peek(0).IsNumber() || !vm.stack.peek(1).IsNumber() {
		return vm.runtimeError("Operands must be number or string.")
	}
	b := vm.stack.pop()
	a := vm.stack.pop()
	vm.stack.push(value.Boolean(op(a.AsNumber(), b.AsNumber())))
	return nil
}

func (vm *VM) runtimeError(message string) error {
	line := vm.chunk.LineAt(vm.ip - 1)
	vm.stack.reset()
	return &RuntimeError{Message: message, Line: line}
}
