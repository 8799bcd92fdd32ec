package vm

import (
	"cmp"
	"errors"
	"fmt"
	"log"
	"slices"
)

const (
	REGISTER_COUNT = 10 // Number of general purpose registers.
)

// VM is the simulation context for the register machine.
type VM struct {
	Verbose bool // Set to enable verbose logging.

	Pc       int                   // Index of the next instruction to fetch.
	Flag     int8                  // Sign of the last comparison.
	Register [REGISTER_COUNT]int64 // Register bank.

	Ticks int // Instructions executed since the last reset.

	program Program // Instruction store.
	halted  bool    // Set once HALT, end of program, or a fault is reached.
	fault   error   // Error that halted the machine, if any.
}

// NewVM creates a new VM with zeroed registers and an empty program.
func NewVM() (vm *VM) {
	vm = &VM{}

	return
}

// LoadProgram replaces the instruction store and sets the PC to 0.
// The registers and the comparison flag are left as they are.
func (vm *VM) LoadProgram(prog Program) {
	vm.program = slices.Clone(prog)
	vm.Pc = 0
	vm.halted = false
	vm.fault = nil

	if vm.Verbose {
		log.Printf("vm: load %d instructions", len(prog))
	}
}

// Program returns a copy of the loaded instruction store.
func (vm *VM) Program() Program {
	return slices.Clone(vm.program)
}

// Code returns the loaded instruction at 'addr'.
func (vm *VM) Code(addr int) (inst Instruction, ok bool) {
	if !vm.program.Valid(addr) {
		return
	}

	return vm.program[addr], true
}

// Halted returns true once the machine can no longer execute instructions.
func (vm *VM) Halted() bool {
	return vm.halted
}

// Reset the VM state.
// - Clears the registers and the comparison flag.
// - Zeros the tick counter.
// - Rewinds the PC to the start of the loaded program.
func (vm *VM) Reset() {
	if vm.Verbose {
		log.Printf("vm: reset")
	}

	clear(vm.Register[:])
	vm.Flag = 0
	vm.Ticks = 0
	vm.Pc = 0
	vm.halted = false
	vm.fault = nil
}

// String returns the current VM state as a string.
func (vm *VM) String() (text string) {
	text += fmt.Sprintf("Program Counter: %d\n", vm.Pc)
	text += fmt.Sprintf("Comparison Flag: %d\n", vm.Flag)
	text += "Registers:\n"
	for n, val := range vm.Register {
		text += fmt.Sprintf("R%d: %d\n", n, val)
	}

	return
}

// checkRegister verifies that 'index' names a register.
func (vm *VM) checkRegister(index int) (err error) {
	if index < 0 || index >= len(vm.Register) {
		err = ErrRegister(index)
	}

	return
}

// Value returns the value denoted by the operand.
func (vm *VM) Value(src Operand) (value int64, err error) {
	switch src.Kind {
	case OPERAND_IMM:
		value = src.Value
	case OPERAND_REG:
		if src.Value < 0 || src.Value >= int64(len(vm.Register)) {
			err = ErrRegister(src.Value)
			return
		}
		value = vm.Register[src.Value]
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// FetchCode fetches the instruction at the PC, and advances the PC past it.
// Returns false if the PC is at or past the end of the program.
func (vm *VM) FetchCode() (inst Instruction, ok bool) {
	if vm.Pc < 0 || vm.Pc >= len(vm.program) {
		return
	}

	inst = vm.program[vm.Pc]
	vm.Pc++
	ok = true

	return
}

// Execute executes a single decoded instruction.
//
// The PC must already point past the instruction; branches overwrite it.
// Returns false if the instruction requests a halt.
func (vm *VM) Execute(inst Instruction) (cont bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(inst), err)
		}
	}()
	if vm.Verbose {
		log.Printf("vm: %03d: %v", vm.Pc-1, inst)
	}

	switch inst.Op {
	case OP_MOV, OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		err = vm.checkRegister(inst.Dest)
		if err != nil {
			return
		}
		var val int64
		val, err = vm.Value(inst.Src)
		if err != nil {
			return
		}
		var output int64
		output, err = vm.doAlu(inst.Op, vm.Register[inst.Dest], val)
		if err != nil {
			return
		}
		vm.Register[inst.Dest] = output
	case OP_CMP:
		err = vm.checkRegister(inst.Dest)
		if err != nil {
			return
		}
		var val int64
		val, err = vm.Value(inst.Src)
		if err != nil {
			return
		}
		vm.Flag = int8(cmp.Compare(vm.Register[inst.Dest], val))
	case OP_JMP, OP_JE, OP_JNE, OP_JG, OP_JL:
		if !vm.taken(inst.Op) {
			break
		}
		if !vm.program.Valid(inst.Addr) {
			err = ErrTarget(inst.Addr)
			return
		}
		vm.Pc = inst.Addr
	case OP_HALT:
		vm.Ticks++
		return
	default:
		err = ErrOpcodeInvalid
		return
	}

	vm.Ticks++
	cont = true

	return
}

// taken returns true if the branch predicate holds for the current flag.
func (vm *VM) taken(op Opcode) bool {
	switch op {
	case OP_JE:
		return vm.Flag == 0
	case OP_JNE:
		return vm.Flag != 0
	case OP_JG:
		return vm.Flag > 0
	case OP_JL:
		return vm.Flag < 0
	}

	return true
}

// doAlu performs the requested arithmetic, and returns the output value.
// Results wrap on overflow; the most negative value divided by -1 is itself.
func (vm *VM) doAlu(op Opcode, input int64, value int64) (output int64, err error) {
	switch op {
	case OP_MOV:
		output = value
	case OP_ADD:
		output = input + value
	case OP_SUB:
		output = input - value
	case OP_MUL:
		output = input * value
	case OP_DIV:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input / value
	}

	return
}

// Tick executes a single fetch and execute cycle.
// Returns true once the machine has halted.
func (vm *VM) Tick() (done bool, err error) {
	if vm.halted {
		return true, vm.fault
	}

	inst, ok := vm.FetchCode()
	if !ok {
		if vm.Verbose {
			log.Printf("vm: end of program at %03d", vm.Pc)
		}
		vm.halted = true
		return true, nil
	}

	cont, err := vm.Execute(inst)
	if err != nil {
		vm.halted = true
		vm.fault = err
		return true, err
	}

	if !cont {
		vm.halted = true
		done = true
	}

	return
}

// Run executes the program until it halts, and returns the value of r0.
func (vm *VM) Run() (result int64, err error) {
	for done := false; !done; {
		done, err = vm.Tick()
		if err != nil {
			return
		}
	}

	result = vm.Register[0]
	return
}
