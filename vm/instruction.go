package vm

import (
	"fmt"
)

// Operand is either a register reference or an immediate value.
type Operand struct {
	Kind  OperandKind
	Value int64 // Register index, or the immediate literal.
}

// Reg creates a register operand.
func Reg(index int) Operand {
	return Operand{Kind: OPERAND_REG, Value: int64(index)}
}

// Imm creates an immediate operand.
func Imm(value int64) Operand {
	return Operand{Kind: OPERAND_IMM, Value: value}
}

// String returns the operand as 'rN' or '#N'.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REG:
		return fmt.Sprintf("r%d", op.Value)
	case OPERAND_IMM:
		return fmt.Sprintf("#%d", op.Value)
	}

	return fmt.Sprintf("%v(%d)", op.Kind, op.Value)
}

// Instruction is a single decoded instruction.
//
// Dest and Src are used by the register opcodes (mov through cmp),
// Addr by the branch opcodes, and halt uses neither.
type Instruction struct {
	Op   Opcode
	Dest int
	Src  Operand
	Addr int
}

func makeOperand(op Opcode, dest int, src Operand) Instruction {
	return Instruction{Op: op, Dest: dest, Src: src}
}

func makeBranch(op Opcode, addr int) Instruction {
	return Instruction{Op: op, Addr: addr}
}

// MakeMov creates a 'dest = src' instruction.
func MakeMov(dest int, src Operand) Instruction { return makeOperand(OP_MOV, dest, src) }

// MakeAdd creates a 'dest += src' instruction.
func MakeAdd(dest int, src Operand) Instruction { return makeOperand(OP_ADD, dest, src) }

// MakeSub creates a 'dest -= src' instruction.
func MakeSub(dest int, src Operand) Instruction { return makeOperand(OP_SUB, dest, src) }

// MakeMul creates a 'dest *= src' instruction.
func MakeMul(dest int, src Operand) Instruction { return makeOperand(OP_MUL, dest, src) }

// MakeDiv creates a 'dest /= src' instruction.
func MakeDiv(dest int, src Operand) Instruction { return makeOperand(OP_DIV, dest, src) }

// MakeCmp creates an instruction comparing register 'reg' against 'src'.
func MakeCmp(reg int, src Operand) Instruction { return makeOperand(OP_CMP, reg, src) }

// MakeJmp creates an unconditional branch.
func MakeJmp(addr int) Instruction { return makeBranch(OP_JMP, addr) }

// MakeJe creates a branch taken when the last compare was equal.
func MakeJe(addr int) Instruction { return makeBranch(OP_JE, addr) }

// MakeJne creates a branch taken when the last compare was not equal.
func MakeJne(addr int) Instruction { return makeBranch(OP_JNE, addr) }

// MakeJg creates a branch taken when the last compare was greater.
func MakeJg(addr int) Instruction { return makeBranch(OP_JG, addr) }

// MakeJl creates a branch taken when the last compare was less.
func MakeJl(addr int) Instruction { return makeBranch(OP_JL, addr) }

// MakeHalt creates a halt instruction.
func MakeHalt() Instruction { return Instruction{Op: OP_HALT} }

// String returns a human readable form of the instruction.
func (inst Instruction) String() string {
	switch {
	case inst.Op.HasOperand():
		return fmt.Sprintf("%v r%d, %v", inst.Op, inst.Dest, inst.Src)
	case inst.Op.IsBranch():
		return fmt.Sprintf("%v @%d", inst.Op, inst.Addr)
	}

	return inst.Op.String()
}
