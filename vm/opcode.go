package vm

// Opcode is an instruction operation type.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MOV  = Opcode(0)  // mov
	OP_ADD  = Opcode(1)  // add
	OP_SUB  = Opcode(2)  // sub
	OP_MUL  = Opcode(3)  // mul
	OP_DIV  = Opcode(4)  // div
	OP_CMP  = Opcode(5)  // cmp
	OP_JMP  = Opcode(6)  // jmp
	OP_JE   = Opcode(7)  // je
	OP_JNE  = Opcode(8)  // jne
	OP_JG   = Opcode(9)  // jg
	OP_JL   = Opcode(10) // jl
	OP_HALT = Opcode(11) // halt
)

// IsBranch returns true if the opcode may assign the program counter.
func (op Opcode) IsBranch() bool {
	return op >= OP_JMP && op <= OP_JL
}

// HasOperand returns true if the opcode takes a register and a source operand.
func (op Opcode) HasOperand() bool {
	return op >= OP_MOV && op <= OP_CMP
}

// OperandKind is a Register-or-Immediate decode type.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REG = OperandKind(0) // reg
	OPERAND_IMM = OperandKind(1) // imm
)
