package vm

import (
	"fmt"
	"strings"
)

// Program is an ordered list of instructions, addressed by index.
type Program []Instruction

// Len returns the number of instructions in the program.
func (prog Program) Len() int {
	return len(prog)
}

// Valid returns true if 'addr' is the index of an instruction in the program.
func (prog Program) Valid(addr int) bool {
	return addr >= 0 && addr < len(prog)
}

// String returns an indexed listing of the program.
func (prog Program) String() string {
	var sb strings.Builder
	for n, inst := range prog {
		fmt.Fprintf(&sb, "%03d: %v\n", n, inst)
	}
	return sb.String()
}

// Factorial returns a program that leaves n! in r0. The program counts r0
// down to zero, so a negative n will effectively never halt.
//
//	r0 = n
//	r1 = 1
//	loop: if r0 == 0 goto done
//	r1 *= r0
//	r0 -= 1
//	goto loop
//	done: r0 = r1
func Factorial(n int64) Program {
	return Program{
		MakeMov(0, Imm(n)),
		MakeMov(1, Imm(1)),
		MakeCmp(0, Imm(0)),
		MakeJe(7),
		MakeMul(1, Reg(0)),
		MakeSub(0, Imm(1)),
		MakeJmp(2),
		MakeMov(0, Reg(1)),
		MakeHalt(),
	}
}
