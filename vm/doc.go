// Package vm implements a small register machine.
//
// The machine has ten signed 64-bit registers (r0-r9), a program counter (PC),
// and a three-way comparison flag. A program is a linear list of instructions;
// branch targets are absolute instruction indices. Running a program executes
// instructions until HALT, until the PC falls off the end of the program, or
// until an instruction fails. The result of a run is the value of r0.
package vm
