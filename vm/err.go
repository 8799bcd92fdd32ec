package vm

import (
	"errors"

	"github.com/ezrec/regvm/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrInvalidRegister       = errors.New(f("register invalid"))
	ErrDivisionByZero        = errors.New(f("division by zero"))
	ErrInvalidProgramCounter = errors.New(f("program counter invalid"))

	// Decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
)

// ErrInstruction identifies the instruction that failed.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction '%v'", Instruction(ei).String())
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}

// ErrRegister is the out of range register index.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register r%v out of range", int(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrInvalidRegister
}

// ErrTarget is the out of range branch target.
type ErrTarget int

func (et ErrTarget) Error() string {
	return f("target @%v out of range", int(et))
}

func (et ErrTarget) Unwrap() error {
	return ErrInvalidProgramCounter
}
