package emulator

import (
	"errors"

	"github.com/ezrec/regvm/translate"
	"github.com/ezrec/regvm/vm"
)

var f = translate.From

var (
	// Emulator errors
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc          int
	Instruction *vm.Instruction // nil if no instruction was fetched.
	Err         error
}

func (err *ErrRuntime) Error() string {
	if err.Instruction == nil {
		return f("@%d %v", err.Pc, err.Err)
	}
	return f("@%d '%v' %v", err.Pc, *err.Instruction, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
