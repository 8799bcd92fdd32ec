package emulator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/regvm/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.VM)
	assert.Equal(0, emu.TickLimit)
}

func doRun(emu *Emulator, program vm.Program, t *testing.T) (result int64, err error) {
	assert := assert.New(t)

	emu.Program = program
	err = emu.Reset()
	assert.NoError(err)

	return emu.Run()
}

func TestEmulatorFactorial(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	table := []struct {
		n      int64
		result int64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}

	for _, entry := range table {
		result, err := doRun(emu, vm.Factorial(entry.n), t)
		assert.NoError(err)
		assert.Equal(entry.result, result)
		assert.Equal(int64(entry.result), emu.VM.Register[1])
	}
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	_, err := doRun(emu, vm.Program{vm.MakeMov(3, vm.Imm(5)), vm.MakeCmp(3, vm.Imm(9))}, t)
	assert.NoError(err)
	assert.Equal(int64(5), emu.VM.Register[3])
	assert.Equal(int8(-1), emu.VM.Flag)

	// Unlike LoadProgram, Reset starts from a clean machine.
	result, err := doRun(emu, vm.Program{vm.MakeAdd(0, vm.Reg(3))}, t)
	assert.NoError(err)
	assert.Equal(int64(0), result)
	assert.Equal(int8(0), emu.VM.Flag)
	assert.Equal(1, emu.Ticks())
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Program = vm.Factorial(2)
	assert.NoError(emu.Reset())

	inst, ok := emu.Code()
	assert.True(ok)
	assert.Equal(vm.MakeMov(0, vm.Imm(2)), inst)

	var ticks int
	for {
		done, err := emu.Tick()
		assert.NoError(err)
		if done {
			break
		}
		ticks++
	}

	assert.Equal(emu.Ticks(), ticks+1)
	assert.Equal(int64(2), emu.VM.Register[0])
	assert.Equal(9, emu.Pc())

	_, ok = emu.Code()
	assert.False(ok)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := vm.Program{
		vm.MakeMov(0, vm.Imm(10)),
		vm.MakeMov(1, vm.Imm(0)),
		vm.MakeDiv(0, vm.Reg(1)),
	}

	_, err := doRun(emu, program, t)
	assert.ErrorIs(err, vm.ErrDivisionByZero)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(2, rt.Pc)
	assert.NotNil(rt.Instruction)
	assert.Equal(program[2], *rt.Instruction)
	assert.Equal(3, emu.Pc())
	assert.Equal(int64(10), emu.VM.Register[0])

	// Later ticks report the same fault, at the faulting instruction.
	done, again := emu.Tick()
	assert.True(done)
	assert.Same(err, again)
	assert.Equal(2, rt.Pc)

	// Reset clears the fault.
	result, err := doRun(emu, vm.Factorial(3), t)
	assert.NoError(err)
	assert.Equal(int64(6), result)
}

func TestErrRuntime(t *testing.T) {
	assert := assert.New(t)

	inst := vm.MakeDiv(0, vm.Reg(1))
	err := &ErrRuntime{Pc: 2, Instruction: &inst, Err: vm.ErrDivisionByZero}
	assert.Contains(err.Error(), "@2 'div r0, r1'")

	err = &ErrRuntime{Pc: 3, Err: ErrTickLimit}
	assert.Contains(err.Error(), "@3 ")
	assert.NotContains(err.Error(), "'")
	assert.ErrorIs(err, ErrTickLimit)
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.TickLimit = 100

	_, err := doRun(emu, vm.Program{vm.MakeAdd(0, vm.Imm(1)), vm.MakeJmp(0)}, t)
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(100, emu.Ticks())
	assert.Equal(int64(50), emu.VM.Register[0])

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(0, rt.Pc)
	assert.NotNil(rt.Instruction)

	table := []struct {
		name    string
		limit   int
		program vm.Program
		result  int64
		err     error
	}{
		{"within_limit", 100, vm.Factorial(5), 120, nil},
		{"end_at_limit", 2, vm.Program{vm.MakeMov(0, vm.Imm(3)), vm.MakeAdd(0, vm.Imm(4))}, 7, nil},
		{"halt_at_limit", 2, vm.Program{vm.MakeMov(0, vm.Imm(3)), vm.MakeHalt()}, 3, nil},
		{"over_limit", 1, vm.Program{vm.MakeMov(0, vm.Imm(3)), vm.MakeAdd(0, vm.Imm(4))}, 0, ErrTickLimit},
		{"empty", 1, vm.Program{}, 0, nil},
	}

	for _, entry := range table {
		emu.TickLimit = entry.limit
		result, err := doRun(emu, entry.program, t)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)
		assert.Equal(entry.result, result, entry.name)
	}
}
