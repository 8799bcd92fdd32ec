// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/regvm/vm"
)

// Emulator state. VM + program + tick budget.
type Emulator struct {
	Verbose   bool       // If set, enables verbose logging.
	*vm.VM               // Reference to the VM simulation.
	Program   vm.Program // Reference to the currently running program.
	TickLimit int        // If non-zero, the maximum instructions per run.

	fault error // Runtime error that halted the VM, if any.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		VM: vm.NewVM(),
	}

	return
}

// Reset the emulator state, and load the program.
func (emu *Emulator) Reset() (err error) {
	emu.VM.Verbose = emu.Verbose

	emu.VM.Reset()
	emu.VM.LoadProgram(emu.Program)
	emu.fault = nil

	if emu.Verbose {
		log.Printf("emulator: reset, %d instructions, tick limit %d", len(emu.Program), emu.TickLimit)
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.VM.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.VM.Pc
}

// Code returns the loaded instruction at the program counter.
func (emu *Emulator) Code() (inst vm.Instruction, ok bool) {
	return emu.VM.Code(emu.VM.Pc)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set VM verbosity
	emu.VM.Verbose = emu.Verbose

	// Halted is absorbing; report the original fault.
	if emu.VM.Halted() {
		return true, emu.fault
	}

	pc := emu.VM.Pc
	inst, ok := emu.Code()
	defer func() {
		if err != nil {
			rt := &ErrRuntime{Pc: pc, Err: err}
			if ok {
				rt.Instruction = &inst
			}
			err = rt
			if emu.VM.Halted() {
				emu.fault = err
			}
		}
	}()

	// Only an instruction about to be fetched counts against the limit.
	if ok && emu.TickLimit > 0 && emu.VM.Ticks >= emu.TickLimit {
		err = ErrTickLimit
		return
	}

	done, err = emu.VM.Tick()

	return
}

// Run ticks the emulator until done, and returns the value of r0.
func (emu *Emulator) Run() (result int64, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	result = emu.VM.Register[0]

	if emu.Verbose {
		log.Printf("emulator: done after %d ticks, r0 = %d", emu.VM.Ticks, result)
	}

	return
}
