// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/regvm/emulator"
	"github.com/ezrec/regvm/vm"
)

func main() {
	var n int64
	var limit int
	var listing bool
	var verbose bool

	flag.Int64Var(&n, "n", 5, "Factorial input")
	flag.IntVar(&limit, "t", 0, "Tick limit (0 for none)")
	flag.BoolVar(&listing, "l", false, "Print the program listing, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if n < 0 {
		log.Fatalf("%v: -n %d: must not be negative", os.Args[0], n)
	}

	prog := vm.Factorial(n)

	if listing {
		fmt.Print(prog.String())
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.TickLimit = limit

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	result, err := emu.Run()
	if err != nil {
		log.Print(emu.VM.String())
		log.Fatal(err)
	}

	fmt.Printf("Factorial of %d: %d\n", n, result)
}
