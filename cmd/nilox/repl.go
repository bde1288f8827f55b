package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"nilox/compiler"
	"nilox/vm"
)

// runREPL reads one line at a time, compiles and runs it against a
// shared VM so global variables persist across lines, until the input
// stream closes.
func runREPL(trace bool) int {
	rl, err := readline.New("> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start REPL: %v\n", err)
		return exitRuntimeErr
	}
	defer rl.Close()

	machine := vm.New(os.Stdout, newLogger(trace))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return exitOK
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return exitRuntimeErr
		}

		if strings.TrimSpace(line) == "" {
			fmt.Println("Please enter something to execute")
			continue
		}

		c, compileErr := compiler.Compile(line)
		if compileErr != nil {
			continue
		}
		if runtimeErr := machine.Run(c); runtimeErr != nil {
			fmt.Fprintln(os.Stderr, runtimeErr.Error())
		}
	}
}
