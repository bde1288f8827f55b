// Command nilox is the CLI entry point: a REPL when given no arguments,
// a script runner when given one, and a bytecode disassembler as a named
// subcommand.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "disassemble" {
		subcommands.Register(subcommands.HelpCommand(), "")
		subcommands.Register(&disassembleCmd{}, "")
		flag.Parse()
		os.Exit(int(subcommands.Execute(context.Background())))
	}

	trace := flag.Bool("trace", false, "log every instruction the VM dispatches")
	flag.Parse()
	args := flag.Args()

	switch len(args) {
	case 0:
		os.Exit(runREPL(*trace))
	case 1:
		os.Exit(runFile(args[0], *trace))
	default:
		fmt.Println("Usage: nilox [script]")
		os.Exit(exitUsageError)
	}
}

const (
	exitOK         = 0
	exitCompileErr = 65
	exitRuntimeErr = 66
	exitUsageError = 64
)
