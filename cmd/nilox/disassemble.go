package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"nilox/compiler"
)

type disassembleCmd struct{}

func (*disassembleCmd) Name() string     { return "disassemble" }
func (*disassembleCmd) Synopsis() string { return "Compile a script and print its bytecode" }
func (*disassembleCmd) Usage() string    { return "nilox disassemble <script>\n" }
func (*disassembleCmd) SetFlags(*flag.FlagSet) {}

func (*disassembleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "File not provided")
		return subcommands.ExitUsageError
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		return subcommands.ExitFailure
	}

	c, compileErr := compiler.Compile(string(source))
	if compileErr != nil {
		return subcommands.ExitFailure
	}

	fmt.Print(c.String())
	return subcommands.ExitSuccess
}
