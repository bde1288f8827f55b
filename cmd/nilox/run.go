package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"nilox/compiler"
	"nilox/vm"
)

func newLogger(trace bool) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if trace {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// runFile compiles and executes the script at path, returning the process
// exit code.
func runFile(path string, trace bool) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		return exitUsageError
	}

	c, compileErr := compiler.Compile(string(source))
	if compileErr != nil {
		return exitCompileErr
	}

	machine := vm.New(os.Stdout, newLogger(trace))
	if runtimeErr := machine.Run(c); runtimeErr != nil {
		fmt.Fprintln(os.Stderr, runtimeErr.Error())
		return exitRuntimeErr
	}
	return exitOK
}
