// Command pictopt wraps an external pairwise (2-way) combinatorial test
// generator, optimizing across a seed sequence for the smallest suite that
// provably covers every value pair, then verifying and emitting it in one
// of three deterministic forms.
package main

import (
	"fmt"
	"os"
)

const cliVersion = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var code int
	switch os.Args[1] {
	case "generate":
		code = runGenerate(os.Args[2:])
	case "verify":
		code = runVerify(os.Args[2:])
	case "doctor":
		code = runDoctor(os.Args[2:])
	case "version":
		code = runVersion()
	case "licenses":
		code = runLicenses()
	case "wizard":
		code = runWizard()
	case "-h", "--help", "help":
		printUsage()
		code = 0
	default:
		fmt.Fprintf(os.Stderr, "pictopt: unknown command %q\n", os.Args[1])
		printUsage()
		code = 2
	}
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `pictopt — pairwise combinatorial test suite optimizer

Usage:
  pictopt generate --model PATH --pict-bin PATH [options]
  pictopt verify --model PATH --suite PATH [--strength N]
  pictopt doctor --pict-bin PATH
  pictopt version
  pictopt licenses
  pictopt wizard`)
}
