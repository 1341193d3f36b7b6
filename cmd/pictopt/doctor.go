package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
)

// runDoctor is a stub of the full interactive diagnostic flow (out of
// scope, SPEC_FULL §6.3): it only checks whether the external generator
// binary is resolvable and executable.
func runDoctor(args []string) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	pictBin := fs.String("pict-bin", os.Getenv("PICTOPT_BIN"), "path to the external generator binary")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *pictBin == "" {
		fmt.Fprintln(os.Stderr, "pictopt doctor: no binary given (--pict-bin or PICTOPT_BIN)")
		return 2
	}

	resolved, err := exec.LookPath(*pictBin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pictopt doctor: %q is not resolvable: %v\n", *pictBin, err)
		return 2
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		fmt.Fprintf(os.Stderr, "pictopt doctor: %q is not a regular file\n", resolved)
		return 2
	}

	fmt.Printf("pictopt doctor: generator binary OK at %s\n", resolved)
	return 0
}
