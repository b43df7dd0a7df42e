// Command syracuse evaluates recurrence sequences from the command line:
// single terms, cycle statistics against a target, and concurrent batches.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
