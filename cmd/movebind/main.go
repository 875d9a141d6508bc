// Command movebind parses, resolves, decodes and encodes Move struct types
// from the command line.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		writeError(os.Stderr, err)
		os.Exit(1)
	}
}
