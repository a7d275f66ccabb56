// SPDX-License-Identifier: MIT

// Command symatrix is an interactive calculator for symbolic square
// matrices.
//
//	symatrix                          read commands from stdin
//	symatrix exec '[[x]]' '[[2]]' '*' run commands given as arguments
//	symatrix config show              print the effective configuration
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
