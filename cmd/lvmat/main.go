// SPDX-License-Identifier: MIT

// Command lvmat runs matrix scenarios from the command line.
//
//	lvmat multiply            # 3x2 matrix *= 2x3 matrix, print the result
//	lvmat add                 # 3x3 matrix += itself, print the result
//	lvmat run scenario.yaml   # run a YAML scenario
//	lvmat list                # list embedded scenarios
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
