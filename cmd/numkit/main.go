// SPDX-License-Identifier: MIT

// Command numkit prints the results of numkit library functions for quick
// inspection and evaluates YAML batch job files.
package main

func main() {
	Execute()
}
