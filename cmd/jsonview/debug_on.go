//go:build debug

package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

// printDebugBacktrace is compiled in under `-tags debug`, printing a stack
// trace after the error message.
func printDebugBacktrace(err error) {
	fmt.Fprintln(os.Stderr, string(debug.Stack()))
}
