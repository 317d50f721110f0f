//go:build !debug

package main

// printDebugBacktrace is a no-op in release builds.
func printDebugBacktrace(err error) {}
