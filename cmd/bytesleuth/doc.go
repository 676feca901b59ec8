// Package bytesleuth provides the command-line interface for the bytesleuth
// tool. It configures subcommands (analyze, scan, completion), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/bytesleuth/bytesleuth/cmd/bytesleuth"
//	func main() { bytesleuth.Execute() }
package bytesleuth
