package core_test

import (
	"fmt"
	"os"

	"github.com/bytesleuth/bytesleuth/pkg/core"
)

// ExampleScanPath demonstrates how to hunt a directory for a float value.
func ExampleScanPath() {
	// 1. Configure the scan
	cfg := core.Config{
		Root:         ".",           // Scan the current directory
		Threads:      4,             // Number of concurrent workers
		IncludeGlobs: "**/*.bin",    // Only scan .bin files (optional)
		MaxBytes:     1024 * 1024,   // Skip files larger than 1MB
	}

	// 2. Run the scan
	result, err := core.ScanPath(cfg, core.FloatTarget(60.0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		return
	}

	// 3. Process matches
	if result.Matches == 0 {
		fmt.Println("No matches found.")
	} else {
		fmt.Printf("Found %d matches in %d files.\n", result.Matches, len(result.Files))
		// Helper to write JSON output to stdout
		_ = core.MarshalMatches(os.Stdout, result.Files)
	}
}

// ExampleInterpret shows how to decode a byte window without touching disk.
func ExampleInterpret() {
	buf := []byte{0x00, 0x00, 0x70, 0x42}

	win, ints := core.Interpret(buf, 0, 4)
	fmt.Printf("window: %s\n", win.Bytes)
	fmt.Printf("%s: %v\n", ints[0].Encoding, ints[0].Value)
	fmt.Printf("%s: %v\n", ints[2].Encoding, ints[2].Value)
	fmt.Printf("%s: %v\n", ints[3].Encoding, ints[3].Value)
	// Output:
	// window: 00 00 70 42
	// float32_le: 60
	// uint32_le: 1114636288
	// uint32_be: 28738
}
