// Package engine wires the probe core to the filesystem. It reads target
// files into memory, walks directory trees with glob filters, runs the
// offset interpreter and pattern scanner over each buffer, and returns
// structured results with timing and size statistics. This package is
// internal; external consumers should use the stable facade in pkg/core.
package engine
