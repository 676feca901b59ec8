package core

import (
	"github.com/bytesleuth/bytesleuth/internal/engine"
	"github.com/bytesleuth/bytesleuth/internal/probe"
	"github.com/bytesleuth/bytesleuth/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type (
	Config         = engine.Config
	Result         = engine.Result
	Target         = types.Target
	Window         = types.Window
	Interpretation = types.Interpretation
	Match          = types.Match
	FileReport     = types.FileReport
	FileMatches    = types.FileMatches
	Encoding       = types.Encoding
)

// ErrInvalidTarget reports a scan value that cannot be encoded as a
// four-byte pattern, the only fatal input error.
var ErrInvalidTarget = types.ErrInvalidTarget

// FloatTarget builds a scan target for an IEEE-754 single-precision value.
func FloatTarget(v float64) Target { return types.FloatTarget(v) }

// IntTarget builds a scan target for an unsigned 32-bit integer. Values
// above math.MaxUint32 are rejected with ErrInvalidTarget.
func IntTarget(v uint64) (Target, error) { return types.IntTarget(v) }

// ParseTarget parses a textual value ("60.0" or "0x3C") into a scan target.
// class is "float" or "int".
func ParseTarget(value, class string) (Target, error) {
	c, err := types.ParseValueClass(class)
	if err != nil {
		return Target{}, err
	}
	return types.ParseTarget(value, c)
}

// Interpret decodes the window of buf at offset under every encoding that
// fits the window width, in a fixed order.
func Interpret(buf []byte, offset int64, length int) (Window, []Interpretation) {
	return probe.Interpret(buf, offset, length)
}

// Scan finds every unaligned occurrence of the target's byte patterns in
// buf: all little-endian matches by ascending offset, then all big-endian.
func Scan(buf []byte, target Target) ([]Match, error) {
	return probe.Scan(buf, target)
}

// ScanPath is the stable entrypoint for other programs: it scans a file or
// directory tree for the target and returns per-file matches with stats.
func ScanPath(cfg Config, target Target) (Result, error) {
	return engine.ScanWithStats(cfg, target)
}

// AnalyzeFile reads path and interprets the length-byte window at offset.
func AnalyzeFile(path string, offset int64, length int) (FileReport, error) {
	return engine.AnalyzeFile(path, offset, length)
}
