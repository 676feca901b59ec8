// Package core provides a small, stable facade over bytesleuth's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so other tools can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	target := core.FloatTarget(60.0)
//	res, err := core.ScanPath(core.Config{Root: "."}, target)
//	if err != nil { /* handle */ }
//	_ = core.MarshalMatches(os.Stdout, res.Files)
package core
