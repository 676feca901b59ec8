// Package probe is the analytic core: pure functions over an in-memory byte
// buffer that either decode a window at a chosen offset under every plausible
// fixed-width encoding, or locate every byte-exact occurrence of a known
// numeric value anywhere in the buffer.
//
// Nothing here touches the filesystem or keeps state between calls; file
// reading, result formatting and exit codes belong to the engine and CLI
// layers.
package probe
