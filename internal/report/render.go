// Package report renders interpretation and scan results for humans:
// banner-framed interpretation listings, columnar match lines, an optional
// bordered table, and hexdumps for context views.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

// PrintOptions controls rendering details and the summary footer.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	BytesScanned int64
}

const banner = "============================================================"
const rule = "----------------------------------------"

// displayName maps encoding tags to the labels used in listings.
func displayName(e types.Encoding) string {
	switch e {
	case types.EncFloat32LE:
		return "Float (LE)"
	case types.EncFloat32BE:
		return "Float (BE)"
	case types.EncUint32LE:
		return "Uint32 (LE)"
	case types.EncUint32BE:
		return "Uint32 (BE)"
	case types.EncInt32LE:
		return "Int32 (LE)"
	case types.EncInt32BE:
		return "Int32 (BE)"
	case types.EncUint16LE:
		return "Uint16 (LE)"
	case types.EncUint16BE:
		return "Uint16 (BE)"
	case types.EncUint8:
		return "Uint8"
	case types.EncInt8:
		return "Int8"
	case types.EncASCII:
		return "ASCII"
	case types.EncUTF8:
		return "UTF-8 String"
	default:
		return string(e)
	}
}

func colorize(s string, opts PrintOptions) string {
	if opts.NoColor {
		return s
	}
	return "\x1b[36m" + s + "\x1b[0m" // cyan
}

// PrintInterpretations renders the analyze listing: a framed header with the
// file name and offset in hex and decimal, the raw window bytes, then one
// right-aligned value column per interpretation in decode order. Text
// interpretations are quoted; a short window gets a warning line first.
func PrintInterpretations(w io.Writer, rep types.FileReport, opts PrintOptions) {
	win := rep.Window
	if win.Short() {
		fmt.Fprintf(w, "Warning: Only read %d bytes (requested %d)\n", len(win.Bytes), win.Requested)
	}

	fmt.Fprintf(w, "\n%s\n", banner)
	fmt.Fprintf(w, "File: %s\n", filepath.Base(rep.Path))
	fmt.Fprintf(w, "Offset: 0x%X (%d decimal)\n", win.Offset, win.Offset)
	fmt.Fprintf(w, "Size: %d bytes  Digest: %s\n", rep.Size, rep.Digest)
	fmt.Fprintf(w, "%s\n\n", banner)

	fmt.Fprintf(w, "Raw Bytes: %s\n\n", win.Bytes)

	numeric := false
	var text []types.Interpretation
	for _, in := range rep.Interpretations {
		if _, isText := in.Text(); isText {
			text = append(text, in)
			continue
		}
		if !numeric {
			fmt.Fprintln(w, "Interpretations:")
			fmt.Fprintln(w, rule)
			numeric = true
		}
		label := colorize(fmt.Sprintf("%-12s", displayName(in.Encoding)+":"), opts)
		switch v := in.Value.(type) {
		case float64:
			fmt.Fprintf(w, "  %s %15.6f\n", label, v)
		case uint64:
			fmt.Fprintf(w, "  %s %15d\n", label, v)
		case int64:
			fmt.Fprintf(w, "  %s %15d\n", label, v)
		}
	}
	for _, in := range text {
		s, _ := in.Text()
		if in.Encoding == types.EncASCII {
			fmt.Fprintf(w, "  %s %15s\n", colorize(fmt.Sprintf("%-12s", "ASCII:"), opts), "'"+s+"'")
			continue
		}
		fmt.Fprintf(w, "\nUTF-8 String: %q\n", s)
	}
	fmt.Fprintln(w)
}

// PrintMatches renders the scan listing: one line per match with the offset
// in hex and decimal, the matched bytes, and the encoding that matched, in
// the engine's pass-then-offset order. Paths prefix each file's block when
// more than one file matched.
func PrintMatches(w io.Writer, files []types.FileMatches, opts PrintOptions) {
	total := 0
	for _, f := range files {
		total += len(f.Matches)
	}
	if total == 0 {
		fmt.Fprintln(w, "No matches found.")
	} else {
		fmt.Fprintf(w, "Found %d match(es):\n\n", total)
		for _, f := range files {
			if len(files) > 1 {
				fmt.Fprintf(w, "%s (%d bytes, %s):\n", f.Path, f.Size, f.Digest)
			}
			for _, m := range f.Matches {
				enc := colorize(string(m.Encoding), opts)
				fmt.Fprintf(w, "  Offset 0x%04X (%5d): %s [%s]\n", m.Offset, m.Offset, m.Bytes, enc)
			}
		}
	}
	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Matches: %d\n", total)
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d (%d bytes)\n", opts.FilesScanned, opts.BytesScanned)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
}
