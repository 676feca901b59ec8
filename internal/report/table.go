package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

// PrintMatchTable renders matches as a bordered table, one row per match,
// followed by the same summary footer as the plain listing.
func PrintMatchTable(w io.Writer, files []types.FileMatches, opts PrintOptions) error {
	total := 0
	for _, f := range files {
		total += len(f.Matches)
	}
	if total == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	t := tablewriter.NewTable(w)
	t.Header([]string{"Offset", "Dec", "Bytes", "Encoding", "File"})
	for _, f := range files {
		for _, m := range f.Matches {
			row := []string{
				fmt.Sprintf("0x%04X", m.Offset),
				fmt.Sprintf("%d", m.Offset),
				m.Bytes.String(),
				string(m.Encoding),
				f.Path,
			}
			if err := t.Append(row); err != nil {
				return err
			}
		}
	}
	if err := t.Render(); err != nil {
		return err
	}

	if opts.Duration > 0 || opts.FilesScanned > 0 {
		fmt.Fprintf(w, "\nMatches: %d\n", total)
		if opts.FilesScanned > 0 {
			fmt.Fprintf(w, "Files scanned: %d (%d bytes)\n", opts.FilesScanned, opts.BytesScanned)
		}
		if opts.Duration > 0 {
			fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
		}
	}
	return nil
}
