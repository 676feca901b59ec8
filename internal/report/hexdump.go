package report

import (
	"fmt"
	"strings"
)

const hexRowWidth = 16

// Hexdump renders b as classic 16-byte rows with an offset column and an
// ASCII gutter. base is added to the printed offsets so a slice taken from
// the middle of a file keeps its real addresses.
func Hexdump(b []byte, base int64) string {
	var sb strings.Builder
	for row := 0; row < len(b); row += hexRowWidth {
		end := row + hexRowWidth
		if end > len(b) {
			end = len(b)
		}
		line := b[row:end]

		fmt.Fprintf(&sb, "%08x  ", base+int64(row))
		for i := 0; i < hexRowWidth; i++ {
			if i == hexRowWidth/2 {
				sb.WriteByte(' ')
			}
			if i < len(line) {
				fmt.Fprintf(&sb, "%02x ", line[i])
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString(" |")
		for _, c := range line {
			if c >= 0x20 && c <= 0x7E {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}

// HexdumpAround returns a hexdump of the region surrounding [off, off+n),
// expanded to row boundaries with up to context full rows either side.
func HexdumpAround(buf []byte, off int64, n int, context int) string {
	if len(buf) == 0 {
		return ""
	}
	lo := off - off%hexRowWidth - int64(context*hexRowWidth)
	if lo < 0 {
		lo = 0
	}
	hi := off + int64(n)
	if rem := hi % hexRowWidth; rem != 0 {
		hi += hexRowWidth - rem
	}
	hi += int64(context * hexRowWidth)
	if hi > int64(len(buf)) {
		hi = int64(len(buf))
	}
	if lo >= hi {
		return ""
	}
	return Hexdump(buf[lo:hi], lo)
}
