package probe

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

// Interpret reads a window of up to length bytes at offset and decodes it
// under every encoding whose fixed width matches the actual window length.
//
// The selection is deliberately narrow: 4-byte windows get the six 32-bit
// numeric encodings in a fixed order, 2-byte windows the two uint16
// encodings, 1-byte windows uint8/int8 plus ASCII for printable bytes.
// Every other length produces no fixed-width interpretations. A UTF-8 decode
// of the whole window is attempted regardless and included only when it is
// valid and fully printable.
//
// The returned order is part of the contract; callers render it as-is. An
// offset at or past the end of the buffer yields an empty window.
func Interpret(buf []byte, offset int64, length int) (types.Window, []types.Interpretation) {
	w := window(buf, offset, length)
	b := []byte(w.Bytes)

	out := make([]types.Interpretation, 0, 7)
	switch len(b) {
	case 4:
		out = append(out,
			types.Interpretation{Encoding: types.EncFloat32LE, Value: float64(math.Float32frombits(le.Uint32(b)))},
			types.Interpretation{Encoding: types.EncFloat32BE, Value: float64(math.Float32frombits(be.Uint32(b)))},
			types.Interpretation{Encoding: types.EncUint32LE, Value: uint64(le.Uint32(b))},
			types.Interpretation{Encoding: types.EncUint32BE, Value: uint64(be.Uint32(b))},
			types.Interpretation{Encoding: types.EncInt32LE, Value: int64(int32(le.Uint32(b)))},
			types.Interpretation{Encoding: types.EncInt32BE, Value: int64(int32(be.Uint32(b)))},
		)
	case 2:
		out = append(out,
			types.Interpretation{Encoding: types.EncUint16LE, Value: uint64(le.Uint16(b))},
			types.Interpretation{Encoding: types.EncUint16BE, Value: uint64(be.Uint16(b))},
		)
	case 1:
		out = append(out,
			types.Interpretation{Encoding: types.EncUint8, Value: uint64(b[0])},
			types.Interpretation{Encoding: types.EncInt8, Value: int64(int8(b[0]))},
		)
		if b[0] >= 0x20 && b[0] <= 0x7E {
			out = append(out, types.Interpretation{Encoding: types.EncASCII, Value: string(rune(b[0]))})
		}
	}

	if s, ok := printableUTF8(b); ok {
		out = append(out, types.Interpretation{Encoding: types.EncUTF8, Value: s})
	}
	return w, out
}

// window clamps the requested range to the buffer. Negative offsets and
// non-positive lengths yield an empty window rather than a panic; the CLI
// rejects them earlier.
func window(buf []byte, offset int64, length int) types.Window {
	w := types.Window{Offset: offset, Requested: length}
	if offset < 0 || length < 1 || offset >= int64(len(buf)) {
		return w
	}
	end := offset + int64(length)
	if end > int64(len(buf)) {
		end = int64(len(buf))
	}
	w.Bytes = types.HexBytes(buf[offset:end])
	return w
}

// printableUTF8 decodes b as UTF-8 and accepts it only when the whole window
// is valid and every rune is printable. Failure is local: the caller simply
// omits the text interpretation.
func printableUTF8(b []byte) (string, bool) {
	if len(b) == 0 || !utf8.Valid(b) {
		return "", false
	}
	s := string(b)
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return "", false
		}
	}
	return s, true
}
