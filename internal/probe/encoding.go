package probe

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

// The two byte-order engines behind every multi-byte encoding. The stdlib
// orders satisfy both ByteOrder and AppendByteOrder, so they are all the
// engine we need.
var (
	le binary.ByteOrder = binary.LittleEndian
	be binary.ByteOrder = binary.BigEndian
)

// patternWidth is the width of every scan pattern: targets are always
// encoded as 32-bit values.
const patternWidth = 4

// Pattern is one encoded representation of a scan target, searched for in
// its own pass.
type Pattern struct {
	Encoding types.Encoding
	Bytes    [patternWidth]byte
}

// Patterns expands a target into its per-pass byte patterns, in the fixed
// pass order: little-endian first, then big-endian. An int-class target that
// somehow carries an unknown class is rejected here, before any scanning.
func Patterns(t types.Target) ([]Pattern, error) {
	var bits uint32
	var encLE, encBE types.Encoding

	switch t.Class {
	case types.ClassFloat:
		bits = math.Float32bits(float32(t.Float))
		encLE, encBE = types.EncFloat32LE, types.EncFloat32BE
	case types.ClassInt:
		bits = t.Uint
		encLE, encBE = types.EncUint32LE, types.EncUint32BE
	default:
		return nil, fmt.Errorf("%w: unknown value class %q", types.ErrInvalidTarget, t.Class)
	}

	pats := []Pattern{
		{Encoding: encLE},
		{Encoding: encBE},
	}
	le.PutUint32(pats[0].Bytes[:], bits)
	be.PutUint32(pats[1].Bytes[:], bits)
	return pats, nil
}
