package types

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Encoding identifies one interpretation of raw bytes: a fixed-width numeric
// type with an endianness, or a textual decode of the whole window.
type Encoding string

const (
	EncUint8     Encoding = "uint8"
	EncInt8      Encoding = "int8"
	EncUint16LE  Encoding = "uint16_le"
	EncUint16BE  Encoding = "uint16_be"
	EncUint32LE  Encoding = "uint32_le"
	EncUint32BE  Encoding = "uint32_be"
	EncInt32LE   Encoding = "int32_le"
	EncInt32BE   Encoding = "int32_be"
	EncFloat32LE Encoding = "float32_le"
	EncFloat32BE Encoding = "float32_be"
	EncASCII     Encoding = "ascii"
	EncUTF8      Encoding = "utf8"
)

// Width returns the fixed byte width of the encoding. Text encodings are
// variable-width and report 0.
func (e Encoding) Width() int {
	switch e {
	case EncUint8, EncInt8, EncASCII:
		return 1
	case EncUint16LE, EncUint16BE:
		return 2
	case EncUint32LE, EncUint32BE, EncInt32LE, EncInt32BE, EncFloat32LE, EncFloat32BE:
		return 4
	default:
		return 0
	}
}

// ValueClass selects how a scan target is encoded before searching.
type ValueClass string

const (
	ClassFloat ValueClass = "float"
	ClassInt   ValueClass = "int"
)

// ParseValueClass validates a user-supplied class string.
func ParseValueClass(s string) (ValueClass, error) {
	switch ValueClass(strings.ToLower(strings.TrimSpace(s))) {
	case ClassFloat:
		return ClassFloat, nil
	case ClassInt:
		return ClassInt, nil
	default:
		return "", fmt.Errorf("%w: unknown value class %q (want float or int)", ErrInvalidTarget, s)
	}
}

// ErrInvalidTarget reports a scan target that cannot be parsed as the
// requested class, or an integer target outside the uint32 range. It is the
// only fatal error in the core and is raised before any scanning begins.
var ErrInvalidTarget = errors.New("invalid scan target")

// Target is a value to search for, already validated for its class.
type Target struct {
	Raw   string     `json:"raw,omitempty"`
	Class ValueClass `json:"class"`
	Float float64    `json:"-"` // set when Class == ClassFloat
	Uint  uint32     `json:"-"` // set when Class == ClassInt
}

// ParseTarget parses a user-supplied value string under the given class.
// Integer targets accept decimal or 0x-prefixed hex and must fit in 32 bits.
func ParseTarget(value string, class ValueClass) (Target, error) {
	t := Target{Raw: value, Class: class}
	switch class {
	case ClassFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Target{}, fmt.Errorf("%w: %q is not a float", ErrInvalidTarget, value)
		}
		t.Float = f
	case ClassInt:
		u, err := strconv.ParseUint(value, 0, 32)
		if err != nil {
			return Target{}, fmt.Errorf("%w: %q is not an unsigned 32-bit integer", ErrInvalidTarget, value)
		}
		t.Uint = uint32(u)
	default:
		return Target{}, fmt.Errorf("%w: unknown value class %q", ErrInvalidTarget, class)
	}
	return t, nil
}

// FloatTarget builds a float-class target from a numeric value.
func FloatTarget(v float64) Target {
	return Target{Class: ClassFloat, Float: v}
}

// IntTarget builds an int-class target, rejecting values outside uint32 range.
func IntTarget(v uint64) (Target, error) {
	if v > math.MaxUint32 {
		return Target{}, fmt.Errorf("%w: %d exceeds uint32 range", ErrInvalidTarget, v)
	}
	return Target{Class: ClassInt, Uint: uint32(v)}, nil
}

// HexBytes is a byte slice that renders as spaced lowercase hex, the way the
// reports print raw bytes.
type HexBytes []byte

func (h HexBytes) String() string {
	if len(h) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(h) * 3)
	const digits = "0123456789abcdef"
	for i, b := range h {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[b>>4])
		sb.WriteByte(digits[b&0xF])
	}
	return sb.String()
}

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(h.String())), nil
}

func (h *HexBytes) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("hex bytes: %w", err)
	}
	if s == "" {
		*h = nil
		return nil
	}
	raw, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		return fmt.Errorf("hex bytes: %w", err)
	}
	*h = raw
	return nil
}

// Window is the bounded byte range read for interpretation. Bytes may be
// shorter than Requested near end-of-file; it is a read-only view into the
// caller's buffer.
type Window struct {
	Offset    int64    `json:"offset"`
	Bytes     HexBytes `json:"bytes"`
	Requested int      `json:"requested"`
}

// Short reports whether fewer bytes were available than requested.
func (w Window) Short() bool {
	return len(w.Bytes) < w.Requested
}

// Interpretation is one (encoding, decoded value) pair. Value holds a
// float64, uint64, int64 or string depending on the encoding; fixed-width
// numeric decodes never fail, so only text encodings can be absent.
type Interpretation struct {
	Encoding Encoding `json:"encoding"`
	Value    any      `json:"value"`
}

// Float returns the decoded value when the encoding is a float type.
func (i Interpretation) Float() (float64, bool) {
	f, ok := i.Value.(float64)
	return f, ok
}

// Uint returns the decoded value when the encoding is an unsigned type.
func (i Interpretation) Uint() (uint64, bool) {
	u, ok := i.Value.(uint64)
	return u, ok
}

// Int returns the decoded value when the encoding is a signed type.
func (i Interpretation) Int() (int64, bool) {
	v, ok := i.Value.(int64)
	return v, ok
}

// Text returns the decoded value for ascii/utf8 interpretations.
func (i Interpretation) Text() (string, bool) {
	s, ok := i.Value.(string)
	return s, ok
}

// MarshalJSON renders NaN and the infinities as strings, since IEEE-754
// specials are legal decode results but not legal JSON numbers.
func (i Interpretation) MarshalJSON() ([]byte, error) {
	v := i.Value
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		v = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return json.Marshal(struct {
		Encoding Encoding `json:"encoding"`
		Value    any      `json:"value"`
	}{Encoding: i.Encoding, Value: v})
}

// Match is one byte-exact occurrence of a scan pattern.
type Match struct {
	Offset   int64    `json:"offset"`
	Encoding Encoding `json:"encoding"`
	Bytes    HexBytes `json:"bytes,omitempty"`
}

// FileReport is the result of interpreting a window of one file.
type FileReport struct {
	Path            string           `json:"path"`
	Size            int64            `json:"size"`
	Digest          string           `json:"digest"`
	Window          Window           `json:"window"`
	Interpretations []Interpretation `json:"interpretations"`
}

// FileMatches groups the scan matches found in one file.
type FileMatches struct {
	Path    string  `json:"path"`
	Size    int64   `json:"size"`
	Digest  string  `json:"digest"`
	Matches []Match `json:"matches"`
}
