package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

func sampleReport() types.FileReport {
	return types.FileReport{
		Path:   "/tmp/project.bin",
		Size:   1024,
		Digest: "00000000deadbeef",
		Window: types.Window{Offset: 0x18B, Bytes: types.HexBytes{0x00, 0x00, 0x70, 0x42}, Requested: 4},
		Interpretations: []types.Interpretation{
			{Encoding: types.EncFloat32LE, Value: float64(60)},
			{Encoding: types.EncFloat32BE, Value: float64(6.3108872417843405e-40)},
			{Encoding: types.EncUint32LE, Value: uint64(0x42700000)},
			{Encoding: types.EncUint32BE, Value: uint64(0x00007042)},
			{Encoding: types.EncInt32LE, Value: int64(0x42700000)},
			{Encoding: types.EncInt32BE, Value: int64(0x00007042)},
		},
	}
}

func TestPrintInterpretations(t *testing.T) {
	var buf bytes.Buffer
	PrintInterpretations(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()

	assert.Contains(t, out, "File: project.bin")
	assert.Contains(t, out, "Offset: 0x18B (395 decimal)")
	assert.Contains(t, out, "Raw Bytes: 00 00 70 42")
	assert.Contains(t, out, "Float (LE):")
	assert.Contains(t, out, "60.000000")
	assert.Contains(t, out, "Int32 (BE):")
	assert.NotContains(t, out, "Warning")
	assert.NotContains(t, out, "\x1b[") // NoColor means no ANSI
	// Fixed order: Float (LE) renders before Uint32 (LE).
	assert.Less(t, strings.Index(out, "Float (LE):"), strings.Index(out, "Uint32 (LE):"))
}

func TestPrintInterpretationsShortWindow(t *testing.T) {
	rep := types.FileReport{
		Path:   "x.bin",
		Window: types.Window{Offset: 10, Bytes: types.HexBytes{0x41}, Requested: 4},
		Interpretations: []types.Interpretation{
			{Encoding: types.EncUint8, Value: uint64(0x41)},
			{Encoding: types.EncInt8, Value: int64(0x41)},
			{Encoding: types.EncASCII, Value: "A"},
			{Encoding: types.EncUTF8, Value: "A"},
		},
	}
	var buf bytes.Buffer
	PrintInterpretations(&buf, rep, PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "Warning: Only read 1 bytes (requested 4)")
	assert.Contains(t, out, "'A'")
	assert.Contains(t, out, `UTF-8 String: "A"`)
}

func sampleMatches() []types.FileMatches {
	return []types.FileMatches{{
		Path:   "song.raw",
		Size:   2048,
		Digest: "1111222233334444",
		Matches: []types.Match{
			{Offset: 0x18B, Encoding: types.EncFloat32LE, Bytes: types.HexBytes{0x00, 0x00, 0x70, 0x42}},
			{Offset: 0x400, Encoding: types.EncFloat32BE, Bytes: types.HexBytes{0x42, 0x70, 0x00, 0x00}},
		},
	}}
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	PrintMatches(&buf, sampleMatches(), PrintOptions{NoColor: true, Duration: 1500 * time.Millisecond, FilesScanned: 1, BytesScanned: 2048})
	out := buf.String()

	assert.Contains(t, out, "Found 2 match(es):")
	assert.Contains(t, out, "Offset 0x018B (  395): 00 00 70 42 [float32_le]")
	assert.Contains(t, out, "[float32_be]")
	assert.Contains(t, out, "Matches: 2")
	assert.Contains(t, out, "Files scanned: 1 (2048 bytes)")
	assert.Contains(t, out, "Scan duration: 1.50s")
}

func TestPrintMatchesEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintMatches(&buf, nil, PrintOptions{NoColor: true})
	assert.Contains(t, buf.String(), "No matches found.")
}

func TestPrintMatchTable(t *testing.T) {
	var buf bytes.Buffer
	err := PrintMatchTable(&buf, sampleMatches(), PrintOptions{NoColor: true})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "0x018B")
	assert.Contains(t, out, "song.raw")
	assert.Contains(t, out, "float32_le")
}

func TestHexdump(t *testing.T) {
	data := make([]byte, 20)
	copy(data, "Hello, bytesleuth!")
	out := Hexdump(data, 0)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "00000000  "))
	assert.True(t, strings.HasPrefix(lines[1], "00000010  "))
	assert.Contains(t, lines[0], "|Hello, bytesleut|")
	assert.Contains(t, lines[0], "48 65 6c 6c 6f")
}

func TestHexdumpBase(t *testing.T) {
	out := Hexdump([]byte{0xAA}, 0x200)
	assert.True(t, strings.HasPrefix(out, "00000200  "))
	assert.Contains(t, out, "|.|")
}

func TestHexdumpAround(t *testing.T) {
	buf := make([]byte, 256)
	out := HexdumpAround(buf, 0x80, 4, 1)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// one context row above, the row holding the match, one below
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "00000070"))
	assert.True(t, strings.HasPrefix(lines[1], "00000080"))

	assert.Equal(t, "", HexdumpAround(nil, 0, 4, 2))
}
