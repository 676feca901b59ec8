package engine

import (
	"encoding/binary"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func float60LE() []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(60.0))
	return b[:]
}

func TestAnalyzeFile(t *testing.T) {
	dir := t.TempDir()
	data := append([]byte{0x11, 0x22}, float60LE()...)
	p := writeFile(t, dir, "project.bin", data)

	rep, err := AnalyzeFile(p, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, p, rep.Path)
	assert.Equal(t, int64(6), rep.Size)
	assert.Len(t, rep.Digest, 16)
	require.Len(t, rep.Window.Bytes, 4)
	require.NotEmpty(t, rep.Interpretations)
	f, ok := rep.Interpretations[0].Float()
	require.True(t, ok)
	assert.Equal(t, float64(60), f)
}

func TestAnalyzeFileMissing(t *testing.T) {
	_, err := AnalyzeFile(filepath.Join(t.TempDir(), "nope.bin"), 0, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestScanSingleFile(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 128)
	for i := range data {
		data[i] = 0x11
	}
	copy(data[64:], float60LE())
	p := writeFile(t, dir, "song.raw", data)

	res, err := ScanWithStats(Config{Root: p}, types.FloatTarget(60.0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)
	assert.Equal(t, int64(128), res.BytesScanned)
	require.Len(t, res.Files, 1)
	require.Len(t, res.Files[0].Matches, 1)
	assert.Equal(t, int64(64), res.Files[0].Matches[0].Offset)
	assert.Equal(t, types.EncFloat32LE, res.Files[0].Matches[0].Encoding)
}

func TestScanDirectoryWithGlobs(t *testing.T) {
	dir := t.TempDir()
	hit := append(make([]byte, 8), float60LE()...)
	writeFile(t, dir, "a/one.bin", hit)
	writeFile(t, dir, "a/two.dat", hit)
	writeFile(t, dir, "skip.txt", hit)
	writeFile(t, dir, ".git/blob", hit) // default-excluded directory

	cfg := Config{Root: dir, IncludeGlobs: "**/*.bin,**/*.dat", Progress: func() {}}
	res, err := ScanWithStats(cfg, types.FloatTarget(60.0))
	require.NoError(t, err)
	assert.Equal(t, 2, res.FilesScanned)
	require.Len(t, res.Files, 2)

	cfg.ExcludeGlobs = "**/*.dat"
	res, err = ScanWithStats(cfg, types.FloatTarget(60.0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)
}

func TestScanMaxBytes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.bin", append(make([]byte, 4), float60LE()...))
	writeFile(t, dir, "big.bin", make([]byte, 4096))

	res, err := ScanWithStats(Config{Root: dir, MaxBytes: 1024}, types.FloatTarget(60.0))
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)
}

func TestScanInvalidTargetAborts(t *testing.T) {
	_, err := ScanWithStats(Config{Root: t.TempDir()}, types.Target{Class: "string"})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidTarget)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := ScanWithStats(Config{Root: filepath.Join(t.TempDir(), "gone")}, types.FloatTarget(1))
	assert.Error(t, err)
}

func TestCountTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", []byte{1})
	writeFile(t, dir, "b.bin", []byte{2})
	writeFile(t, dir, "node_modules/c.bin", []byte{3})

	n, err := CountTargets(Config{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountTargets(Config{Root: filepath.Join(dir, "a.bin")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
