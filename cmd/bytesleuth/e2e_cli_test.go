package bytesleuth

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	buf := make([]byte, 128)
	binary.LittleEndian.PutUint32(buf[40:], math.Float32bits(60.0))
	binary.BigEndian.PutUint32(buf[80:], math.Float32bits(60.0))
	if err := os.WriteFile(filepath.Join(dir, "song.bin"), buf, 0644); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "song.bin")
}

// run as subprocess to avoid os.Exit in-process
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	return out.String(), err
}

func TestCLI_Analyze_JSON_Shape(t *testing.T) {
	path := writeFixture(t)
	out, err := runCLI(t, "analyze", path, "0x28", "--json")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var rep map[string]any
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	ints, ok := rep["interpretations"].([]any)
	if !ok || len(ints) != 6 {
		t.Fatalf("expected 6 interpretations, got %v", rep["interpretations"])
	}
	first, _ := ints[0].(map[string]any)
	if first["encoding"] != "float32_le" {
		t.Fatalf("expected float32_le first, got %v", first["encoding"])
	}
	if v, _ := first["value"].(float64); v != 60.0 {
		t.Fatalf("expected 60.0, got %v", first["value"])
	}
}

func TestCLI_Scan_JSON_Shape(t *testing.T) {
	path := writeFixture(t)
	out, err := runCLI(t, "scan", path, "60.0", "--json", "--no-update-check")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	var files []map[string]any
	if err := json.Unmarshal([]byte(out), &files); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(files) != 1 {
		t.Fatalf("expected one file with matches, got %d", len(files))
	}
	matches, _ := files[0]["matches"].([]any)
	if len(matches) != 2 {
		t.Fatalf("expected LE and BE match, got %d", len(matches))
	}
	first, _ := matches[0].(map[string]any)
	second, _ := matches[1].(map[string]any)
	// LE pass reports before BE regardless of offsets
	if first["encoding"] != "float32_le" || second["encoding"] != "float32_be" {
		t.Fatalf("pass order wrong: %v then %v", first["encoding"], second["encoding"])
	}
}

func TestCLI_Scan_InvalidTarget_ExitCode(t *testing.T) {
	path := writeFixture(t)
	_, err := runCLI(t, "scan", path, "4300000000", "--type", "int", "--json", "--no-update-check")
	if err == nil {
		t.Fatal("expected non-zero exit for out-of-range int target")
	}
}
