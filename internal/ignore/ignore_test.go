package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, ".bytesleuthignore")
	content := "build/\n*.iso\n# comment\n\nfirmware.img\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"build/out/rom.bin": true,
		"images/disc.iso":   true,
		"firmware.img":      true,
		"src/rom.bin":       false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestIgnoreNilMatcher(t *testing.T) {
	var m *Matcher
	if m.Match("anything") {
		t.Fatal("nil matcher should match nothing")
	}
}
