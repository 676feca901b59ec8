// Package ignore parses .bytesleuthignore files: one pattern per line,
// gitignore-flavored. A trailing slash marks a directory prefix; other lines
// are doublestar globs matched against the relative path and its basename.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher answers whether a path relative to the scan root is ignored.
type Matcher struct {
	dirs  []string
	globs []string
}

// Load reads the ignore file at path. A missing file is an error; callers
// treat that as "no ignores".
func Load(path string) (*Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := &Matcher{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
			continue
		}
		m.globs = append(m.globs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Match reports whether rel (slash-separated, relative to the root) is
// covered by any ignore pattern.
func (m *Matcher) Match(rel string) bool {
	if m == nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, d := range m.dirs {
		if rel == d || strings.HasPrefix(rel, d+"/") {
			return true
		}
	}
	base := filepath.Base(rel)
	for _, g := range m.globs {
		if ok, err := doublestar.Match(g, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(g, base); err == nil && ok {
			return true
		}
	}
	return false
}
