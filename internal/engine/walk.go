package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/bytesleuth/bytesleuth/internal/ignore"
)

// ignoreFileName is the per-root ignore file consulted during walks.
const ignoreFileName = ".bytesleuthignore"

// Directories that are never worth scanning for binary payloads.
var defaultDirExcludes = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
}

// Walk traverses the directory at cfg.Root and invokes handle with each
// eligible file's relative path and full contents. Unreadable files are
// skipped silently; the walk itself only fails on a broken root.
func Walk(cfg Config, handle func(rel string, data []byte)) error {
	ig, _ := ignore.Load(filepath.Join(cfg.Root, ignoreFileName))
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if defaultDirExcludes[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if d.Name() == ignoreFileName || ig.Match(rel) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if info, _ := d.Info(); info != nil && info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		handle(rel, b)
		return nil
	})
}

// CountTargets mirrors Walk's selection logic without reading file contents,
// for the CLI progress meter.
func CountTargets(cfg Config) (int, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 1, nil
	}
	ig, _ := ignore.Load(filepath.Join(cfg.Root, ignoreFileName))
	count := 0
	_ = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if defaultDirExcludes[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if d.Name() == ignoreFileName || ig.Match(rel) {
			return nil
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			if fi, _ := d.Info(); fi != nil && fi.Size() > cfg.MaxBytes {
				return nil
			}
		}
		count++
		return nil
	})
	return count, nil
}

// allowedByGlobs returns true if the given path is allowed by the
// include/exclude glob configuration. Include globs are comma-separated and,
// if provided, act as a positive filter. Exclude globs are subtracted last.
// Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
