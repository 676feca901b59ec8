package engine

import (
	"fmt"
	"os"
	"runtime"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/bytesleuth/bytesleuth/internal/probe"
	"github.com/bytesleuth/bytesleuth/internal/types"
)

// Config controls what gets scanned and how.
type Config struct {
	// Root is the file or directory to scan.
	Root string
	// IncludeGlobs and ExcludeGlobs are comma-separated doublestar patterns
	// applied to paths relative to Root when Root is a directory.
	IncludeGlobs string
	ExcludeGlobs string
	// MaxBytes skips files larger than this during directory walks (0 = no limit).
	MaxBytes int64
	// Threads shards the scan of each buffer (0 = GOMAXPROCS).
	Threads int
	// Progress, when set, is invoked once per scanned file.
	Progress func()
}

// Result carries per-file matches plus scan statistics.
type Result struct {
	Files        []types.FileMatches
	FilesScanned int
	BytesScanned int64
	Matches      int
	Duration     time.Duration
}

// AnalyzeFile reads path into memory and interprets the window at offset.
func AnalyzeFile(path string, offset int64, length int) (types.FileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FileReport{}, fmt.Errorf("read %s: %w", path, err)
	}
	win, ints := probe.Interpret(data, offset, length)
	return types.FileReport{
		Path:            path,
		Size:            int64(len(data)),
		Digest:          fastHash(data),
		Window:          win,
		Interpretations: ints,
	}, nil
}

// Scan runs a scan and returns only the per-file matches (without stats).
func Scan(cfg Config, target types.Target) ([]types.FileMatches, error) {
	res, err := ScanWithStats(cfg, target)
	if err != nil {
		return nil, err
	}
	return res.Files, nil
}

// ScanWithStats scans cfg.Root, a single file or a whole directory tree,
// for the target. An invalid target aborts before any file is opened;
// unreadable files inside a directory walk are skipped, not fatal.
func ScanWithStats(cfg Config, target types.Target) (Result, error) {
	var result Result

	// Validate the target up front: no partial results on a bad target.
	if _, err := probe.Patterns(target); err != nil {
		return result, err
	}

	workers := cfg.Threads
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return result, fmt.Errorf("stat %s: %w", cfg.Root, err)
	}

	started := time.Now()
	scanBuffer := func(path string, data []byte) error {
		matches, err := probe.ScanParallel(data, target, workers)
		if err != nil {
			return err
		}
		result.FilesScanned++
		result.BytesScanned += int64(len(data))
		result.Matches += len(matches)
		if cfg.Progress != nil {
			cfg.Progress()
		}
		if len(matches) > 0 {
			result.Files = append(result.Files, types.FileMatches{
				Path:    path,
				Size:    int64(len(data)),
				Digest:  fastHash(data),
				Matches: matches,
			})
		}
		return nil
	}

	if info.IsDir() {
		var scanErr error
		walkErr := Walk(cfg, func(rel string, data []byte) {
			if scanErr == nil {
				scanErr = scanBuffer(rel, data)
			}
		})
		if walkErr != nil {
			return result, walkErr
		}
		if scanErr != nil {
			return result, scanErr
		}
	} else {
		data, rerr := os.ReadFile(cfg.Root)
		if rerr != nil {
			return result, fmt.Errorf("read %s: %w", cfg.Root, rerr)
		}
		if err := scanBuffer(cfg.Root, data); err != nil {
			return result, err
		}
	}

	result.Duration = time.Since(started)
	return result, nil
}

// fastHash returns a 16-hex-digit xxhash digest, shown alongside results so
// repeated sessions against a mutating file are distinguishable.
func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
