package probe

import (
	"bytes"
	"sort"
	"sync"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

// Buffers below this size are not worth sharding across goroutines.
const minParallelBytes = 64 << 10

// Scan searches buf exhaustively for the byte-exact encodings of the target.
//
// Every byte offset from 0 through len(buf)-4 is a candidate start, because
// the alignment of the field inside the unknown format is itself unknown;
// overlapping occurrences are all reported. Matching is equality of raw
// bytes, never numeric equality after decoding, so two floats that are close
// but not bit-identical never match.
//
// Results are ordered pass-then-offset: every little-endian match in
// ascending offset order, then every big-endian match. A buffer shorter than
// 4 bytes yields an empty result without error. The only error is an invalid
// target, reported before any byte is examined.
func Scan(buf []byte, t types.Target) ([]types.Match, error) {
	pats, err := Patterns(t)
	if err != nil {
		return nil, err
	}
	var out []types.Match
	for _, p := range pats {
		out = append(out, scanPass(buf, p)...)
	}
	return out, nil
}

// ScanParallel is Scan with the offset range of each pass sharded across
// workers. Output is identical to Scan: shard results are merged and
// re-sorted by offset within each pass, so the pass-then-offset contract
// holds regardless of goroutine scheduling. workers < 2 or a small buffer
// falls back to the sequential scan.
func ScanParallel(buf []byte, t types.Target, workers int) ([]types.Match, error) {
	if workers < 2 || len(buf) < minParallelBytes {
		return Scan(buf, t)
	}
	pats, err := Patterns(t)
	if err != nil {
		return nil, err
	}
	var out []types.Match
	for _, p := range pats {
		out = append(out, scanPassParallel(buf, p, workers)...)
	}
	return out, nil
}

// scanPass finds every occurrence of one pattern in ascending offset order.
// bytes.Index does the heavy lifting; resuming one byte past each hit keeps
// overlapping occurrences in play.
func scanPass(buf []byte, p Pattern) []types.Match {
	return scanRange(buf, p, 0, len(buf)-patternWidth+1)
}

// scanRange reports matches whose start position lies in [lo, hi). The
// search slice extends patternWidth-1 bytes past hi so patterns straddling
// the shard boundary are still seen by exactly one shard.
func scanRange(buf []byte, p Pattern, lo, hi int) []types.Match {
	if hi <= lo {
		return nil
	}
	end := hi + patternWidth - 1
	if end > len(buf) {
		end = len(buf)
	}
	region := buf[lo:end]
	pat := p.Bytes[:]

	var out []types.Match
	for i := 0; ; {
		j := bytes.Index(region[i:], pat)
		if j < 0 {
			break
		}
		at := lo + i + j
		out = append(out, types.Match{
			Offset:   int64(at),
			Encoding: p.Encoding,
			Bytes:    append(types.HexBytes(nil), buf[at:at+patternWidth]...),
		})
		i += j + 1
	}
	return out
}

func scanPassParallel(buf []byte, p Pattern, workers int) []types.Match {
	starts := len(buf) - patternWidth + 1
	if starts <= 0 {
		return nil
	}
	if workers > starts {
		workers = starts
	}
	chunk := (starts + workers - 1) / workers

	shards := make([][]types.Match, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > starts {
			hi = starts
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			shards[w] = scanRange(buf, p, lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()

	var out []types.Match
	for _, s := range shards {
		out = append(out, s...)
	}
	// Shards arrive in offset order already; the sort is the contract, not
	// an accident of scheduling.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}
