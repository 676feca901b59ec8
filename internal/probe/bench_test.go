package probe

import (
	"math/rand"
	"testing"

	"github.com/bytesleuth/bytesleuth/internal/types"
)

func benchBuffer(n int) []byte {
	buf := make([]byte, n)
	rand.New(rand.NewSource(1)).Read(buf)
	return buf
}

func BenchmarkScan1MB(b *testing.B) {
	buf := benchBuffer(1 << 20)
	target := types.FloatTarget(60.0)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Scan(buf, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanParallel1MB(b *testing.B) {
	buf := benchBuffer(1 << 20)
	target := types.FloatTarget(60.0)
	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ScanParallel(buf, target, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInterpret(b *testing.B) {
	buf := benchBuffer(64)
	for i := 0; i < b.N; i++ {
		Interpret(buf, 16, 4)
	}
}
