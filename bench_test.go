package sha256

import (
	"fmt"
	"testing"

	"github.com/zeebo/sha256/internal/consts"
)

func BenchmarkSum256(b *testing.B) {
	sizes := []int64{0, 16, 32, 55, 56, 64, 128, 256, 512, 1024, 4 * 1024, 8 * 1024}

	for _, size := range sizes {
		size := size
		input := make([]byte, size)

		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(size)

			for i := 0; i < b.N; i++ {
				Sum256(input)
			}
		})
	}
}

func BenchmarkCompress(b *testing.B) {
	var block [consts.BlockLen]byte
	var w [consts.Rounds]uint32
	state := consts.IV

	b.SetBytes(consts.BlockLen)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		expand(&block, &w)
		state = compress(&state, &w)
	}
}
