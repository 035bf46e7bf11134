package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

func lsigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func lsigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

// expand fills w with the message schedule for block. Every word of w is
// overwritten, so one schedule can be reused across blocks.
func expand(block *[consts.BlockLen]byte, w *[consts.Rounds]uint32) {
	utils.BytesToWords(block, (*[16]uint32)(w[:16]))

	for t := 16; t < consts.Rounds; t++ {
		w[t] = lsigma1(w[t-2]) + w[t-7] + lsigma0(w[t-15]) + w[t-16]
	}
}
