package sha256

import (
	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

// assemble serializes the final state into a digest.
func assemble(state *[8]uint32) (out [consts.DigestLen]byte) {
	utils.WordsToBytes(state, out[:])
	return out
}
