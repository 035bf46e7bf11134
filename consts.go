package sha256

import "github.com/zeebo/sha256/internal/consts"

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = consts.DigestLen

	// BlockSize is the block size of SHA-256 in bytes.
	BlockSize = consts.BlockLen
)
