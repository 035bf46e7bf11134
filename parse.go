package sha256

import (
	"fmt"

	"github.com/zeebo/sha256/internal/consts"
)

// parse splits a padded message into consecutive blocks. The blocks alias
// padded. A length that is not a whole number of blocks means pad is broken,
// so it panics rather than hashing a truncated message.
func parse(padded []byte) []*[consts.BlockLen]byte {
	if len(padded)%consts.BlockLen != 0 {
		panic(fmt.Sprintf("sha256: padded length %d is not a multiple of %d", len(padded), consts.BlockLen))
	}

	blocks := make([]*[consts.BlockLen]byte, 0, len(padded)/consts.BlockLen)
	for len(padded) > 0 {
		blocks = append(blocks, (*[consts.BlockLen]byte)(padded[:consts.BlockLen]))
		padded = padded[consts.BlockLen:]
	}
	return blocks
}
