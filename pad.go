package sha256

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/sha256/internal/consts"
)

// bitLength returns the length field for a message of n bytes.
func bitLength(n uint64) (uint64, error) {
	if n > consts.MaxMessageLen {
		return 0, fmt.Errorf("%w: %d bytes", ErrMessageTooLong, n)
	}
	return n * 8, nil
}

// paddedLen returns the size of the padded message for n input bytes: room
// for the marker byte and the length field, rounded up to a whole block.
func paddedLen(n int) int {
	return (n + 1 + consts.LengthLen + consts.BlockLen - 1) / consts.BlockLen * consts.BlockLen
}

// pad returns a new buffer holding message followed by the 0x80 marker,
// zero fill, and the big-endian bit length of message. The input is not
// modified.
func pad(message []byte) ([]byte, error) {
	bits, err := bitLength(uint64(len(message)))
	if err != nil {
		return nil, err
	}

	// make zeroes the fill for us.
	out := make([]byte, paddedLen(len(message)))
	n := copy(out, message)
	out[n] = consts.PadByte
	binary.BigEndian.PutUint64(out[len(out)-consts.LengthLen:], bits)

	return out, nil
}
