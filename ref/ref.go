// Package ref is a literal transcription of the SHA-256 steps using 64-bit
// words and explicit reduction mod 2^32. It is slow and exists to check the
// main package against.
package ref

import (
	"github.com/zeebo/sha256/internal/consts"
)

// Pad returns the padded form of message by appending one byte at a time.
func Pad(message []byte) []byte {
	out := append([]byte(nil), message...)
	length := uint64(len(message)) * 8

	out = append(out, 0x80)
	for (len(out)*8+64)%512 != 0 {
		out = append(out, 0x00)
	}
	for i := 7; i >= 0; i-- {
		out = append(out, byte(length>>(8*uint(i))))
	}
	return out
}

// Schedule returns the 64 word message schedule of a 64 byte block.
func Schedule(block []byte) []uint64 {
	if len(block) != consts.BlockLen {
		panic("ref: block must be 64 bytes")
	}

	w := make([]uint64, 0, consts.Rounds)
	for i := 0; i < 16; i++ {
		b := block[4*i : 4*i+4]
		w = append(w, uint64(b[0])<<24|uint64(b[1])<<16|uint64(b[2])<<8|uint64(b[3]))
	}
	for t := 16; t < consts.Rounds; t++ {
		w = append(w, (ssig1(w[t-2])+w[t-7]+ssig0(w[t-15])+w[t-16])%mod)
	}
	return w
}

// Compress folds a single 64 byte block into state.
func Compress(state *[8]uint32, block []byte) [8]uint32 {
	w := Schedule(block)

	var r [8]uint64
	for i := range r {
		r[i] = uint64(state[i])
	}

	for t := 0; t < consts.Rounds; t++ {
		a, b, c, d, e, f, g, h := r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7]
		t1 := (h + bsig1(e) + ch(e, f, g) + uint64(consts.K[t]) + w[t]) % mod
		t2 := (bsig0(a) + maj(a, b, c)) % mod
		r = [8]uint64{(t1 + t2) % mod, a, b, c, (d + t1) % mod, e, f, g}
	}

	var out [8]uint32
	for i := range out {
		out[i] = uint32((r[i] + uint64(state[i])) % mod)
	}
	return out
}

// Sum256 hashes data one block at a time.
func Sum256(data []byte) (out [consts.DigestLen]byte) {
	padded := Pad(data)
	state := consts.IV

	for i := 0; i < len(padded); i += consts.BlockLen {
		state = Compress(&state, padded[i:i+consts.BlockLen])
	}

	for i, v := range state {
		out[4*i+0] = byte(v >> 24)
		out[4*i+1] = byte(v >> 16)
		out[4*i+2] = byte(v >> 8)
		out[4*i+3] = byte(v)
	}
	return out
}
