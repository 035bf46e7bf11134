package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
)

func usigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func usigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

// ch picks bits of y where x is set and bits of z where it is not.
func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// maj is the bitwise majority of its inputs.
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// compress runs the 64 rounds over schedule w and returns the next hash
// state. All additions wrap at 2^32.
func compress(state *[8]uint32, w *[consts.Rounds]uint32) [8]uint32 {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < consts.Rounds; t++ {
		t1 := h + usigma1(e) + ch(e, f, g) + consts.K[t] + w[t]
		t2 := usigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	return [8]uint32{
		a + state[0], b + state[1], c + state[2], d + state[3],
		e + state[4], f + state[5], g + state[6], h + state[7],
	}
}
