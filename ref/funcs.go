package ref

const (
	mod      = 1 << 32
	wordBits = 32
)

// rotr rotates the low 32 bits of x right by n.
func rotr(x uint64, n uint) uint64 {
	return (x>>n | x<<(wordBits-n)) % mod
}

// z is below 2^32, so ^x & z needs no reduction.
func ch(x, y, z uint64) uint64 { return (x & y) ^ (^x & z) }

func maj(x, y, z uint64) uint64 { return (x & y) ^ (x & z) ^ (y & z) }

func bsig0(x uint64) uint64 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }

func bsig1(x uint64) uint64 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }

func ssig0(x uint64) uint64 { return rotr(x, 7) ^ rotr(x, 18) ^ x>>3 }

func ssig1(x uint64) uint64 { return rotr(x, 17) ^ rotr(x, 19) ^ x>>10 }
