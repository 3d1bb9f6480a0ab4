package harness

// Mixing tables for DeriveSeed. Each seed byte pair comes from one affine
// map of the run index.
var (
	seedPrimes = [16]uint32{3, 7, 13, 19, 29, 37, 43, 53, 61, 71, 79, 89, 101, 107, 113, 131}
	seedOffset = [16]uint32{2741, 2729, 2713, 2707, 2693, 2687, 2677, 2663, 2657, 2633, 2609, 2591, 2557, 2549, 2539, 2521}
)

// DeriveSeed maps run index i onto a 32-byte generator seed.
// Byte j (j < 16) is the low byte of i·P[j]+O[j]; byte j+16 is the next
// byte of the same value. Arithmetic wraps in uint32.
func DeriveSeed(i uint32) [32]byte {
	var seed [32]byte
	for j := range seedPrimes {
		v := i*seedPrimes[j] + seedOffset[j]
		seed[j] = byte(v)
		seed[j+16] = byte(v >> 8)
	}
	return seed
}

// SequentialSeed returns the seed 1, 2, ..., 32 used by the built-in prefill
// policies.
func SequentialSeed() [32]byte {
	var seed [32]byte
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}
