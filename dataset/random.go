package dataset

const (
	lcgMultiplier = 0x5DEECE66D
	lcgAddend     = 0xB
	lcgMask       = (1 << 48) - 1
)

// JavaRandom is the 48-bit linear congruential generator of java.util.Random. Balancing and shuffling are pinned to
// it so that a seed produces the same datasets as the existing experiment scripts.
type JavaRandom struct {
	seed int64
}

// NewJavaRandom creates a generator from a 32-bit seed.
func NewJavaRandom(seed int32) *JavaRandom {
	return &JavaRandom{seed: (int64(seed) ^ lcgMultiplier) & lcgMask}
}

func (r *JavaRandom) next(bits uint) int32 {
	r.seed = (r.seed*lcgMultiplier + lcgAddend) & lcgMask
	return int32(r.seed >> (48 - bits))
}

// Intn returns a uniformly distributed value in [0, n). It panics if n <= 0.
func (r *JavaRandom) Intn(n int32) int32 {
	if n <= 0 {
		panic("dataset: invalid argument to Intn")
	}

	// Powers of two take the high bits.
	if n&-n == n {
		return int32((int64(n) * int64(r.next(31))) >> 31)
	}

	m := n - 1
	bits := r.next(31)
	val := bits % n
	// Reject values from the incomplete final block; the sum overflows negative in that case.
	for bits-val+m < 0 {
		bits = r.next(31)
		val = bits % n
	}
	return val
}
