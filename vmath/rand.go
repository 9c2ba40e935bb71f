package vmath

// Rand is the single source of randomness threaded through generation and every system
// Implementations must be deterministic for a given seed
type Rand interface {
	// Intn returns a value in [0, n); n <= 0 returns 0
	Intn(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// FastRand is a xorshift64 generator
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; seed 0 is remapped since xorshift has no zero state
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Read fills p from the generator stream, always returning len(p), nil
// Lets seeded games derive identifiers (uuid) reproducibly
func (r *FastRand) Read(p []byte) (int, error) {
	var word uint64
	for i := range p {
		if i%8 == 0 {
			word = r.Next()
		}
		p[i] = byte(word)
		word >>= 8
	}
	return len(p), nil
}

// Chance reports true with probability p
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}
