package mockfx

import "math"

// Seed is the full state of the deterministic generator. Two Seeds with the
// same value always emit the same sequence; there is no hidden entropy.
//
// The recurrence is intentionally trivial (it is a test fixture, not a
// statistical generator): from seed k the emitted value is |k|, and the
// successor state is k/2 when k is even, 3k+1 when k is odd.
type Seed int64

// DefaultSeed is the generator state a fresh environment starts from.
const DefaultSeed Seed = 27

// Next emits one non-negative value and returns the successor state.
func (k Seed) Next() (int64, Seed) {
	v := int64(k)
	if v < 0 {
		v = -v
	}
	// -MinInt64 overflows back to MinInt64; mask keeps the draw non-negative.
	v &= math.MaxInt64

	var next Seed
	if k%2 == 0 {
		next = k / 2
	} else {
		next = 3*k + 1
	}
	return v, next
}

// Split derives two generator states from one. The halves are never equal,
// so consumers asking for independent generators cannot silently alias state.
func (k Seed) Split() (Seed, Seed) {
	return k, k + 1
}

// Between emits one value in the closed interval [lo, hi] and returns the
// successor state. Callers must pass lo <= hi; if the interval width
// overflows int64 the unconstrained draw is returned as-is.
func (k Seed) Between(lo, hi int64) (int64, Seed) {
	v, next := k.Next()
	span := hi - lo + 1
	if span <= 0 {
		return v, next
	}
	return lo + v%span, next
}
