package bigint

import "math/bits"

// Uint64 returns a as a uint64 and reports whether the conversion was
// exact. A negative or overflowing value reports ok == false.
func (a BigInt) Uint64() (v uint64, ok bool) {
	if a.IsNegative() {
		return 0, false
	}
	limbs := a.limbsOrZero()
	var acc uint64
	for i := len(limbs) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(acc, uint64(limbBase))
		if hi != 0 {
			return 0, false
		}
		sum, carry := bits.Add64(lo, uint64(limbs[i]), 0)
		if carry != 0 {
			return 0, false
		}
		acc = sum
	}
	return acc, true
}

// Int64 returns a as an int64 and reports whether the conversion was
// exact. A value outside [math.MinInt64, math.MaxInt64] reports
// ok == false.
func (a BigInt) Int64() (v int64, ok bool) {
	u, ok := a.Abs().Uint64()
	if !ok {
		return 0, false
	}
	if a.IsNegative() {
		if u > 1<<63 {
			return 0, false
		}
		return -int64(u), true
	}
	if u > 1<<63-1 {
		return 0, false
	}
	return int64(u), true
}

// Abs returns |a|.
func (a BigInt) Abs() BigInt {
	if a.IsNegative() {
		return a.Neg()
	}
	return a
}
