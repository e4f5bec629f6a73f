package bigint

// Neg returns -a. The zero value negates to itself (sign stays
// non-negative).
func (a BigInt) Neg() BigInt {
	if a.isZero() {
		return Zero()
	}
	s := nonNegative
	if a.sgn == nonNegative {
		s = negative
	}
	return BigInt{sgn: s, limbs: copyWords(a.limbsOrZero())}
}

// Inc returns a + 1.
func (a BigInt) Inc() BigInt {
	return a.Add(One())
}

// Dec returns a - 1.
func (a BigInt) Dec() BigInt {
	return a.Sub(One())
}
