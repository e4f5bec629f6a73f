// Copyright (c) 2025 Drake Manzanares
// Distributed under the MIT License.

package bigint

// Cmp compares a and b and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
func (a BigInt) Cmp(b BigInt) int {
	al, bl := a.limbsOrZero(), b.limbsOrZero()
	aZero, bZero := isZeroLimbs(al), isZeroLimbs(bl)
	if aZero && bZero {
		return 0
	}

	asgn, bsgn := a.sgn, b.sgn
	if aZero {
		asgn = nonNegative
	}
	if bZero {
		bsgn = nonNegative
	}
	if asgn != bsgn {
		if asgn == negative {
			return -1
		}
		return 1
	}

	c := magCmp(al, bl)
	if asgn == negative {
		return -c
	}
	return c
}

// Eq reports whether a == b.
func (a BigInt) Eq(b BigInt) bool { return a.Cmp(b) == 0 }

// Ne reports whether a != b.
func (a BigInt) Ne(b BigInt) bool { return a.Cmp(b) != 0 }

// Lt reports whether a < b.
func (a BigInt) Lt(b BigInt) bool { return a.Cmp(b) < 0 }

// Gt reports whether a > b.
func (a BigInt) Gt(b BigInt) bool { return a.Cmp(b) > 0 }

// Le reports whether a <= b.
func (a BigInt) Le(b BigInt) bool { return a.Cmp(b) <= 0 }

// Ge reports whether a >= b.
func (a BigInt) Ge(b BigInt) bool { return a.Cmp(b) >= 0 }

// magCmp compares two magnitudes (unsigned limb vectors), most-significant
// limb first. Equal-length vectors compare limb by limb from the top down;
// otherwise the longer one is larger.
func magCmp(x, y []Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
