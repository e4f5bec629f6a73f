// Copyright (c) 2025 Drake Manzanares
// Distributed under the MIT License.

package bigint

// Add returns a + b. Add never fails and never mutates a or b.
func (a BigInt) Add(b BigInt) BigInt {
	al, bl := a.limbsOrZero(), b.limbsOrZero()

	if a.sgn == b.sgn {
		return fromLimbs(a.sgn, magAdd(al, bl))
	}

	// mixed signs: the larger magnitude's sign wins, via subtraction
	switch c := magCmp(al, bl); {
	case c == 0:
		return Zero()
	case c > 0:
		return fromLimbs(a.sgn, magSub(al, bl))
	default:
		return fromLimbs(b.sgn, magSub(bl, al))
	}
}

// Sub returns a - b. Sub never fails and never mutates a or b.
func (a BigInt) Sub(b BigInt) BigInt {
	return a.Add(b.Neg())
}

// magAdd adds two magnitudes, school-book style with carry, and returns
// a freshly allocated, normalized result.
func magAdd(x, y []Word) []Word {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	out := make([]Word, 0, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var xv, yv uint64
		if i < len(x) {
			xv = uint64(x[i])
		}
		if i < len(y) {
			yv = uint64(y[i])
		}
		s := xv + yv + carry
		if s >= uint64(limbBase) {
			s -= uint64(limbBase)
			carry = 1
		} else {
			carry = 0
		}
		out = append(out, Word(s))
	}
	if carry != 0 {
		out = append(out, Word(carry))
	}
	return normalizeLimbs(out)
}

// magSub subtracts magnitude y from magnitude x, school-book style with
// borrow. The caller must ensure x >= y; behavior is undefined otherwise.
func magSub(x, y []Word) []Word {
	out := make([]Word, len(x))
	var borrow uint64
	for i := 0; i < len(x); i++ {
		xv := uint64(x[i])
		var yv uint64
		if i < len(y) {
			yv = uint64(y[i])
		}
		need := yv + borrow
		if xv < need {
			out[i] = Word(xv + uint64(limbBase) - need)
			borrow = 1
		} else {
			out[i] = Word(xv - need)
			borrow = 0
		}
	}
	return normalizeLimbs(out)
}
