// Copyright (c) 2025 Drake Manzanares
// Distributed under the MIT License.

package bigint

import "math/bits"

// Div returns the truncated-toward-zero quotient a / b. Div fails with
// ErrDivisionByZero if b is zero.
func (a BigInt) Div(b BigInt) (BigInt, error) {
	if b.isZero() {
		return BigInt{}, wrapErr(ErrDivisionByZero, "div")
	}
	q, _ := divMagnitude(a.limbsOrZero(), b.limbsOrZero())
	s := nonNegative
	if a.sgn != b.sgn {
		s = negative
	}
	return fromLimbs(s, q), nil
}

// Mod returns the remainder of truncated division, a - (a/b)*b. The
// remainder's sign matches a's, except a zero remainder is canonically
// non-negative. Mod fails with ErrDivisionByZero if b is zero.
func (a BigInt) Mod(b BigInt) (BigInt, error) {
	if b.isZero() {
		return BigInt{}, wrapErr(ErrDivisionByZero, "mod")
	}
	_, r := divMagnitude(a.limbsOrZero(), b.limbsOrZero())
	return fromLimbs(a.sgn, r), nil
}

// divMagnitude returns q, r such that |a| = q*|b| + r, 0 <= r < |b|. The
// caller must ensure b is non-zero.
func divMagnitude(a, b []Word) (q, r []Word) {
	if magCmp(a, b) < 0 {
		return []Word{0}, copyWords(a)
	}
	if len(b) == 1 {
		qq, rr := divSingleLimb(a, b[0])
		return qq, []Word{rr}
	}
	return divLarge(a, b)
}

// divSingleLimb divides magnitude a by a single limb d, top-down, the
// decimal-radix analogue of the teacher's divWVW/divWW short division.
func divSingleLimb(a []Word, d Word) (q []Word, r Word) {
	out := make([]Word, len(a))
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(rem, uint64(limbBase))
		lo2, c := bits.Add64(lo, uint64(a[i]), 0)
		hi2 := hi + c
		quo, rr := bits.Div64(hi2, lo2, uint64(d))
		out[i] = Word(quo)
		rem = rr
	}
	return normalizeLimbs(out), Word(rem)
}

// divLarge performs normalized long division of magnitude a by magnitude
// b (len(b) >= 2), following the classical two-word-trial-digit algorithm:
// scale both operands so b's top
// limb is at least limbBase/2, then peel off one quotient digit per
// position using a two-limb numerator and a one-limb divisor, correcting
// the trial digit down when the speculative subtraction would go
// negative.
func divLarge(a, b []Word) (q, r []Word) {
	n := len(b)
	m := len(a) - n

	s := Word(uint64(limbBase) / (uint64(b[n-1]) + 1))
	if s == 0 {
		s = 1
	}

	rem := mulBySmall(a, s) // length n+m+1
	bFull := mulBySmall(b, s)
	if bFull[n] != 0 {
		panic("bigint: divisor normalization overflow")
	}
	bNorm := bFull[:n]

	qLimbs := make([]Word, m+1)

	for j := m; j >= 0; j-- {
		hiW := uint64(rem[n+j])
		var loW uint64
		if n+j-1 >= 0 {
			loW = uint64(rem[n+j-1])
		}
		divisor := uint64(bNorm[n-1])

		var qhat uint64
		if hiW >= divisor {
			qhat = uint64(limbBase) - 1
		} else {
			numHi, numLo := bits.Mul64(hiW, uint64(limbBase))
			numLo2, c := bits.Add64(numLo, loW, 0)
			numHi2 := numHi + c
			qq, _ := bits.Div64(numHi2, numLo2, divisor)
			if qq >= uint64(limbBase) {
				qq = uint64(limbBase) - 1
			}
			qhat = qq
		}

		prod := mulBySmall(bNorm, Word(qhat)) // length n+1
		for magCmp(rem[j:j+len(prod)], prod) < 0 {
			qhat--
			subAt(prod, bNorm, 0)
		}
		subAt(rem, prod, j)
		qLimbs[j] = Word(qhat)
	}

	qn := normalizeLimbs(qLimbs)
	remScaled := normalizeLimbs(rem[:n])
	trueRem, _ := divSingleLimb(remScaled, s)
	return qn, trueRem
}

// mulBySmall multiplies magnitude a by a single limb s, returning a
// freshly allocated, non-normalized result of length len(a)+1 (the high
// limb is 0 if there is no overflow into an extra limb).
func mulBySmall(a []Word, s Word) []Word {
	out := make([]Word, len(a)+1)
	if s == 0 || len(a) == 0 {
		return out
	}
	var carry uint64
	sv := uint64(s)
	for i, av := range a {
		hi, lo := bits.Mul64(uint64(av), sv)
		lo2, c := bits.Add64(lo, carry, 0)
		hi2 := hi + c
		newCarry, digit := bits.Div64(hi2, lo2, uint64(limbBase))
		out[i] = Word(digit)
		carry = newCarry
	}
	out[len(a)] = Word(carry)
	return out
}

// subAt subtracts src from dst starting at limb offset, propagating
// borrow into the higher limbs of dst. It reports whether a borrow was
// still outstanding past the end of dst (i.e. the result went negative).
func subAt(dst, src []Word, offset int) bool {
	var borrow uint64
	for i, sv := range src {
		d := uint64(dst[offset+i])
		need := uint64(sv) + borrow
		if d < need {
			dst[offset+i] = Word(d + uint64(limbBase) - need)
			borrow = 1
		} else {
			dst[offset+i] = Word(d - need)
			borrow = 0
		}
	}
	i := offset + len(src)
	for borrow != 0 && i < len(dst) {
		if dst[i] == 0 {
			dst[i] = limbBase - 1
		} else {
			dst[i]--
			borrow = 0
		}
		i++
	}
	return borrow != 0
}
