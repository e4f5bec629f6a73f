// Copyright (c) 2025 Drake Manzanares
// Distributed under the MIT License.

package bigint

import (
	"math/bits"
	"strconv"
	"strings"
)

// karatsubaDigitThreshold is the operand-length threshold, in decimal
// digits, below which multiplication uses a native 64x64 product instead
// of recursing. Below this size the product fits in a uint64, the
// decimal-radix analogue of the teacher's karatsubaThreshold gate on
// nat.mul.
const karatsubaDigitThreshold = 10

// Mul returns a * b. Mul never fails and never mutates a or b.
func (a BigInt) Mul(b BigInt) BigInt {
	if a.isZero() || b.isZero() {
		return Zero()
	}

	magStr := mulDecimal(a.magnitudeString(), b.magnitudeString())
	mag := parseMagnitude(magStr)

	s := nonNegative
	if a.sgn != b.sgn {
		s = negative
	}
	mag.sgn = s
	return mag.normalize()
}

// mulDecimal multiplies two unsigned decimal strings (no sign; leading
// zeros, as in the low halves of a split, are allowed) via Karatsuba
// recursion over the text, with a
// native-word base case, following the original source's string-threaded
// split at n = max(len(x),len(y))/2.
func mulDecimal(xs, ys string) string {
	if isAllZeroDigits(xs) || isAllZeroDigits(ys) {
		return "0"
	}

	if len(xs) < karatsubaDigitThreshold && len(ys) < karatsubaDigitThreshold {
		x, _ := strconv.ParseUint(xs, 10, 64)
		y, _ := strconv.ParseUint(ys, 10, 64)
		_, lo := bits.Mul64(x, y) // operands < 10^9 each, product < 10^18, fits in lo
		return strconv.FormatUint(lo, 10)
	}

	m := len(xs)
	if len(ys) > m {
		m = len(ys)
	}
	n := m / 2

	aHi, aLo := splitDecimal(xs, n)
	bHi, bLo := splitDecimal(ys, n)

	ac := parseMagnitude(mulDecimal(aHi, bHi))
	bd := parseMagnitude(mulDecimal(aLo, bLo))

	sumA := parseMagnitude(aHi).Add(parseMagnitude(aLo))
	sumB := parseMagnitude(bHi).Add(parseMagnitude(bLo))
	abcd := parseMagnitude(mulDecimal(sumA.magnitudeString(), sumB.magnitudeString()))

	cross := abcd.Sub(ac).Sub(bd) // == aHi*bLo + aLo*bHi, always non-negative

	result := parseMagnitude(shiftDecimal(ac.magnitudeString(), 2*n))
	result = result.Add(parseMagnitude(shiftDecimal(cross.magnitudeString(), n)))
	result = result.Add(bd)
	return result.magnitudeString()
}

// splitDecimal splits an unsigned decimal string into a high part of
// len(s)-n digits and a low part of exactly n digits. If s has n digits or
// fewer, the high part is "0" (s is entirely the low part, conceptually
// zero-padded on the left).
func splitDecimal(s string, n int) (hi, lo string) {
	if len(s) > n {
		return s[:len(s)-n], s[len(s)-n:]
	}
	return "0", s
}

// shiftDecimal appends k zero digits, the decimal equivalent of
// multiplying by 10^k by string concatenation rather than limb-space
// shifting.
func shiftDecimal(s string, k int) string {
	if k <= 0 || s == "0" {
		return s
	}
	return s + strings.Repeat("0", k)
}

func isAllZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// parseMagnitude parses an unsigned decimal string known to be well-formed
// (produced internally by this package), ignoring the impossible error.
func parseMagnitude(s string) BigInt {
	v, _ := FromString(s)
	return v
}
