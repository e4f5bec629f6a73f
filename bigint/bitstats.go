package bigint

import "math/bits"

// bitWord is a 64-bit word of a magnitude's binary expansion, the binary-
// radix counterpart of a decimal Word, used only by the bit-level helpers
// in this file and by the multi-exponentiation table in modexp.go.
type bitWord = uint64

// toBinaryWords converts |a| into a little-endian vector of 64-bit words,
// least significant word first, with no trailing zero words (except that
// the zero value maps to a single zero word).
func toBinaryWords(a BigInt) []bitWord {
	mag := a.Abs()
	if mag.isZero() {
		return []bitWord{0}
	}
	var words []bitWord
	two := FromUint64(2)
	bitIndex := 0
	for !mag.isZero() {
		q, _ := mag.Div(two)
		r, _ := mag.Mod(two)
		bit, _ := r.Uint64()
		wordIdx := bitIndex / 64
		for len(words) <= wordIdx {
			words = append(words, 0)
		}
		if bit != 0 {
			words[wordIdx] |= 1 << uint(bitIndex%64)
		}
		bitIndex++
		mag = q
	}
	return trimWords(words)
}

// fromBinaryWords reconstructs the non-negative BigInt whose binary
// expansion is the given little-endian word vector.
func fromBinaryWords(words []bitWord) BigInt {
	result := Zero()
	base := FromUint64(2)
	weight := One()
	for _, w := range words {
		for i := 0; i < 64; i++ {
			if w&(1<<uint(i)) != 0 {
				result = result.Add(weight)
			}
			weight = weight.Mul(base)
		}
	}
	return result
}

func trimWords(words []bitWord) []bitWord {
	n := len(words)
	for n > 1 && words[n-1] == 0 {
		n--
	}
	return words[:n]
}

// BitLen returns the number of bits in the binary representation of |a|,
// with BitLen(0) == 0.
func BitLen(a BigInt) int {
	words := toBinaryWords(a)
	n := len(words)
	if n == 1 && words[0] == 0 {
		return 0
	}
	return (n-1)*64 + bits.Len64(words[n-1])
}

// OnesCount returns the number of set bits in the binary representation
// of |a|, the decimal-BigInt analogue of the teacher's per-word bit
// counting used to size its precompute tables.
func OnesCount(a BigInt) int {
	words := toBinaryWords(a)
	total := 0
	for _, w := range words {
		total += bits.OnesCount64(w)
	}
	return total
}

// CommonWords factors the bits shared between |a| and |b| out of both
// operands: it returns aRest, bRest and common such that a == aRest +
// common and b == bRest + common in binary, with common holding exactly
// the bit positions set in both inputs. This mirrors the teacher's gcw,
// adapted from binary nat words to the bit expansion of a decimal BigInt.
func CommonWords(a, b BigInt) (aRest, bRest, common BigInt) {
	aw, bw := toBinaryWords(a), toBinaryWords(b)
	n := len(aw)
	if len(bw) < n {
		n = len(bw)
	}
	commonW := make([]bitWord, n)
	aRestW := make([]bitWord, len(aw))
	bRestW := make([]bitWord, len(bw))
	copy(aRestW, aw)
	copy(bRestW, bw)
	for i := 0; i < n; i++ {
		commonW[i] = aw[i] & bw[i]
		aRestW[i] = aw[i] &^ commonW[i]
		bRestW[i] = bw[i] &^ commonW[i]
	}
	return fromBinaryWords(aRestW), fromBinaryWords(bRestW), fromBinaryWords(commonW)
}

// ThreefoldCommonWords is the three-operand generalization of CommonWords,
// grounded on the teacher's threefoldGCW.
func ThreefoldCommonWords(a, b, c BigInt) (aRest, bRest, cRest, common BigInt) {
	aw, bw, cw := toBinaryWords(a), toBinaryWords(b), toBinaryWords(c)
	n := minLen(len(aw), minLen(len(bw), len(cw)))
	commonW := make([]bitWord, n)
	aRestW, bRestW, cRestW := copyWordsB(aw), copyWordsB(bw), copyWordsB(cw)
	for i := 0; i < n; i++ {
		commonW[i] = aw[i] & bw[i] & cw[i]
		aRestW[i] = aw[i] &^ commonW[i]
		bRestW[i] = bw[i] &^ commonW[i]
		cRestW[i] = cw[i] &^ commonW[i]
	}
	return fromBinaryWords(aRestW), fromBinaryWords(bRestW), fromBinaryWords(cRestW), fromBinaryWords(commonW)
}

// FourfoldCommonWords is the four-operand generalization of CommonWords,
// grounded on the teacher's fourfoldGCW, used to share work across the
// four bases of a fourfold multi-exponentiation table.
func FourfoldCommonWords(a, b, c, d BigInt) (aRest, bRest, cRest, dRest, common BigInt) {
	aw, bw, cw, dw := toBinaryWords(a), toBinaryWords(b), toBinaryWords(c), toBinaryWords(d)
	n := minLen(minLen(len(aw), len(bw)), minLen(len(cw), len(dw)))
	commonW := make([]bitWord, n)
	aRestW, bRestW, cRestW, dRestW := copyWordsB(aw), copyWordsB(bw), copyWordsB(cw), copyWordsB(dw)
	for i := 0; i < n; i++ {
		commonW[i] = aw[i] & bw[i] & cw[i] & dw[i]
		aRestW[i] = aw[i] &^ commonW[i]
		bRestW[i] = bw[i] &^ commonW[i]
		cRestW[i] = cw[i] &^ commonW[i]
		dRestW[i] = dw[i] &^ commonW[i]
	}
	return fromBinaryWords(aRestW), fromBinaryWords(bRestW), fromBinaryWords(cRestW), fromBinaryWords(dRestW), fromBinaryWords(commonW)
}

func minLen(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func copyWordsB(w []bitWord) []bitWord {
	out := make([]bitWord, len(w))
	copy(out, w)
	return out
}
