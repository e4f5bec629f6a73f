package bigint

import (
	"strconv"
	"strings"
)

// FromString parses a decimal string into a BigInt. An optional leading
// '-' selects a negative value; all remaining characters must be decimal
// digits. Leading zeros are accepted and discarded. An empty string, a
// bare "-", or any non-digit character fails with ErrInvalidInput.
func FromString(s string) (BigInt, error) {
	if s == "" {
		return BigInt{}, wrapErr(ErrInvalidInput, "parse")
	}

	s0 := nonNegative
	rest := s
	if s[0] == '-' {
		s0 = negative
		rest = s[1:]
	}
	if rest == "" {
		return BigInt{}, wrapErr(ErrInvalidInput, "parse")
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return BigInt{}, wrapErr(ErrInvalidInput, "parse")
		}
	}

	n := len(rest)
	numLimbs := (n + limbDigits - 1) / limbDigits
	limbs := make([]Word, numLimbs)
	end := n
	for i := 0; i < numLimbs; i++ {
		start := end - limbDigits
		if start < 0 {
			start = 0
		}
		v, err := strconv.ParseUint(rest[start:end], 10, 64)
		if err != nil {
			return BigInt{}, wrapErr(ErrInvalidInput, "parse")
		}
		limbs[i] = Word(v)
		end = start
	}
	return fromLimbs(s0, limbs), nil
}

// String returns the canonical decimal representation of a: a leading '-'
// iff a is strictly negative, followed by the magnitude with no leading
// zeros. Zero formats as "0".
func (a BigInt) String() string {
	if a.IsNegative() {
		return "-" + a.magnitudeString()
	}
	return a.magnitudeString()
}

// GoString implements fmt.GoStringer for %#v debugging output.
func (a BigInt) GoString() string {
	return "bigint.BigInt{" + a.String() + "}"
}

func (a BigInt) magnitudeString() string {
	return formatMagnitude(a.limbsOrZero())
}

func formatMagnitude(limbs []Word) string {
	var sb strings.Builder
	top := len(limbs) - 1
	sb.WriteString(strconv.FormatUint(uint64(limbs[top]), 10))
	for i := top - 1; i >= 0; i-- {
		s := strconv.FormatUint(uint64(limbs[i]), 10)
		sb.WriteString(strings.Repeat("0", limbDigits-len(s)))
		sb.WriteString(s)
	}
	return sb.String()
}
