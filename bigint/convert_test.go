package bigint

import (
	"math"
	"testing"
)

func TestUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 42, 1 << 63, ^uint64(0)} {
		got, ok := FromUint64(v).Uint64()
		if !ok {
			t.Fatalf("Uint64() not ok for %d", v)
		}
		if got != v {
			t.Errorf("Uint64() = %d, want %d", got, v)
		}
	}
}

func TestUint64RejectsNegative(t *testing.T) {
	if _, ok := FromInt64(-1).Uint64(); ok {
		t.Error("Uint64() on negative value: expected ok == false")
	}
}

func TestUint64RejectsOverflow(t *testing.T) {
	big := mustFrom(t, "99999999999999999999999999999999999999")
	if _, ok := big.Uint64(); ok {
		t.Error("Uint64() on huge value: expected ok == false")
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{
		0, 1, -1, 42, -42, 1 << 62, -(1 << 62),
		math.MinInt64, math.MaxInt64,
	} {
		got, ok := FromInt64(v).Int64()
		if !ok {
			t.Fatalf("Int64() not ok for %d", v)
		}
		if got != v {
			t.Errorf("Int64() = %d, want %d", got, v)
		}
	}
}

// TestInt64RejectsOverflow guards the int64(u)/-int64(u) wraparound that
// Int64 relies on to reproduce math.MinInt64: one past either boundary must
// report ok == false rather than silently wrapping.
func TestInt64RejectsOverflow(t *testing.T) {
	tooPositive := mustFrom(t, "9223372036854775808") // math.MaxInt64 + 1
	if _, ok := tooPositive.Int64(); ok {
		t.Error("Int64() on math.MaxInt64+1: expected ok == false")
	}

	tooNegative := mustFrom(t, "-9223372036854775809") // math.MinInt64 - 1
	if _, ok := tooNegative.Int64(); ok {
		t.Error("Int64() on math.MinInt64-1: expected ok == false")
	}
}

func TestAbs(t *testing.T) {
	if got := mustFrom(t, "-5").Abs().String(); got != "5" {
		t.Errorf("Abs(-5) = %s, want 5", got)
	}
	if got := mustFrom(t, "5").Abs().String(); got != "5" {
		t.Errorf("Abs(5) = %s, want 5", got)
	}
	if got := Zero().Abs().String(); got != "0" {
		t.Errorf("Abs(0) = %s, want 0", got)
	}
}
