package bigint

import (
	"math/big"
	"testing"
)

func TestMulFixed(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"0", "12345", "0"},
		{"123456789", "987654321", "121932631112635269"},
		{"-123456789", "987654321", "-121932631112635269"},
		{"-123456789", "-987654321", "121932631112635269"},
		{"999999999999999999", "999999999999999999", "999999999999999998000000000000000001"},
	}
	for _, c := range cases {
		a, b := mustFrom(t, c.a), mustFrom(t, c.b)
		if got := a.Mul(b).String(); got != c.want {
			t.Errorf("%s * %s = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestMulAgainstMathBig(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := randomBigInt(t, 80)
		b := randomBigInt(t, 80)
		want := new(big.Int).Mul(toMathBig(a), toMathBig(b))
		if got := toMathBig(a.Mul(b)); got.Cmp(want) != 0 {
			t.Fatalf("Mul mismatch: %s * %s: got %s want %s", a, b, got, want)
		}
	}
}

func TestMulCrossesKaratsubaThreshold(t *testing.T) {
	a := mustFrom(t, "12345678901234567890123")
	b := mustFrom(t, "98765432109876543210987")
	want := new(big.Int).Mul(toMathBig(a), toMathBig(b))
	if got := toMathBig(a.Mul(b)); got.Cmp(want) != 0 {
		t.Fatalf("Mul mismatch across threshold: got %s want %s", got, want)
	}
}
