package bigint

import (
	"errors"
	"testing"
)

func TestPowFixed(t *testing.T) {
	cases := []struct {
		base string
		exp  int64
		want string
	}{
		{"2", 0, "1"},
		{"0", 0, "1"},
		{"0", 5, "0"},
		{"5", 1, "5"},
		{"2", 10, "1024"},
		{"-2", 3, "-8"},
		{"-2", 2, "4"},
		{"10", 18, "1000000000000000000"},
	}
	for _, c := range cases {
		base := mustFrom(t, c.base)
		got, err := Pow(base, c.exp)
		if err != nil {
			t.Fatalf("Pow(%s, %d): %v", c.base, c.exp, err)
		}
		if got.String() != c.want {
			t.Errorf("Pow(%s, %d) = %s, want %s", c.base, c.exp, got, c.want)
		}
	}
}

func TestPowNegativeExponent(t *testing.T) {
	base := mustFrom(t, "2")
	if _, err := Pow(base, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Pow with negative exponent: err = %v, want ErrInvalidInput", err)
	}
}

func TestPowTwoToThousand(t *testing.T) {
	got, err := Pow(mustFrom(t, "2"), 1000)
	if err != nil {
		t.Fatalf("Pow(2, 1000): %v", err)
	}
	s := got.String()
	if len(s) != 302 {
		t.Errorf("2^1000 has %d digits, want 302", len(s))
	}
	sum := 0
	for _, r := range s {
		sum += int(r - '0')
	}
	if sum != 1366 {
		t.Errorf("digit sum of 2^1000 = %d, want 1366", sum)
	}
}

func TestPowLargestPrimeFactorScenario(t *testing.T) {
	// 600851475143's largest prime factor is 6857 (Project Euler problem 3);
	// confirm it divides evenly and the cofactor multiplied back out matches.
	n := mustFrom(t, "600851475143")
	factor := mustFrom(t, "6857")
	q, err := n.Div(factor)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	r, err := n.Mod(factor)
	if err != nil {
		t.Fatalf("Mod: %v", err)
	}
	if !r.IsZero() {
		t.Fatalf("6857 does not divide 600851475143 evenly, remainder = %s", r)
	}
	if got := q.Mul(factor); !got.Eq(n) {
		t.Fatalf("q*factor = %s, want %s", got, n)
	}
}
