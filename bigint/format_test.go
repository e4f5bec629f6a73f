package bigint

import (
	"errors"
	"testing"
)

func TestFromStringValid(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"0000", "0"},
		{"-0000", "0"},
		{"5", "5"},
		{"-5", "-5"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-123456789012345678901234567890", "-123456789012345678901234567890"},
	}
	for _, c := range cases {
		got, err := FromString(c.in)
		if err != nil {
			t.Fatalf("FromString(%q): unexpected error: %v", c.in, err)
		}
		if got.String() != c.want {
			t.Errorf("FromString(%q).String() = %q, want %q", c.in, got.String(), c.want)
		}
	}
}

func TestFromStringInvalid(t *testing.T) {
	for _, s := range []string{"", "-", "+", "+5", "12a", "1 2", " 1", "1 ", "--1", "1.0", "0x1"} {
		_, err := FromString(s)
		if err == nil {
			t.Errorf("FromString(%q): expected error, got nil", s)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("FromString(%q): error = %v, want wrapping ErrInvalidInput", s, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "999999999999999999", "1000000000000000000",
		"-1000000000000000000", "18446744073709551616",
	}
	for _, s := range values {
		v, err := FromString(s)
		if err != nil {
			t.Fatalf("FromString(%q): %v", s, err)
		}
		if v.String() != s {
			t.Errorf("round trip %q -> %q", s, v.String())
		}
	}
}

func TestGoString(t *testing.T) {
	v, _ := FromString("-42")
	got := v.GoString()
	want := `bigint.BigInt{-42}`
	if got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}
