package bigint

import "testing"

func TestBitLen(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"2", 2},
		{"3", 2},
		{"255", 8},
		{"256", 9},
		{"-256", 9},
	}
	for _, c := range cases {
		if got := BitLen(mustFrom(t, c.in)); got != c.want {
			t.Errorf("BitLen(%s) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestOnesCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"255", 8},
		{"256", 1},
		{"7", 3},
	}
	for _, c := range cases {
		if got := OnesCount(mustFrom(t, c.in)); got != c.want {
			t.Errorf("OnesCount(%s) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCommonWordsReconstructs(t *testing.T) {
	a := mustFrom(t, "202") // 11001010
	b := mustFrom(t, "218") // 11011010
	aRest, bRest, common := CommonWords(a, b)

	if got := aRest.Add(common); !got.Eq(a) {
		t.Errorf("aRest + common = %s, want %s", got, a)
	}
	if got := bRest.Add(common); !got.Eq(b) {
		t.Errorf("bRest + common = %s, want %s", got, b)
	}
}

func TestFourfoldCommonWordsReconstructs(t *testing.T) {
	vals := [4]BigInt{
		mustFrom(t, "202"),
		mustFrom(t, "218"),
		mustFrom(t, "250"),
		mustFrom(t, "90"),
	}
	r0, r1, r2, r3, common := FourfoldCommonWords(vals[0], vals[1], vals[2], vals[3])
	rest := [4]BigInt{r0, r1, r2, r3}
	for i, v := range vals {
		if got := rest[i].Add(common); !got.Eq(v) {
			t.Errorf("rest[%d] + common = %s, want %s", i, got, v)
		}
	}
}

func TestBinaryWordsRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "123456789012345678901234567890"} {
		v := mustFrom(t, s)
		words := toBinaryWords(v)
		got := fromBinaryWords(words)
		if !got.Eq(v) {
			t.Errorf("round trip through binary words: %s -> %s", s, got)
		}
	}
}
