package seqcode

import (
	"bytes"
	"testing"
)

func TestLookupTable(t *testing.T) {
	tab := Lookup()
	want := map[byte]int8{'A': 0, 'C': 1, 'G': 2, 'T': 3, 'N': 4}
	for c := 0; c < 256; c++ {
		exp, ok := want[byte(c)]
		if !ok {
			exp = Sentinel
		}
		if tab[c] != exp {
			t.Fatalf("lookup[%q]=%d want %d", c, tab[c], exp)
		}
	}
}

func TestEncodeAndComplement(t *testing.T) {
	seq := []byte("ACGTNRx")
	plus := Encode(seq)
	wantPlus := []int8{A, C, G, T, N, Sentinel, Sentinel}
	for i := range wantPlus {
		if plus[i] != wantPlus[i] {
			t.Fatalf("plus[%d]=%d want %d", i, plus[i], wantPlus[i])
		}
	}

	minus := EncodeComplement(seq)
	wantMinus := []int8{T, G, C, A, N, Sentinel, Sentinel}
	for i := range wantMinus {
		if minus[i] != wantMinus[i] {
			t.Fatalf("minus[%d]=%d want %d", i, minus[i], wantMinus[i])
		}
	}
}

func TestComplementKeepsOrientation(t *testing.T) {
	got := Complement([]byte("AACGT?"))
	if !bytes.Equal(got, []byte("TTGCAN")) {
		t.Fatalf("complement=%s", got)
	}
	// complement-then-encode equals EncodeComplement
	a := Encode(Complement([]byte("GATTACA")))
	b := EncodeComplement([]byte("GATTACA"))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pos %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestIsBase(t *testing.T) {
	for _, c := range []int8{A, C, G, T} {
		if !IsBase(c) {
			t.Errorf("%d should be a base", c)
		}
	}
	for _, c := range []int8{N, Sentinel, 7} {
		if IsBase(c) {
			t.Errorf("%d should not be a base", c)
		}
	}
}
