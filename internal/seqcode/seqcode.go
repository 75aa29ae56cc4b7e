// Package seqcode maps nucleotide characters to the small integer codes the
// scanning kernel works on. Callers upper-case their input first; the table
// itself only knows upper-case letters.
package seqcode

const (
	A int8 = iota
	C
	G
	T
	N

	// Sentinel marks padding and every character outside ACGTN.
	Sentinel int8 = -1
)

var (
	plus       [256]int8
	minus      [256]int8
	complement [256]byte
)

func init() {
	for i := range plus {
		plus[i] = Sentinel
		minus[i] = Sentinel
	}
	plus['A'], plus['C'], plus['G'], plus['T'], plus['N'] = A, C, G, T, N

	for _, pair := range [...][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'R', 'Y'}, {'K', 'M'}, {'B', 'V'}, {'D', 'H'},
	} {
		complement[pair[0]] = pair[1]
		complement[pair[1]] = pair[0]
	}
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['N'] = 'N'

	for c := range minus {
		if cc := complement[c]; cc != 0 {
			minus[c] = plus[cc]
		}
	}
}

// Lookup returns a copy of the 256-entry character-to-code table.
func Lookup() [256]int8 { return plus }

// Code returns the plus-strand code of one character.
func Code(b byte) int8 { return plus[b] }

// IsBase reports whether code is one of A, C, G, T.
func IsBase(code int8) bool { return uint8(code) < 4 }

// Encode maps seq through the lookup table.
func Encode(seq []byte) []int8 {
	out := make([]int8, len(seq))
	for i, b := range seq {
		out[i] = plus[b]
	}
	return out
}

// EncodeComplement encodes the base-wise complement of seq. Positions keep
// their order; the sequence is not reversed.
func EncodeComplement(seq []byte) []int8 {
	out := make([]int8, len(seq))
	for i, b := range seq {
		out[i] = minus[b]
	}
	return out
}

// Complement returns the base-wise complement of seq (unknown characters
// become 'N').
func Complement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		c := complement[b]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
