// Package sbox implements the S-DES substitution boxes.
//
// Each box maps a 4-bit input to a 2-bit output. The outer bits of the input (0 and 3) select the row and the inner
// bits (1 and 2) select the column, most significant bit first.
package sbox

import "fmt"

// A Box is a 4x4 substitution table with entries in [0, 3].
type Box [4][4]uint8

//nolint:gochecknoglobals // read-only tables
var (
	// S0 substitutes the left half of the expanded block.
	S0 = Box{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 3, 2},
	}

	// S1 substitutes the right half of the expanded block.
	S1 = Box{
		{0, 1, 2, 3},
		{2, 0, 1, 3},
		{3, 0, 1, 0},
		{2, 1, 0, 3},
	}

	// S1Mod is a variant of S1 with its first and last rows changed.
	S1Mod = Box{
		{2, 1, 0, 3},
		{2, 0, 1, 3},
		{3, 0, 1, 0},
		{0, 1, 2, 3},
	}
)

// Value returns the table entry addressed by the 4-bit input in.
func (b *Box) Value(in []byte) uint8 {
	if len(in) != 4 {
		panic(fmt.Sprintf("sdes/sbox: input must be 4 bits, got %d", len(in)))
	}

	row := in[0]<<1 | in[3]
	col := in[1]<<1 | in[2]
	return b[row][col]
}

// Lookup writes the 2-bit output for the 4-bit input src into dst.
func (b *Box) Lookup(dst, src []byte) {
	if len(dst) != 2 {
		panic(fmt.Sprintf("sdes/sbox: output must be 2 bits, got %d", len(dst)))
	}

	v := b.Value(src)
	dst[0] = v >> 1 & 1
	dst[1] = v & 1
}

// Substitute maps the 8-bit src to the 4-bit dst. The left half of src goes through S0 and the right half through
// S1, or S1Mod if modifiedS1 is set.
func Substitute(dst, src []byte, modifiedS1 bool) {
	if len(src) != 8 || len(dst) != 4 {
		panic(fmt.Sprintf("sdes/sbox: cannot substitute %d bits into %d", len(src), len(dst)))
	}

	s1 := &S1
	if modifiedS1 {
		s1 = &S1Mod
	}

	S0.Lookup(dst[:2], src[:4])
	s1.Lookup(dst[2:], src[4:])
}
