// Package perm implements the fixed bit permutations used by S-DES.
//
// A permutation is described by a table of 1-based source positions: output bit i is input bit table[i]-1. A table may
// select a source position more than once, which is how the expansion permutation widens a nibble to a byte.
package perm

import "fmt"

// A Table is a fixed bit permutation from In() input positions to Out() output positions.
type Table struct {
	in  int
	pos []uint8
}

//nolint:gochecknoglobals // read-only tables
var (
	// P10 permutes the 10-bit key at the start of the key schedule.
	P10 = mustTable(10, 3, 5, 2, 7, 4, 10, 1, 9, 8, 6)

	// P8 selects and permutes 8 of the 10 shifted key bits to form a subkey.
	P8 = mustTable(10, 6, 3, 7, 4, 8, 5, 10, 9)

	// P4 permutes the S-box output.
	P4 = mustTable(4, 2, 4, 3, 1)

	// IP is the initial permutation of the block.
	IP = mustTable(8, 2, 6, 3, 1, 4, 8, 5, 7)

	// InvIP is the inverse of IP.
	InvIP = mustTable(8, 4, 1, 3, 5, 7, 2, 8, 6)

	// EP expands a 4-bit half to 8 bits, using each input position twice.
	EP = mustTable(4, 4, 1, 2, 3, 2, 3, 4, 1)
)

func mustTable(in int, pos ...uint8) Table {
	for i, p := range pos {
		if p < 1 || int(p) > in {
			panic(fmt.Sprintf("sdes/perm: position %d at index %d is outside [1, %d]", p, i, in))
		}
	}
	return Table{in: in, pos: pos}
}

// In returns the number of input bits the table reads.
func (t Table) In() int {
	return t.in
}

// Out returns the number of output bits the table writes.
func (t Table) Out() int {
	return len(t.pos)
}

// Permute writes the permutation of src into dst. It panics if src is not In() bits long or dst is not Out() bits
// long. dst and src must not overlap.
func (t Table) Permute(dst, src []byte) {
	if len(src) != t.in || len(dst) != len(t.pos) {
		panic(fmt.Sprintf("sdes/perm: cannot permute %d bits into %d with a %d->%d table",
			len(src), len(dst), t.in, len(t.pos)))
	}

	for i, p := range t.pos {
		dst[i] = src[p-1]
	}
}
