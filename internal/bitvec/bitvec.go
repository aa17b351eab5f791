// Package bitvec provides operations on bit vectors stored one bit per byte.
package bitvec

import "fmt"

// XOR XORs a and b into dst. All three must be the same length.
func XOR(dst, a, b []byte) {
	if len(a) != len(dst) || len(b) != len(dst) {
		panic(fmt.Sprintf("sdes/bitvec: cannot XOR %d and %d bits into %d", len(a), len(b), len(dst)))
	}

	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// RotateLeft writes src circularly shifted left by t positions into dst, so that dst[i] = src[(i+t) mod len(src)].
// Negative t rotates right. dst and src must be the same length and must not overlap.
func RotateLeft(dst, src []byte, t int) {
	n := len(src)
	if len(dst) != n {
		panic(fmt.Sprintf("sdes/bitvec: cannot rotate %d bits into %d", n, len(dst)))
	}
	if n == 0 {
		return
	}

	t %= n
	if t < 0 {
		t += n
	}

	for i := range dst {
		dst[i] = src[(i+t)%n]
	}
}

// Split returns the left and right halves of b. Both alias b. It panics if b has an odd length.
func Split(b []byte) (left, right []byte) {
	if len(b)%2 != 0 {
		panic(fmt.Sprintf("sdes/bitvec: cannot split %d bits in half", len(b)))
	}

	h := len(b) / 2
	return b[:h:h], b[h:]
}
