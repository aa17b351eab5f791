// Package sdes implements Simplified DES (S-DES), the 8-bit block, 10-bit key Feistel cipher used to teach the
// structure of DES.
//
// S-DES runs an initial permutation, two Feistel rounds with a half swap between them, and the inverse initial
// permutation. Each round expands the right half to eight bits, mixes in a round subkey, substitutes the result
// through two 4x4 S-boxes and permutes it into the left half. Decryption is the same pipeline with the subkeys applied
// in the opposite order.
//
// Bit vectors are fixed-size arrays holding one bit (0 or 1) per element, with index 0 as the leftmost, most
// significant bit. Every operation is a pure function of its inputs; the permutation and S-box tables are read-only,
// so concurrent use is safe.
//
// S-DES is not secure. It exists to demonstrate the shape of DES at a size which can be worked by hand.
package sdes

import (
	"github.com/Pirat3King/simplified-des/internal/bitvec"
	"github.com/Pirat3King/simplified-des/internal/perm"
)

const (
	// BlockBits is the size, in bits, of a block.
	BlockBits = 8

	// KeyBits is the size, in bits, of a key.
	KeyBits = 10

	// SubKeyBits is the size, in bits, of a round subkey.
	SubKeyBits = 8
)

// A Block is an 8-bit plaintext or ciphertext block.
type Block [BlockBits]uint8

// A Key is a 10-bit S-DES key.
type Key [KeyBits]uint8

// A SubKey is an 8-bit round subkey derived from a Key.
type SubKey [SubKeyBits]uint8

// A Trace records the intermediate values of a single encryption or decryption.
type Trace struct {
	// SubKey1 and SubKey2 are the subkeys derived from the key, in schedule order regardless of direction.
	SubKey1, SubKey2 SubKey

	// Swapped is the block after the first round and the half swap.
	Swapped Block

	// Output is the resulting ciphertext or plaintext.
	Output Block
}

// Encrypt returns the encryption of plaintext under key. If modifiedS1 is set, the right-hand S-box is S1's modified
// variant.
func Encrypt(plaintext Block, key Key, modifiedS1 bool) Block {
	return EncryptTrace(plaintext, key, modifiedS1).Output
}

// Decrypt returns the decryption of ciphertext under key. modifiedS1 must match the value used to encrypt.
func Decrypt(ciphertext Block, key Key, modifiedS1 bool) Block {
	return DecryptTrace(ciphertext, key, modifiedS1).Output
}

// EncryptTrace encrypts plaintext like Encrypt and returns the intermediate values along with the ciphertext.
func EncryptTrace(plaintext Block, key Key, modifiedS1 bool) Trace {
	k1, k2 := Schedule(key)
	out, swapped := feistel(plaintext, &k1, &k2, modifiedS1)
	return Trace{SubKey1: k1, SubKey2: k2, Swapped: swapped, Output: out}
}

// DecryptTrace decrypts ciphertext like Decrypt and returns the intermediate values along with the plaintext.
func DecryptTrace(ciphertext Block, key Key, modifiedS1 bool) Trace {
	k1, k2 := Schedule(key)
	out, swapped := feistel(ciphertext, &k2, &k1, modifiedS1)
	return Trace{SubKey1: k1, SubKey2: k2, Swapped: swapped, Output: out}
}

// feistel runs IP, a round with first, the half swap, a round with second, and InvIP. It returns the output and the
// post-swap block.
func feistel(in Block, first, second *SubKey, modifiedS1 bool) (out, swapped Block) {
	var permuted Block
	perm.IP.Permute(permuted[:], in[:])

	var l0, r0 half
	splitBlock(&permuted, &l0, &r0)

	l1 := round(&l0, &r0, first, modifiedS1)

	// The right half becomes the left and the new left half becomes the right.
	swapped = joinHalves(&r0, &l1)

	l2 := round(&r0, &l1, second, modifiedS1)
	preOutput := joinHalves(&l2, &l1)

	perm.InvIP.Permute(out[:], preOutput[:])
	return out, swapped
}

// A half is a 4-bit half of a block.
type half [BlockBits / 2]uint8

func splitBlock(b *Block, left, right *half) {
	l, r := bitvec.Split(b[:])
	copy(left[:], l)
	copy(right[:], r)
}

func joinHalves(left, right *half) Block {
	var b Block
	copy(b[:len(left)], left[:])
	copy(b[len(left):], right[:])
	return b
}
