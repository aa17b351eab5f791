package sdes

import "crypto/cipher"

// NewCipher returns a cipher.Block which encrypts single bytes with S-DES under key, so that S-DES can be used with the
// block modes in crypto/cipher. Bytes are mapped to blocks most significant bit first.
//
// The subkeys are derived once, when the cipher is created.
func NewCipher(key Key, modifiedS1 bool) cipher.Block {
	k1, k2 := Schedule(key)
	return &blockCipher{k1: k1, k2: k2, modifiedS1: modifiedS1}
}

type blockCipher struct {
	k1, k2     SubKey
	modifiedS1 bool
}

func (c *blockCipher) BlockSize() int {
	return 1
}

func (c *blockCipher) Encrypt(dst, src []byte) {
	if len(src) < 1 {
		panic("sdes: input not full block")
	}
	if len(dst) < 1 {
		panic("sdes: output not full block")
	}

	out, _ := feistel(BlockFromByte(src[0]), &c.k1, &c.k2, c.modifiedS1)
	dst[0] = out.Byte()
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	if len(src) < 1 {
		panic("sdes: input not full block")
	}
	if len(dst) < 1 {
		panic("sdes: output not full block")
	}

	out, _ := feistel(BlockFromByte(src[0]), &c.k2, &c.k1, c.modifiedS1)
	dst[0] = out.Byte()
}

var _ cipher.Block = (*blockCipher)(nil)
