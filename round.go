package sdes

import (
	"github.com/Pirat3King/simplified-des/internal/bitvec"
	"github.com/Pirat3King/simplified-des/internal/perm"
	"github.com/Pirat3King/simplified-des/internal/sbox"
)

// round is the fk function. It returns left XOR F(right, k); right passes through unchanged.
func round(left, right *half, k *SubKey, modifiedS1 bool) half {
	var expanded, mixed [SubKeyBits]uint8
	perm.EP.Permute(expanded[:], right[:])
	bitvec.XOR(mixed[:], expanded[:], k[:])

	var substituted, f, out half
	sbox.Substitute(substituted[:], mixed[:], modifiedS1)
	perm.P4.Permute(f[:], substituted[:])

	bitvec.XOR(out[:], left[:], f[:])
	return out
}
