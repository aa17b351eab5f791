package sdes

import (
	"github.com/Pirat3King/simplified-des/internal/bitvec"
	"github.com/Pirat3King/simplified-des/internal/perm"
)

// Schedule derives the two round subkeys from key.
//
// The key is permuted by P10 and each 5-bit half is rotated left by one to give LS-1, from which P8 selects the first
// subkey. Each half of LS-1 is then rotated left by a further two to give LS-2, from which P8 selects the second.
func Schedule(key Key) (k1, k2 SubKey) {
	var p10, ls1, ls2 Key
	perm.P10.Permute(p10[:], key[:])
	rotateHalves(&ls1, &p10, 1)
	rotateHalves(&ls2, &ls1, 2)

	perm.P8.Permute(k1[:], ls1[:])
	perm.P8.Permute(k2[:], ls2[:])
	return k1, k2
}

func rotateHalves(dst, src *Key, t int) {
	dl, dr := bitvec.Split(dst[:])
	sl, sr := bitvec.Split(src[:])
	bitvec.RotateLeft(dl, sl, t)
	bitvec.RotateLeft(dr, sr, t)
}
