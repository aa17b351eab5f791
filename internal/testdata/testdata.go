// Package testdata provides a deterministic source of pseudorandom test inputs.
package testdata

import "crypto/sha3"

// A DRBG is a SHAKE128-based deterministic random bit generator for seeding tests and fuzzers.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a DRBG keyed with the given domain string.
func New(domain string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(domain))
	return &DRBG{h: h}
}

// Data returns the next n bytes of output.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Byte returns the next byte of output.
func (d *DRBG) Byte() byte {
	return d.Data(1)[0]
}

// Uint16 returns the next two bytes of output as a big-endian integer.
func (d *DRBG) Uint16() uint16 {
	b := d.Data(2)
	return uint16(b[0])<<8 | uint16(b[1])
}

// Bool returns a pseudorandom boolean.
func (d *DRBG) Bool() bool {
	return d.Byte()&1 == 1
}
