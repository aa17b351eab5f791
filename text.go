package sdes

import (
	"encoding"
	"fmt"
	"strings"
)

// An InvalidInputError describes a string which could not be parsed as a bit vector.
type InvalidInputError struct {
	// Input is the rejected string.
	Input string

	// Bits is the number of bits expected.
	Bits int

	// Reason describes what was wrong with Input.
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("sdes: invalid %d-bit input %q: %s", e.Bits, e.Input, e.Reason)
}

// ParseBlock parses an 8-digit string of 0s and 1s, such as "10111101", into a Block.
func ParseBlock(s string) (Block, error) {
	var b Block
	if err := parseBits(b[:], s); err != nil {
		return Block{}, err
	}
	return b, nil
}

// ParseKey parses a 10-digit string of 0s and 1s, such as "1010000010", into a Key.
func ParseKey(s string) (Key, error) {
	var k Key
	if err := parseBits(k[:], s); err != nil {
		return Key{}, err
	}
	return k, nil
}

func parseBits(dst []uint8, s string) error {
	t := strings.TrimSpace(s)
	if len(t) != len(dst) {
		return &InvalidInputError{Input: s, Bits: len(dst), Reason: fmt.Sprintf("got %d digits", len(t))}
	}

	for i := range len(t) {
		switch c := t[i]; c {
		case '0', '1':
			dst[i] = c - '0'
		default:
			return &InvalidInputError{Input: s, Bits: len(dst), Reason: fmt.Sprintf("digit %d is %q, not 0 or 1", i+1, c)}
		}
	}

	return nil
}

func formatBits(b []uint8) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteByte('0' + v&1)
	}
	return sb.String()
}

func (b Block) String() string {
	return formatBits(b[:])
}

// MarshalText implements encoding.TextMarshaler.
func (b Block) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Block) UnmarshalText(text []byte) error {
	v, err := ParseBlock(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Byte returns the block as a byte, most significant bit first.
func (b Block) Byte() byte {
	var v byte
	for _, bit := range b {
		v = v<<1 | bit&1
	}
	return v
}

// BlockFromByte returns the block for v, most significant bit first.
func BlockFromByte(v byte) Block {
	var b Block
	for i := range b {
		b[i] = v >> (BlockBits - 1 - i) & 1
	}
	return b
}

func (k Key) String() string {
	return formatBits(k[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Uint16 returns the key as an integer in [0, 1023], most significant bit first.
func (k Key) Uint16() uint16 {
	var v uint16
	for _, bit := range k {
		v = v<<1 | uint16(bit&1)
	}
	return v
}

// KeyFromUint16 returns the key for the low 10 bits of v, most significant bit first.
func KeyFromUint16(v uint16) Key {
	var k Key
	for i := range k {
		k[i] = uint8(v>>(KeyBits-1-i)) & 1 //nolint:gosec // masked to one bit
	}
	return k
}

func (k SubKey) String() string {
	return formatBits(k[:])
}

// MarshalText implements encoding.TextMarshaler.
func (k SubKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

//nolint:gochecknoglobals // interface checks
var (
	_ encoding.TextMarshaler   = Block{}
	_ encoding.TextUnmarshaler = (*Block)(nil)
	_ encoding.TextMarshaler   = Key{}
	_ encoding.TextUnmarshaler = (*Key)(nil)
	_ encoding.TextMarshaler   = SubKey{}
	_ fmt.Stringer             = Block{}
)
