package sdes_test

import (
	"bytes"
	"crypto/cipher"
	"testing"

	sdes "github.com/Pirat3King/simplified-des"
	"github.com/Pirat3King/simplified-des/internal/testdata"
)

func TestNewCipher(t *testing.T) {
	t.Parallel()

	block := sdes.NewCipher(mustKey(t, "1010000010"), false)
	if got, want := block.BlockSize(), 1; got != want {
		t.Errorf("BlockSize() = %d, want = %d", got, want)
	}

	dst := make([]byte, 1)
	block.Encrypt(dst, []byte{0xbd})
	if got, want := dst[0], byte(0x75); got != want {
		t.Errorf("Encrypt(0xbd) = %#x, want = %#x", got, want)
	}

	block.Decrypt(dst, dst)
	if got, want := dst[0], byte(0xbd); got != want {
		t.Errorf("Decrypt(0x75) = %#x, want = %#x", got, want)
	}
}

func TestNewCipherMatchesEncrypt(t *testing.T) {
	t.Parallel()

	drbg := testdata.New("sdes cipher")
	for range 64 {
		key := sdes.KeyFromUint16(drbg.Uint16())
		modifiedS1 := drbg.Bool()
		p := drbg.Byte()

		dst := make([]byte, 1)
		sdes.NewCipher(key, modifiedS1).Encrypt(dst, []byte{p})
		if got, want := dst[0], sdes.Encrypt(sdes.BlockFromByte(p), key, modifiedS1).Byte(); got != want {
			t.Errorf("NewCipher(%s, %v).Encrypt(%#x) = %#x, want = %#x", key, modifiedS1, p, got, want)
		}
	}
}

func TestNewCipherCBC(t *testing.T) {
	t.Parallel()

	block := sdes.NewCipher(mustKey(t, "0111111101"), true)
	iv := []byte{0x42}
	plaintext := []byte("simplified DES in CBC mode")

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, plaintext)
	if bytes.Equal(ciphertext, plaintext) {
		t.Error("CBC ciphertext equals plaintext")
	}

	decrypted := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(decrypted, ciphertext)
	if got, want := decrypted, plaintext; !bytes.Equal(got, want) {
		t.Errorf("CBC round trip = %q, want = %q", got, want)
	}
}

func TestNewCipherShortBuffers(t *testing.T) {
	t.Parallel()

	block := sdes.NewCipher(sdes.Key{}, false)
	for name, f := range map[string]func(){
		"encrypt short src": func() { block.Encrypt(make([]byte, 1), nil) },
		"encrypt short dst": func() { block.Encrypt(nil, []byte{1}) },
		"decrypt short src": func() { block.Decrypt(make([]byte, 1), nil) },
		"decrypt short dst": func() { block.Decrypt(nil, []byte{1}) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s should panic", name)
				}
			}()
			f()
		}()
	}
}
