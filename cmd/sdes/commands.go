package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	sdes "github.com/Pirat3King/simplified-des"
)

type cipherFlags struct {
	Key        sdes.Key `env:"SDES_KEY" help:"10-bit key, e.g. 1010000010." required:"" short:"k"`
	ModifiedS1 bool     `env:"SDES_MODIFIED_S1" help:"Use the modified S1 box." name:"modified-s1" short:"m"`
	Trace      bool     `help:"Also print the subkeys and the block after the half swap." short:"t"`
}

func (f *cipherFlags) print(w io.Writer, label string, tr sdes.Trace) error {
	if !f.Trace {
		_, err := fmt.Fprintln(w, tr.Output)
		return err
	}

	_, err := fmt.Fprintf(w, "K1: \t\t%s\nK2: \t\t%s\nAfter swap: \t%s\n%s: \t%s\n",
		tr.SubKey1, tr.SubKey2, tr.Swapped, label, tr.Output)
	return err
}

type encryptCmd struct {
	Flags cipherFlags `embed:""`

	Plaintext sdes.Block `arg:"" help:"8-bit plaintext, e.g. 10111101."`
}

func (c *encryptCmd) Run(e *env) error {
	tr := sdes.EncryptTrace(c.Plaintext, c.Flags.Key, c.Flags.ModifiedS1)
	e.log.Debug("encrypted", "plaintext", c.Plaintext, "modified_s1", c.Flags.ModifiedS1, "ciphertext", tr.Output)
	return c.Flags.print(e.stdout, "Ciphertext", tr)
}

type decryptCmd struct {
	Flags cipherFlags `embed:""`

	Ciphertext sdes.Block `arg:"" help:"8-bit ciphertext, e.g. 01110101."`
}

func (c *decryptCmd) Run(e *env) error {
	tr := sdes.DecryptTrace(c.Ciphertext, c.Flags.Key, c.Flags.ModifiedS1)
	e.log.Debug("decrypted", "ciphertext", c.Ciphertext, "modified_s1", c.Flags.ModifiedS1, "plaintext", tr.Output)
	return c.Flags.print(e.stdout, "Plaintext", tr)
}

type interactiveCmd struct{}

func (c *interactiveCmd) Run(e *env) error {
	sc := bufio.NewScanner(e.stdin)
	sc.Split(bufio.ScanWords)

	read := func(prompt string) (string, error) {
		if e.prompt {
			if _, err := fmt.Fprint(e.stdout, prompt); err != nil {
				return "", err
			}
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}

	s, err := read("Enter the 8-bit plaintext: ")
	if err != nil {
		return err
	}
	plaintext, err := sdes.ParseBlock(s)
	if err != nil {
		return err
	}

	s, err = read("Enter the 10-bit key: ")
	if err != nil {
		return err
	}
	key, err := sdes.ParseKey(s)
	if err != nil {
		return err
	}

	s, err = read("Use modified S1 box? (y/n) ")
	if err != nil {
		return err
	}
	modifiedS1, err := parseSelector(s)
	if err != nil {
		return err
	}

	enc := sdes.EncryptTrace(plaintext, key, modifiedS1)
	e.log.Debug("scheduled subkeys", "k1", enc.SubKey1, "k2", enc.SubKey2)
	if _, err := fmt.Fprintf(e.stdout, "After swap: \t%s\nCiphertext: \t%s\n", enc.Swapped, enc.Output); err != nil {
		return err
	}

	dec := sdes.DecryptTrace(enc.Output, key, modifiedS1)
	_, err = fmt.Fprintf(e.stdout, "After swap: \t%s\nPlaintext: \t%s\n", dec.Swapped, dec.Output)
	return err
}

// parseSelector maps a yes/no answer to the modifiedS1 flag.
func parseSelector(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid S1 selector %q: want y or n", s)
	}
}
