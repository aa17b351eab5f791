// Command sdes encrypts and decrypts 8-bit blocks with Simplified DES.
//
// Run without a subcommand, it prompts for a plaintext, a key and the S1 variant, then encrypts the plaintext and
// decrypts the result, printing the block after the half swap for each direction.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Pirat3King/simplified-des/internal/term"
)

type cli struct {
	LogLevel slog.Level `default:"info" env:"SDES_LOG_LEVEL" help:"Log level (debug, info, warn, error)."`

	Interactive interactiveCmd `cmd:"" default:"1" help:"Prompt for a plaintext, key and S1 variant, then encrypt and decrypt."`
	Encrypt     encryptCmd     `cmd:"" help:"Encrypt an 8-bit plaintext block."`
	Decrypt     decryptCmd     `cmd:"" help:"Decrypt an 8-bit ciphertext block."`
}

// env is bound to every command's Run method.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
	prompt bool
}

type exit int

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("sdes"),
		kong.Description("Encrypt and decrypt 8-bit blocks with Simplified DES."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exit(code)) }),
	)
	if err != nil {
		panic(err)
	}

	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(exit)
			if !ok {
				panic(r)
			}
			code = int(e)
		}
	}()

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: c.LogLevel}))
	e := &env{
		stdin:  stdin,
		stdout: stdout,
		log:    log,
		prompt: isTerminal(stdin),
	}

	if err := ctx.Run(e); err != nil {
		log.Error("failed", "cmd", ctx.Command(), "err", err)
		return 1
	}
	return 0
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in an int
}
