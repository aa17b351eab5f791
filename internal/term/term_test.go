package term_test

import (
	"os"
	"testing"

	"github.com/Pirat3King/simplified-des/internal/term"
)

func TestPipeIsNotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = r.Close()
		_ = w.Close()
	}()

	if term.IsTerminal(int(r.Fd())) { //nolint:gosec // fd fits in an int
		t.Error("IsTerminal(pipe) = true, want = false")
	}
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "term")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = f.Close()
	}()

	if term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in an int
		t.Error("IsTerminal(file) = true, want = false")
	}
}
