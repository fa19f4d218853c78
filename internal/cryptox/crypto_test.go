package cryptox

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestDigest_MatchesBlake2b(t *testing.T) {
	data := "gold medal preview"

	got, n, err := Digest(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := blake2b.Sum256([]byte(data))
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if n != int64(len(data)) {
		t.Errorf("expected %d bytes, got %d", len(data), n)
	}
	if len(got) != DigestSize*2 {
		t.Errorf("expected %d hex chars, got %d", DigestSize*2, len(got))
	}
}

func TestDigest_DifferentInputs(t *testing.T) {
	a, _, _ := Digest(strings.NewReader("a"))
	b, _, _ := Digest(strings.NewReader("b"))
	if a == b {
		t.Errorf("different inputs must not collide")
	}
}

func TestFileDigest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, n, err := FileDigest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _, _ := Digest(strings.NewReader("png-bytes"))
	if got != want || n != 9 {
		t.Errorf("got %s/%d, want %s/9", got, n, want)
	}
}

func TestFileDigest_Missing(t *testing.T) {
	if _, _, err := FileDigest(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
