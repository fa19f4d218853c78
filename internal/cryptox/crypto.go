// Package cryptox computes content digests of files staged for upload.
package cryptox

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the length in bytes of a content digest.
const DigestSize = 32

// Digest returns the hex BLAKE2b-256 digest of everything read from r and the
// number of bytes read.
func Digest(r io.Reader) (string, int64, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", 0, err
	}
	n, err := io.Copy(h, r)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}

// FileDigest is Digest over the contents of the file at path.
func FileDigest(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Digest(f)
}
