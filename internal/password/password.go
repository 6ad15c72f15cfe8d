// Package password derives and verifies credential digests. Digests are
// stored as "<hex digest>.<hex salt>" with a fresh random salt per hash.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. N is the CPU/memory cost; keep these in sync with
// stored digests or old passwords stop verifying.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	digestLen    = 64
	saltLen      = 16
	fieldCount   = 2
	fieldDivider = "."
)

// Hash derives a digest for the given plaintext with a newly generated salt.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	digest, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, digestLen)
	if err != nil {
		return "", fmt.Errorf("derive digest: %w", err)
	}
	return hex.EncodeToString(digest) + fieldDivider + hex.EncodeToString(salt), nil
}

// Verify recomputes the digest with the stored salt and compares in constant
// time. A malformed stored value is treated as a mismatch, never a panic.
func Verify(plaintext, stored string) bool {
	parts := strings.Split(stored, fieldDivider)
	if len(parts) != fieldCount {
		return false
	}
	want, err := hex.DecodeString(parts[0])
	if err != nil || len(want) == 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	got, err := scrypt.Key([]byte(plaintext), salt, scryptN, scryptR, scryptP, len(want))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}
