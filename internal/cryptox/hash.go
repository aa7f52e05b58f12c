// Package cryptox provides password hashing for stored accounts.
//
// The original app kept passwords in plaintext; accounts here store an
// argon2id hash plus a per-account random salt instead. The Hasher interface
// keeps the algorithm swappable.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Hasher derives and verifies password hashes.
type Hasher interface {
	// Hash derives a hash for password with a fresh random salt.
	Hash(password []byte) (hash, salt []byte, err error)

	// Verify reports whether password+salt derive the given hash.
	// Implementations must compare in constant time.
	Verify(password, salt, hash []byte) bool
}

const saltLen = 16

// Argon2Hasher is the default Hasher: argon2id, 1 pass, 64 MiB, 4 lanes,
// 32-byte keys.
type Argon2Hasher struct{}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{}
}

func (h *Argon2Hasher) Hash(password []byte) ([]byte, []byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return derive(password, salt), salt, nil
}

func (h *Argon2Hasher) Verify(password, salt, hash []byte) bool {
	candidate := derive(password, salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}

func derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// WipeByteArray zeroes a sensitive buffer after use.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
