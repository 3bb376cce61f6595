// Package cryptox implements the password digests stored in the account file.
//
// Two schemes are supported:
//   - "sha256": hex SHA-256 of the password, unsalted and single-round. This is
//     the format of existing account files and the default.
//   - "argon2id": "argon2id$<salt hex>$<key hex>", salted and memory-hard.
//
// Verification recognises both encodings regardless of the configured scheme,
// so switching schemes keeps old accounts usable.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/capitalchronicles/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SchemeSHA256   = "sha256"
	SchemeArgon2ID = "argon2id"

	argon2Prefix = SchemeArgon2ID + "$"
	saltSize     = 16
)

// Hasher produces and checks stored password digests.
type Hasher interface {
	Hash(password []byte) string
	Verify(password []byte, stored string) bool
}

// NewHasher returns the Hasher for the named scheme.
func NewHasher(scheme string) (Hasher, error) {
	switch strings.ToLower(scheme) {
	case "", SchemeSHA256:
		return SHA256Hasher{}, nil
	case SchemeArgon2ID:
		return Argon2Hasher{}, nil
	}
	return nil, fmt.Errorf("unknown password scheme %q", scheme)
}

// HashPassword returns the unsalted hex SHA-256 digest of password.
func HashPassword(password []byte) string {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:])
}

// DeriveKey runs argon2id with the parameters used for stored digests.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// VerifyPassword checks password against a stored digest of either scheme.
func VerifyPassword(password []byte, stored string) bool {
	if rest, ok := strings.CutPrefix(stored, argon2Prefix); ok {
		saltHex, keyHex, found := strings.Cut(rest, "$")
		if !found {
			return false
		}
		salt, err := hex.DecodeString(saltHex)
		if err != nil {
			return false
		}
		want, err := hex.DecodeString(keyHex)
		if err != nil {
			return false
		}
		return subtle.ConstantTimeCompare(DeriveKey(password, salt), want) == 1
	}
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(stored)) == 1
}

type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password []byte) string { return HashPassword(password) }

func (SHA256Hasher) Verify(password []byte, stored string) bool {
	return VerifyPassword(password, stored)
}

type Argon2Hasher struct{}

func (Argon2Hasher) Hash(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := DeriveKey(password, salt)
	return argon2Prefix + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

func (Argon2Hasher) Verify(password []byte, stored string) bool {
	return VerifyPassword(password, stored)
}
