package folio

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// CredentialVerifier checks an admin login attempt. It is deliberately an
// interface: the default implementation compares hashed secrets, and callers
// can delegate to an identity provider instead.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// HashedCredentials verifies a username and the SHA-256 of the password in
// constant time. Plaintext password literals are never held in memory.
type HashedCredentials struct {
	username   []byte
	passDigest []byte
}

// NewHashedCredentials builds a verifier from the username and the hex
// SHA-256 digest of the password.
func NewHashedCredentials(username, passwordSHA256Hex string) (*HashedCredentials, error) {
	digest, err := hex.DecodeString(passwordSHA256Hex)
	if err != nil {
		return nil, fmt.Errorf("folio: admin password digest is not valid hex: %w", err)
	}
	if len(digest) != sha256.Size {
		return nil, fmt.Errorf("folio: admin password digest must be %d bytes, got %d", sha256.Size, len(digest))
	}
	return &HashedCredentials{username: []byte(username), passDigest: digest}, nil
}

// Verify compares both fields in constant time. Hashing the attempt first
// keeps the comparison length-independent of the real password.
func (c *HashedCredentials) Verify(username, password string) bool {
	userDigest := sha256.Sum256([]byte(username))
	wantUser := sha256.Sum256(c.username)
	userOK := subtle.ConstantTimeCompare(userDigest[:], wantUser[:]) == 1

	passDigest := sha256.Sum256([]byte(password))
	passOK := subtle.ConstantTimeCompare(passDigest[:], c.passDigest) == 1

	return userOK && passOK
}

// HashPassword returns the hex SHA-256 digest of a password, for generating
// the configured credential value.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
