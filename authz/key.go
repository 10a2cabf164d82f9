package authz

import (
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for passphrase key derivation.
const (
	argon2Time        = 3
	argon2Memory      = 64 * 1024 // 64 MB
	argon2Parallelism = 4
	argon2KeyLen      = 32

	minSaltLen = 16
)

// KeyFromPassphrase derives a deterministic EC private key from a
// passphrase and salt using Argon2id. The salt must be at least 16 bytes
// and should be unique per identity.
func KeyFromPassphrase(passphrase string, salt []byte) (*ec.PrivateKey, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: passphrase", ErrNilParam)
	}
	if len(salt) < minSaltLen {
		return nil, ErrShortSalt
	}

	keyBytes := argon2.IDKey([]byte(passphrase), salt, argon2Time, argon2Memory, argon2Parallelism, argon2KeyLen)
	priv, _ := ec.PrivateKeyFromBytes(keyBytes)
	return priv, nil
}
