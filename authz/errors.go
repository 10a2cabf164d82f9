package authz

import "errors"

var (
	// ErrWrongIdentity indicates the context proves a different identity.
	ErrWrongIdentity = errors.New("authz: context proves a different identity")

	// ErrBadSignature indicates the signature does not verify.
	ErrBadSignature = errors.New("authz: signature verification failed")

	// ErrShortSalt indicates the key derivation salt is too short.
	ErrShortSalt = errors.New("authz: salt must be at least 16 bytes")

	// ErrNilParam indicates a required parameter is missing.
	ErrNilParam = errors.New("authz: nil parameter")
)
