// Package authz provides authorization capabilities for splitter operations.
//
// A capability proves that an identity consented to an operation. The
// signature-backed Signed context binds consent to an ECDSA signature over
// an operation payload digest; identities are mainnet P2PKH address strings
// derived from the signer's public key.
package authz

import (
	"crypto/sha256"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/go-sdk/script"

	"github.com/bitfsorg/libsplitter-go/splitter"
)

// Signed proves consent via an EC signature over an operation payload.
type Signed struct {
	digest   [sha256.Size]byte
	pubKey   *ec.PublicKey
	sig      *ec.Signature
	identity splitter.Identity
}

// Compile-time interface check.
var _ splitter.Context = (*Signed)(nil)

// Sign creates a Signed context over payload. The payload is the caller's
// canonical encoding of the operation and its arguments; the context proves
// only the identity derived from priv's public key.
func Sign(priv *ec.PrivateKey, payload []byte) (*Signed, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: private key", ErrNilParam)
	}

	digest := sha256.Sum256(payload)
	sig, err := priv.Sign(digest[:])
	if err != nil {
		return nil, fmt.Errorf("authz: sign payload: %w", err)
	}

	identity, err := IdentityFromPublicKey(priv.PubKey())
	if err != nil {
		return nil, err
	}

	return &Signed{
		digest:   digest,
		pubKey:   priv.PubKey(),
		sig:      sig,
		identity: identity,
	}, nil
}

// Identity returns the identity this context can prove.
func (s *Signed) Identity() splitter.Identity { return s.identity }

// Require returns nil if id is the signer's identity and the signature
// checks out against the payload digest.
func (s *Signed) Require(id splitter.Identity) error {
	if id != s.identity {
		return fmt.Errorf("%w: context proves %q, not %q", ErrWrongIdentity, s.identity, id)
	}
	if !s.sig.Verify(s.digest[:], s.pubKey) {
		return ErrBadSignature
	}
	return nil
}

// IdentityFromPublicKey derives the splitter identity for a public key: its
// mainnet P2PKH address string.
func IdentityFromPublicKey(pub *ec.PublicKey) (splitter.Identity, error) {
	if pub == nil {
		return "", fmt.Errorf("%w: public key", ErrNilParam)
	}
	addr, err := script.NewAddressFromPublicKey(pub, true)
	if err != nil {
		return "", fmt.Errorf("authz: address from public key: %w", err)
	}
	return splitter.Identity(addr.AddressString), nil
}
