package authz

import (
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndRequire(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	ctx, err := Sign(priv, []byte("distribute:token"))
	require.NoError(t, err)

	want, err := IdentityFromPublicKey(priv.PubKey())
	require.NoError(t, err)
	assert.Equal(t, want, ctx.Identity())

	assert.NoError(t, ctx.Require(ctx.Identity()))
}

func TestRequire_WrongIdentity(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	other, err := ec.NewPrivateKey()
	require.NoError(t, err)

	ctx, err := Sign(priv, []byte("payload"))
	require.NoError(t, err)

	otherID, err := IdentityFromPublicKey(other.PubKey())
	require.NoError(t, err)

	assert.ErrorIs(t, ctx.Require(otherID), ErrWrongIdentity)
	assert.ErrorIs(t, ctx.Require("not-an-address"), ErrWrongIdentity)
}

func TestSign_NilKey(t *testing.T) {
	_, err := Sign(nil, []byte("payload"))
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestIdentityFromPublicKey(t *testing.T) {
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)

	id, err := IdentityFromPublicKey(priv.PubKey())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Deterministic for the same key.
	again, err := IdentityFromPublicKey(priv.PubKey())
	require.NoError(t, err)
	assert.Equal(t, id, again)

	_, err = IdentityFromPublicKey(nil)
	assert.ErrorIs(t, err, ErrNilParam)
}

func TestKeyFromPassphrase(t *testing.T) {
	salt := []byte("0123456789abcdef")

	priv, err := KeyFromPassphrase("correct horse battery staple", salt)
	require.NoError(t, err)
	id, err := IdentityFromPublicKey(priv.PubKey())
	require.NoError(t, err)

	// Same passphrase and salt always derive the same key, hence the same
	// identity.
	again, err := KeyFromPassphrase("correct horse battery staple", salt)
	require.NoError(t, err)
	againID, err := IdentityFromPublicKey(again.PubKey())
	require.NoError(t, err)
	assert.Equal(t, id, againID)

	// A different passphrase or salt derives a different key.
	other, err := KeyFromPassphrase("different passphrase", salt)
	require.NoError(t, err)
	otherID, err := IdentityFromPublicKey(other.PubKey())
	require.NoError(t, err)
	assert.NotEqual(t, id, otherID)

	other, err = KeyFromPassphrase("correct horse battery staple", []byte("fedcba9876543210"))
	require.NoError(t, err)
	otherID, err = IdentityFromPublicKey(other.PubKey())
	require.NoError(t, err)
	assert.NotEqual(t, id, otherID)
}

func TestKeyFromPassphrase_Validation(t *testing.T) {
	_, err := KeyFromPassphrase("", []byte("0123456789abcdef"))
	assert.ErrorIs(t, err, ErrNilParam)

	_, err = KeyFromPassphrase("passphrase", []byte("short"))
	assert.ErrorIs(t, err, ErrShortSalt)
}
