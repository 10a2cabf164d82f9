package splitter_test

import (
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitfsorg/libsplitter-go/asset"
	"github.com/bitfsorg/libsplitter-go/authz"
	"github.com/bitfsorg/libsplitter-go/config"
	"github.com/bitfsorg/libsplitter-go/splitter"
	"github.com/bitfsorg/libsplitter-go/state"
)

// party bundles a signing key with its derived identity.
type party struct {
	priv *ec.PrivateKey
	id   splitter.Identity
}

func newParty(t *testing.T) party {
	t.Helper()
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	id, err := authz.IdentityFromPublicKey(priv.PubKey())
	require.NoError(t, err)
	return party{priv: priv, id: id}
}

func (p party) sign(t *testing.T, payload string) *authz.Signed {
	t.Helper()
	ctx, err := authz.Sign(p.priv, []byte(payload))
	require.NoError(t, err)
	return ctx
}

// Exercises the full surface against real signature contexts and the
// in-memory ledger: init, distribute, withdraw, list, buy.
func TestEndToEnd(t *testing.T) {
	const token = splitter.Asset("token")

	admin := newParty(t)
	alice := newParty(t)
	bob := newParty(t)
	carol := newParty(t)
	fee := newParty(t)
	pool := splitter.Identity("pool")

	ledger := asset.NewLedger()
	s, err := splitter.New(state.NewMemStore(), ledger, splitter.Options{
		Self:                pool,
		CommissionRecipient: fee.id,
	})
	require.NoError(t, err)

	require.NoError(t, s.Init(admin.id, []splitter.ShareRecord{
		{Holder: alice.id, Units: 8050},
		{Holder: bob.id, Units: 1950},
	}, true))

	// Deposit and distribute. 0.5% commission, then floor splits with the
	// dust going to alice as the largest holder.
	require.NoError(t, ledger.Mint(token, pool, 1_000_000_000))
	require.NoError(t, s.Distribute(admin.sign(t, "distribute"), token))

	aliceAlloc, err := s.GetAllocation(alice.id, token)
	require.NoError(t, err)
	assert.Equal(t, int64(800_975_000), aliceAlloc)
	bobAlloc, err := s.GetAllocation(bob.id, token)
	require.NoError(t, err)
	assert.Equal(t, int64(194_025_000), bobAlloc)
	feeBal, err := ledger.Balance(token, fee.id)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), feeBal)

	// A context signed by the wrong key cannot act as admin.
	err = s.Distribute(alice.sign(t, "distribute"), token)
	assert.ErrorIs(t, err, splitter.ErrUnauthorized)

	// Bob withdraws his allocation to his own balance.
	require.NoError(t, s.Withdraw(bob.sign(t, "withdraw"), token, bob.id, 194_025_000))
	bobBal, err := ledger.Balance(token, bob.id)
	require.NoError(t, err)
	assert.Equal(t, int64(194_025_000), bobBal)

	// Alice lists half her stake; carol buys it with freshly minted funds.
	require.NoError(t, s.ListSharesForSale(alice.sign(t, "list"), alice.id, 4000, 100, token))
	require.NoError(t, ledger.Mint(token, carol.id, 400_000))
	require.NoError(t, s.BuyShares(carol.sign(t, "buy"), carol.id, alice.id, 4000))

	carolUnits, ok, err := s.GetShare(carol.id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(4000), carolUnits)

	// 400_000 total price, 150 bps commission = 6000.
	aliceBal, err := ledger.Balance(token, alice.id)
	require.NoError(t, err)
	assert.Equal(t, int64(394_000), aliceBal)
	feeBal, err = ledger.Balance(token, fee.id)
	require.NoError(t, err)
	assert.Equal(t, int64(5_006_000), feeBal)

	// The registry total held.
	records, err := s.ListShares()
	require.NoError(t, err)
	var total int64
	for _, rec := range records {
		total += rec.Units
	}
	assert.Equal(t, splitter.TotalUnits, total)
}

// The bolt-backed store carries contract state across process restarts.
func TestEndToEnd_BoltPersistence(t *testing.T) {
	const token = splitter.Asset("token")

	cfg := config.Config{
		DataDir:     t.TempDir(),
		ConfigLease: config.DefaultConfigLease,
		DataLease:   config.DefaultDataLease,
	}

	admin := newParty(t)
	alice := newParty(t)
	bob := newParty(t)
	fee := newParty(t)
	pool := splitter.Identity("pool")

	ledger := asset.NewLedger()

	store, err := state.OpenBoltStore(cfg)
	require.NoError(t, err)
	s, err := splitter.New(store, ledger, splitter.Options{
		Self:                pool,
		CommissionRecipient: fee.id,
	})
	require.NoError(t, err)

	require.NoError(t, s.Init(admin.id, []splitter.ShareRecord{
		{Holder: alice.id, Units: 6000},
		{Holder: bob.id, Units: 4000},
	}, false))
	require.NoError(t, ledger.Mint(token, pool, 10_000))
	require.NoError(t, s.Distribute(admin.sign(t, "distribute"), token))
	require.NoError(t, store.Close())

	// Reopen and keep going with the same on-disk state.
	store, err = state.OpenBoltStore(cfg)
	require.NoError(t, err)
	defer store.Close()
	s, err = splitter.New(store, ledger, splitter.Options{
		Self:                pool,
		CommissionRecipient: fee.id,
	})
	require.NoError(t, err)

	contract, err := s.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, admin.id, contract.Admin)
	assert.False(t, contract.Mutable)

	// 10_000 deposit, 50 bps commission = 50, remainder 9950 split 60/40
	// with dust to alice.
	aliceAlloc, err := s.GetAllocation(alice.id, token)
	require.NoError(t, err)
	assert.Equal(t, int64(5970), aliceAlloc)
	bobAlloc, err := s.GetAllocation(bob.id, token)
	require.NoError(t, err)
	assert.Equal(t, int64(3980), bobAlloc)

	// Allocations stay claimable after the restart.
	require.NoError(t, s.Withdraw(alice.sign(t, "withdraw"), token, alice.id, 5970))
	bal, err := ledger.Balance(token, alice.id)
	require.NoError(t, err)
	assert.Equal(t, int64(5970), bal)
}
