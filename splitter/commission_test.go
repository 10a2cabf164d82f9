package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionConfig_LazyDefaults(t *testing.T) {
	s, _, _ := newTestSplitter(t)

	policy, err := s.GetCommissionConfig()
	require.NoError(t, err)
	assert.Equal(t, CommissionConfig{
		Recipient:           fee,
		BuyRateBps:          DefaultBuyRateBps,
		DistributionRateBps: DefaultDistributionRateBps,
	}, policy)

	// The defaults persist: a later read sees the same record.
	again, err := s.GetCommissionConfig()
	require.NoError(t, err)
	assert.Equal(t, policy, again)
}

func TestSetCommissionRecipient(t *testing.T) {
	s, _, _ := newTestSplitter(t)

	require.NoError(t, s.SetCommissionRecipient(Grant{fee}, carol))

	policy, err := s.GetCommissionConfig()
	require.NoError(t, err)
	assert.Equal(t, carol, policy.Recipient)

	// The old recipient no longer holds governance.
	assert.ErrorIs(t, s.SetCommissionRecipient(Grant{fee}, bob), ErrUnauthorized)
	require.NoError(t, s.SetCommissionRecipient(Grant{carol}, fee))
}

func TestSetBuyCommissionRate(t *testing.T) {
	s, _, _ := newTestSplitter(t)

	require.NoError(t, s.SetBuyCommissionRate(Grant{fee}, 300))
	policy, err := s.GetCommissionConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(300), policy.BuyRateBps)
	assert.Equal(t, DefaultDistributionRateBps, policy.DistributionRateBps)

	assert.ErrorIs(t, s.SetBuyCommissionRate(Grant{alice}, 100), ErrUnauthorized)
	assert.ErrorIs(t, s.SetBuyCommissionRate(Grant{fee}, -1), ErrInvalidCommissionRate)
	assert.ErrorIs(t, s.SetBuyCommissionRate(Grant{fee}, MaxCommissionRateBps+1), ErrInvalidCommissionRate)

	// The bounds are inclusive.
	require.NoError(t, s.SetBuyCommissionRate(Grant{fee}, 0))
	require.NoError(t, s.SetBuyCommissionRate(Grant{fee}, MaxCommissionRateBps))
}

func TestSetDistributionCommissionRate(t *testing.T) {
	s, _, _ := newTestSplitter(t)

	require.NoError(t, s.SetDistributionCommissionRate(Grant{fee}, 25))
	policy, err := s.GetCommissionConfig()
	require.NoError(t, err)
	assert.Equal(t, int64(25), policy.DistributionRateBps)
	assert.Equal(t, DefaultBuyRateBps, policy.BuyRateBps)

	assert.ErrorIs(t, s.SetDistributionCommissionRate(Grant{alice}, 25), ErrUnauthorized)
	assert.ErrorIs(t, s.SetDistributionCommissionRate(Grant{fee}, MaxCommissionRateBps+1), ErrInvalidCommissionRate)
}

func TestComputeCommission(t *testing.T) {
	tests := []struct {
		amount  int64
		rateBps int64
		want    int64
	}{
		{1_000_000_000, 50, 5_000_000},
		{500_000_000_000, 150, 7_500_000_000},
		{10_000, 1, 1},
		{9_999, 1, 0}, // floors
		{100, 0, 0},
		{0, 150, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, computeCommission(tt.amount, tt.rateBps),
			"computeCommission(%d, %d)", tt.amount, tt.rateBps)
	}
}
