package splitter

import "fmt"

// commissionConfig returns the commission policy, initializing and
// persisting defaults on first read.
func (s *Splitter) commissionConfig() (CommissionConfig, error) {
	var policy CommissionConfig
	ok, err := s.store.Config().Get(keyCommission, &policy)
	if err != nil {
		return CommissionConfig{}, fmt.Errorf("splitter: read commission config: %w", err)
	}
	if ok {
		return policy, nil
	}

	policy = CommissionConfig{
		Recipient:           s.commissionSeed,
		BuyRateBps:          DefaultBuyRateBps,
		DistributionRateBps: DefaultDistributionRateBps,
	}
	if err := s.putCommissionConfig(policy); err != nil {
		return CommissionConfig{}, err
	}
	return policy, nil
}

func (s *Splitter) putCommissionConfig(policy CommissionConfig) error {
	if err := s.store.Config().Put(keyCommission, policy); err != nil {
		return fmt.Errorf("splitter: write commission config: %w", err)
	}
	return nil
}

// computeCommission returns floor(amount * rateBps / 10000).
func computeCommission(amount, rateBps int64) int64 {
	return proportion(amount, rateBps)
}

// GetCommissionConfig returns the current commission policy, seeding
// defaults if it has never been set.
func (s *Splitter) GetCommissionConfig() (CommissionConfig, error) {
	return s.commissionConfig()
}

// SetCommissionRecipient changes who receives skimmed commissions. Only the
// current recipient can authorize the change.
func (s *Splitter) SetCommissionRecipient(ctx Context, recipient Identity) error {
	policy, err := s.commissionConfig()
	if err != nil {
		return err
	}
	if err := ctx.Require(policy.Recipient); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	policy.Recipient = recipient
	return s.putCommissionConfig(policy)
}

// SetBuyCommissionRate changes the rate skimmed from share purchases.
// Recipient only; the rate is bounded to [0, 5000] basis points.
func (s *Splitter) SetBuyCommissionRate(ctx Context, rateBps int64) error {
	policy, err := s.commissionConfig()
	if err != nil {
		return err
	}
	if err := ctx.Require(policy.Recipient); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if rateBps < 0 || rateBps > MaxCommissionRateBps {
		return ErrInvalidCommissionRate
	}

	policy.BuyRateBps = rateBps
	return s.putCommissionConfig(policy)
}

// SetDistributionCommissionRate changes the rate skimmed from
// distributions. Recipient only; the rate is bounded to [0, 5000] basis
// points.
func (s *Splitter) SetDistributionCommissionRate(ctx Context, rateBps int64) error {
	policy, err := s.commissionConfig()
	if err != nil {
		return err
	}
	if err := ctx.Require(policy.Recipient); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if rateBps < 0 || rateBps > MaxCommissionRateBps {
		return ErrInvalidCommissionRate
	}

	policy.DistributionRateBps = rateBps
	return s.putCommissionConfig(policy)
}
