package splitter

import "fmt"

// Distribute converts the asset balance not yet reflected in allocations
// into per-holder allocation credits. Admin only.
//
// The distributable amount is the held balance minus the total already
// allocated; because both move together after each run, calling Distribute
// again with no new deposit is a no-op. The distribution commission is
// skimmed first, then the remainder is split by floor proportion over the
// holder order, and the rounding dust goes to the holder with the strictly
// largest stake (first in holder order wins ties), so the remainder is
// always allocated in full.
func (s *Splitter) Distribute(ctx Context, asset Asset) error {
	cfg, exists, err := s.getConfig()
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}
	if err := ctx.Require(cfg.Admin); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	balance, err := s.assets.Balance(asset, s.self)
	if err != nil {
		return err
	}
	totalAllocated, err := s.getTotalAllocation(asset)
	if err != nil {
		return err
	}

	distributable := balance - totalAllocated
	if distributable <= 0 {
		return nil
	}

	policy, err := s.commissionConfig()
	if err != nil {
		return err
	}
	commission := computeCommission(distributable, policy.DistributionRateBps)
	if commission > 0 {
		if err := s.assets.Transfer(asset, s.self, policy.Recipient, commission); err != nil {
			return err
		}
		s.emit(CommissionEvent{Asset: asset, Recipient: policy.Recipient, Amount: commission})
	}

	remainder := distributable - commission
	if remainder <= 0 {
		return nil
	}

	holders, err := s.getHolders()
	if err != nil {
		return err
	}

	var (
		totalDistributed int64
		largestHolder    Identity
		largestUnits     int64
	)
	for _, holder := range holders {
		units, ok, err := s.getShare(holder)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		// Strictly larger stakes only: the first holder with the maximal
		// stake keeps the dust claim.
		if units > largestUnits {
			largestUnits = units
			largestHolder = holder
		}

		amount := proportion(remainder, units)
		if amount > 0 {
			allocation, _, err := s.getAllocation(holder, asset)
			if err != nil {
				return err
			}
			if err := s.saveAllocation(holder, asset, allocation+amount); err != nil {
				return err
			}
			totalDistributed += amount
			s.emit(DistributionEvent{Asset: asset, Holder: holder, Amount: amount})
		}
	}

	dust := remainder - totalDistributed
	if dust > 0 && largestHolder != "" {
		allocation, _, err := s.getAllocation(largestHolder, asset)
		if err != nil {
			return err
		}
		if err := s.saveAllocation(largestHolder, asset, allocation+dust); err != nil {
			return err
		}
		totalDistributed += dust
		s.emit(DustEvent{Asset: asset, Holder: largestHolder, Amount: dust})
	}

	s.emit(DistributionSummaryEvent{Asset: asset, Total: totalDistributed})
	return nil
}
