package splitter

import "fmt"

// The allocation ledger tracks a claimable balance per (holder, asset) and a
// running per-asset total. The total is maintained strictly by delta: every
// write adjusts it by new minus old, never by rescanning holders. That keeps
// "how much of the balance is unclaimed" an O(1) read during distribution.

func (s *Splitter) getAllocation(holder Identity, asset Asset) (int64, bool, error) {
	var amount int64
	ok, err := s.store.Data().Get(allocationKey(holder, asset), &amount)
	if err != nil {
		return 0, false, fmt.Errorf("splitter: read allocation: %w", err)
	}
	return amount, ok, nil
}

// getTotalAllocation returns the per-asset allocation total; absent reads as 0.
func (s *Splitter) getTotalAllocation(asset Asset) (int64, error) {
	var total int64
	if _, err := s.store.Data().Get(totalAllocationKey(asset), &total); err != nil {
		return 0, fmt.Errorf("splitter: read total allocation: %w", err)
	}
	return total, nil
}

func (s *Splitter) putTotalAllocation(asset Asset, total int64) error {
	if err := s.store.Data().Put(totalAllocationKey(asset), total); err != nil {
		return fmt.Errorf("splitter: write total allocation: %w", err)
	}
	return nil
}

func (s *Splitter) deleteTotalAllocation(asset Asset) error {
	if err := s.store.Data().Delete(totalAllocationKey(asset)); err != nil {
		return fmt.Errorf("splitter: delete total allocation: %w", err)
	}
	return nil
}

// saveAllocation writes a holder's new allocation and adjusts the per-asset
// total by the delta. A total that would drop to zero or below is removed.
func (s *Splitter) saveAllocation(holder Identity, asset Asset, newAmount int64) error {
	oldAmount, _, err := s.getAllocation(holder, asset)
	if err != nil {
		return err
	}
	delta := newAmount - oldAmount

	if delta != 0 {
		total, err := s.getTotalAllocation(asset)
		if err != nil {
			return err
		}
		newTotal := total + delta
		if newTotal <= 0 {
			if err := s.deleteTotalAllocation(asset); err != nil {
				return err
			}
		} else {
			if err := s.putTotalAllocation(asset, newTotal); err != nil {
				return err
			}
		}
	}

	if err := s.store.Data().Put(allocationKey(holder, asset), newAmount); err != nil {
		return fmt.Errorf("splitter: write allocation: %w", err)
	}
	return nil
}

// removeAllocation debits a holder's allocation to zero: the per-asset total
// drops by the holder's current allocation, then the record is removed.
func (s *Splitter) removeAllocation(holder Identity, asset Asset) error {
	amount, ok, err := s.getAllocation(holder, asset)
	if err != nil {
		return err
	}
	if ok {
		total, err := s.getTotalAllocation(asset)
		if err != nil {
			return err
		}
		newTotal := total - amount
		if newTotal <= 0 {
			if err := s.deleteTotalAllocation(asset); err != nil {
				return err
			}
		} else {
			if err := s.putTotalAllocation(asset, newTotal); err != nil {
				return err
			}
		}
	}

	if err := s.store.Data().Delete(allocationKey(holder, asset)); err != nil {
		return fmt.Errorf("splitter: delete allocation: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Withdraw pays out part or all of a holder's claimable allocation. Either
// the holder or the admin must authorize.
func (s *Splitter) Withdraw(ctx Context, asset Asset, holder Identity, amount int64) error {
	cfg, exists, err := s.getConfig()
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}
	if ctx.Require(holder) != nil {
		if err := ctx.Require(cfg.Admin); err != nil {
			return fmt.Errorf("%w: %w", ErrUnauthorized, err)
		}
	}
	if amount <= 0 {
		return ErrZeroWithdrawalAmount
	}

	allocation, _, err := s.getAllocation(holder, asset)
	if err != nil {
		return err
	}
	if amount > allocation {
		return ErrWithdrawalAmountAboveAllocation
	}

	if err := s.assets.Transfer(asset, s.self, holder, amount); err != nil {
		return err
	}

	remaining := allocation - amount
	if remaining == 0 {
		if err := s.removeAllocation(holder, asset); err != nil {
			return err
		}
	} else {
		if err := s.saveAllocation(holder, asset, remaining); err != nil {
			return err
		}
	}

	s.emit(WithdrawalEvent{Asset: asset, Holder: holder, Amount: amount})
	return nil
}

// SweepUnused transfers part of the unused balance to a recipient. Admin
// only. Unused is the held balance minus the total already allocated, so a
// sweep can never touch claimable funds.
func (s *Splitter) SweepUnused(ctx Context, asset Asset, recipient Identity, amount int64) error {
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
	if amount <= 0 {
		return ErrZeroTransferAmount
	}

	balance, err := s.assets.Balance(asset, s.self)
	if err != nil {
		return err
	}
	if amount > balance {
		return ErrTransferAmountAboveBalance
	}

	totalAllocated, err := s.getTotalAllocation(asset)
	if err != nil {
		return err
	}
	if amount > balance-totalAllocated {
		return ErrTransferAmountAboveUnusedBalance
	}

	if err := s.assets.Transfer(asset, s.self, recipient, amount); err != nil {
		return err
	}

	s.emit(SweepEvent{Asset: asset, Recipient: recipient, Amount: amount})
	return nil
}

// GetAllocation returns a holder's claimable allocation for an asset, or 0
// if none exists.
func (s *Splitter) GetAllocation(holder Identity, asset Asset) (int64, error) {
	amount, _, err := s.getAllocation(holder, asset)
	return amount, err
}
