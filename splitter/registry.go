package splitter

import "fmt"

// ---------------------------------------------------------------------------
// Stored record access
// ---------------------------------------------------------------------------

func (s *Splitter) getConfig() (Config, bool, error) {
	var cfg Config
	ok, err := s.store.Config().Get(keyConfig, &cfg)
	if err != nil {
		return Config{}, false, fmt.Errorf("splitter: read config: %w", err)
	}
	return cfg, ok, nil
}

func (s *Splitter) putConfig(cfg Config) error {
	if err := s.store.Config().Put(keyConfig, cfg); err != nil {
		return fmt.Errorf("splitter: write config: %w", err)
	}
	return nil
}

func (s *Splitter) getShare(holder Identity) (int64, bool, error) {
	var units int64
	ok, err := s.store.Data().Get(shareKey(holder), &units)
	if err != nil {
		return 0, false, fmt.Errorf("splitter: read share: %w", err)
	}
	return units, ok, nil
}

func (s *Splitter) putShare(holder Identity, units int64) error {
	if err := s.store.Data().Put(shareKey(holder), units); err != nil {
		return fmt.Errorf("splitter: write share: %w", err)
	}
	return nil
}

func (s *Splitter) deleteShare(holder Identity) error {
	if err := s.store.Data().Delete(shareKey(holder)); err != nil {
		return fmt.Errorf("splitter: delete share: %w", err)
	}
	return nil
}

// getHolders returns the ordered holder sequence; absent reads as empty.
func (s *Splitter) getHolders() ([]Identity, error) {
	var holders []Identity
	if _, err := s.store.Data().Get(keyHolders, &holders); err != nil {
		return nil, fmt.Errorf("splitter: read holders: %w", err)
	}
	return holders, nil
}

func (s *Splitter) putHolders(holders []Identity) error {
	if err := s.store.Data().Put(keyHolders, holders); err != nil {
		return fmt.Errorf("splitter: write holders: %w", err)
	}
	return nil
}

// removeHolder drops holder from the ordered sequence, preserving the order
// of the remaining entries. Order must stay exactly in sync with record
// existence: dust tie-breaking depends on it.
func removeHolder(holders []Identity, holder Identity) []Identity {
	for i, h := range holders {
		if h == holder {
			return append(holders[:i], holders[i+1:]...)
		}
	}
	return holders
}

// ---------------------------------------------------------------------------
// Share validation and bulk writes
// ---------------------------------------------------------------------------

// validateShares checks a candidate share set: at least one record, no
// negative units, no duplicate holders, units summing to TotalUnits.
func validateShares(records []ShareRecord) error {
	if len(records) < 1 {
		return ErrLowShareCount
	}

	var total int64
	seen := make(map[Identity]bool, len(records))
	for _, rec := range records {
		if rec.Units < 0 {
			return ErrNegativeShareAmount
		}
		if seen[rec.Holder] {
			return ErrDuplicateShareholder
		}
		seen[rec.Holder] = true
		total += rec.Units
	}

	if total != TotalUnits {
		return ErrInvalidShareTotal
	}
	return nil
}

// setShares persists a validated share set and the holder order. Zero-unit
// records pass validation but are skipped here so the registry never holds
// a zero record.
func (s *Splitter) setShares(records []ShareRecord) error {
	holders := make([]Identity, 0, len(records))
	for _, rec := range records {
		if rec.Units == 0 {
			continue
		}
		if err := s.putShare(rec.Holder, rec.Units); err != nil {
			return err
		}
		holders = append(holders, rec.Holder)
	}
	return s.putHolders(holders)
}

// resetShares removes every share record and the holder order.
func (s *Splitter) resetShares() error {
	holders, err := s.getHolders()
	if err != nil {
		return err
	}
	for _, holder := range holders {
		if err := s.deleteShare(holder); err != nil {
			return err
		}
	}
	if err := s.store.Data().Delete(keyHolders); err != nil {
		return fmt.Errorf("splitter: delete holders: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Init initializes the contract with the admin, the share set and the
// mutability flag. It can only be called once.
func (s *Splitter) Init(admin Identity, records []ShareRecord, mutable bool) error {
	_, exists, err := s.getConfig()
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInitialized
	}

	if err := validateShares(records); err != nil {
		return err
	}

	if err := s.putConfig(Config{Admin: admin, Mutable: mutable}); err != nil {
		return err
	}
	if err := s.setShares(records); err != nil {
		return err
	}

	s.emit(InitializedEvent{Admin: admin, Holders: len(records), Mutable: mutable})
	return nil
}

// Replace swaps the entire share set. Admin only, and only while the
// contract is still mutable.
func (s *Splitter) Replace(ctx Context, records []ShareRecord) error {
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
	if !cfg.Mutable {
		return ErrContractLocked
	}

	if err := validateShares(records); err != nil {
		return err
	}

	if err := s.resetShares(); err != nil {
		return err
	}
	if err := s.setShares(records); err != nil {
		return err
	}

	s.emit(SharesReplacedEvent{Holders: len(records)})
	return nil
}

// Lock engages the one-way mutability lock. Admin only. Locking does not
// affect distributions or the marketplace.
func (s *Splitter) Lock(ctx Context) error {
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

	cfg.Mutable = false
	if err := s.putConfig(cfg); err != nil {
		return err
	}

	s.emit(LockedEvent{Admin: cfg.Admin})
	return nil
}

// TransferShares moves units from one holder to another. The sender must
// authorize. A recipient new to the registry is appended to the holder
// order; a sender drained to zero leaves it.
func (s *Splitter) TransferShares(ctx Context, from, to Identity, amount int64) error {
	_, exists, err := s.getConfig()
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}
	if err := ctx.Require(from); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if from == to {
		return ErrCannotTransferToSelf
	}
	if amount <= 0 {
		return ErrInvalidShareAmount
	}

	fromUnits, ok, err := s.getShare(from)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSharesToTransfer
	}
	if fromUnits < amount {
		return ErrInsufficientSharesToTransfer
	}

	if err := s.moveShares(from, to, fromUnits, amount); err != nil {
		return err
	}

	s.emit(SharesTransferredEvent{From: from, To: to, Units: amount})
	return nil
}

// moveShares applies the registry side of a unit movement: decrement from
// (removing the record and its order entry at zero), increment to (creating
// a record and appending to the order for a first-time holder). fromUnits is
// the sender's already-read balance, which must cover amount.
func (s *Splitter) moveShares(from, to Identity, fromUnits, amount int64) error {
	remaining := fromUnits - amount
	if remaining == 0 {
		if err := s.deleteShare(from); err != nil {
			return err
		}
		holders, err := s.getHolders()
		if err != nil {
			return err
		}
		if err := s.putHolders(removeHolder(holders, from)); err != nil {
			return err
		}
	} else {
		if err := s.putShare(from, remaining); err != nil {
			return err
		}
	}

	toUnits, ok, err := s.getShare(to)
	if err != nil {
		return err
	}
	if !ok {
		holders, err := s.getHolders()
		if err != nil {
			return err
		}
		if err := s.putHolders(append(holders, to)); err != nil {
			return err
		}
	}
	return s.putShare(to, toUnits+amount)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetShare returns a holder's unit amount, reporting whether a record exists.
func (s *Splitter) GetShare(holder Identity) (int64, bool, error) {
	return s.getShare(holder)
}

// ListShares returns every share record in holder order.
func (s *Splitter) ListShares() ([]ShareRecord, error) {
	holders, err := s.getHolders()
	if err != nil {
		return nil, err
	}
	records := make([]ShareRecord, 0, len(holders))
	for _, holder := range holders {
		units, ok, err := s.getShare(holder)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		records = append(records, ShareRecord{Holder: holder, Units: units})
	}
	return records, nil
}

// GetConfig returns the contract configuration.
func (s *Splitter) GetConfig() (Config, error) {
	cfg, exists, err := s.getConfig()
	if err != nil {
		return Config{}, err
	}
	if !exists {
		return Config{}, ErrNotInitialized
	}
	return cfg, nil
}
