// Package asset provides an in-memory asset ledger implementing the
// splitter transfer port, for embedding and tests. Production deployments
// substitute their own value-transfer adapter.
package asset

import (
	"fmt"
	"sync"

	"github.com/bitfsorg/libsplitter-go/splitter"
)

// Ledger is an in-memory balance book per (asset, identity).
type Ledger struct {
	mu       sync.RWMutex
	balances map[splitter.Asset]map[splitter.Identity]int64
}

// Compile-time interface check.
var _ splitter.Transferor = (*Ledger)(nil)

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: make(map[splitter.Asset]map[splitter.Identity]int64)}
}

// Mint credits amount of asset to an identity out of thin air. It models an
// external deposit into the pool.
func (l *Ledger) Mint(a splitter.Asset, to splitter.Identity, amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(a, to, amount)
	return nil
}

// Balance returns the balance owner holds in asset.
func (l *Ledger) Balance(a splitter.Asset, owner splitter.Identity) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[a][owner], nil
}

// Transfer moves amount of asset between identities. The sender must hold
// at least amount.
func (l *Ledger) Transfer(a splitter.Asset, from, to splitter.Identity, amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[a][from] < amount {
		return fmt.Errorf("%w: %q holds %d of %q, need %d",
			ErrInsufficientFunds, from, l.balances[a][from], a, amount)
	}
	l.balances[a][from] -= amount
	l.credit(a, to, amount)
	return nil
}

// credit assumes the lock is held.
func (l *Ledger) credit(a splitter.Asset, to splitter.Identity, amount int64) {
	if l.balances[a] == nil {
		l.balances[a] = make(map[splitter.Identity]int64)
	}
	l.balances[a][to] += amount
}
