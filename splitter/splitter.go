// Package splitter implements a fractional-ownership accounting core: a
// fixed pool of 10,000 ownership units divided among holders, proportional
// distribution of deposited assets with deterministic rounding, and a
// peer-to-peer marketplace for trading units.
//
// The package owns the accounting and matching logic only. Value transfer,
// authorization proof and persistence are external collaborators injected
// through the Transferor, Context and state.Store ports.
package splitter

import (
	"github.com/bitfsorg/libsplitter-go/state"
)

// Options configures a Splitter.
type Options struct {
	// Self is the identity under which the pool holds asset balances.
	Self Identity

	// CommissionRecipient seeds the commission policy when it is lazily
	// initialized on first read.
	CommissionRecipient Identity

	// Events receives emitted operation events. Nil disables emission.
	Events EventSink
}

// Splitter is the accounting core bound to its collaborators.
type Splitter struct {
	store  state.Store
	assets Transferor
	events EventSink
	self   Identity
	// commissionSeed is the recipient written when the commission policy
	// initializes itself on first read.
	commissionSeed Identity
}

// New creates a Splitter over the given store and asset transferor.
func New(store state.Store, assets Transferor, opts Options) (*Splitter, error) {
	if store == nil {
		return nil, ErrNilParam
	}
	if assets == nil {
		return nil, ErrNilParam
	}
	if opts.Self == "" || opts.CommissionRecipient == "" {
		return nil, ErrNilParam
	}
	return &Splitter{
		store:          store,
		assets:         assets,
		events:         opts.Events,
		self:           opts.Self,
		commissionSeed: opts.CommissionRecipient,
	}, nil
}

// Self returns the identity under which the pool holds asset balances.
func (s *Splitter) Self() Identity { return s.self }

func (s *Splitter) emit(ev Event) {
	if s.events != nil {
		s.events.Emit(ev)
	}
}

// proportion returns floor(amount * units / 10000) without intermediate
// overflow. Splitting amount into quotient and remainder by 10000 keeps
// every product within int64 range for any non-negative amount.
func proportion(amount, units int64) int64 {
	q := amount / bpsDenominator
	r := amount % bpsDenominator
	return q*units + r*units/bpsDenominator
}

// checkedMul multiplies two positive int64 values, reporting overflow.
func checkedMul(a, b int64) (int64, bool) {
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
