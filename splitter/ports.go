package splitter

// Context is an authorization capability proving that an identity consented
// to the operation it is passed to. Implementations decide what counts as
// proof; see the authz package for a signature-backed one.
type Context interface {
	// Require returns nil if the context proves consent by id.
	Require(id Identity) error
}

// Grant is a static capability listing identities that have consented.
// It is the simplest Context: pre-verified consent carried by value.
type Grant []Identity

// Compile-time interface check.
var _ Context = Grant(nil)

// Require reports whether id is among the granted identities.
func (g Grant) Require(id Identity) error {
	for _, v := range g {
		if v == id {
			return nil
		}
	}
	return ErrUnauthorized
}

// Transferor moves asset balances between identities. It is the boundary to
// the external value-transfer mechanism: a failed transfer aborts the whole
// enclosing operation, and no retries or partial transfers are assumed.
type Transferor interface {
	// Balance returns the balance owner holds in asset.
	Balance(asset Asset, owner Identity) (int64, error)

	// Transfer moves amount of asset from one identity to another.
	Transfer(asset Asset, from, to Identity, amount int64) error
}

// EventSink receives the events emitted by splitter operations.
type EventSink interface {
	Emit(event Event)
}
