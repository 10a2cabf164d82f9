package splitter

// Event is implemented by all events emitted through an EventSink.
type Event interface{ event() }

// InitializedEvent reports a successful Init.
type InitializedEvent struct {
	Admin   Identity
	Holders int
	Mutable bool
}

// SharesReplacedEvent reports a wholesale registry replacement.
type SharesReplacedEvent struct {
	Holders int
}

// LockedEvent reports the one-way mutability lock being engaged.
type LockedEvent struct {
	Admin Identity
}

// SharesTransferredEvent reports a peer-to-peer share transfer.
type SharesTransferredEvent struct {
	From  Identity
	To    Identity
	Units int64
}

// DistributionEvent reports units of an asset credited to one holder.
type DistributionEvent struct {
	Asset  Asset
	Holder Identity
	Amount int64
}

// DustEvent reports the rounding remainder credited to the largest holder.
type DustEvent struct {
	Asset  Asset
	Holder Identity
	Amount int64
}

// CommissionEvent reports a commission skim paid to the recipient.
type CommissionEvent struct {
	Asset     Asset
	Recipient Identity
	Amount    int64
}

// DistributionSummaryEvent reports the total distributed in one run.
type DistributionSummaryEvent struct {
	Asset Asset
	Total int64
}

// WithdrawalEvent reports a holder withdrawing from their allocation.
type WithdrawalEvent struct {
	Asset  Asset
	Holder Identity
	Amount int64
}

// SweepEvent reports unused balance transferred out by the admin.
type SweepEvent struct {
	Asset     Asset
	Recipient Identity
	Amount    int64
}

// ListedEvent reports a new or overwritten sale listing.
type ListedEvent struct {
	Seller       Identity
	Units        int64
	PricePerUnit int64
	PaymentAsset Asset
}

// ListingCanceledEvent reports a canceled sale listing.
type ListingCanceledEvent struct {
	Seller Identity
}

// TradeEvent reports a completed share purchase.
type TradeEvent struct {
	Seller       Identity
	Buyer        Identity
	Units        int64
	TotalPrice   int64
	Commission   int64
	PaymentAsset Asset
}

func (InitializedEvent) event()         {}
func (SharesReplacedEvent) event()      {}
func (LockedEvent) event()              {}
func (SharesTransferredEvent) event()   {}
func (DistributionEvent) event()        {}
func (DustEvent) event()                {}
func (CommissionEvent) event()          {}
func (DistributionSummaryEvent) event() {}
func (WithdrawalEvent) event()          {}
func (SweepEvent) event()               {}
func (ListedEvent) event()              {}
func (ListingCanceledEvent) event()     {}
func (TradeEvent) event()               {}
