package splitter

// TotalUnits is the fixed pool supply: share units always sum to this.
const TotalUnits int64 = 10000

// Commission rate bounds and defaults, in basis points.
const (
	MaxCommissionRateBps       int64 = 5000
	DefaultBuyRateBps          int64 = 150 // 1.5% on share purchases
	DefaultDistributionRateBps int64 = 50  // 0.5% on distributions
	bpsDenominator             int64 = 10000
)

// Identity names a party: a holder, admin, seller, buyer or commission
// recipient. Identities are opaque address strings and never contain '/'.
type Identity string

// Asset names an asset whose balances the external transferor moves.
type Asset string

// ShareRecord binds a holder to their unit amount.
type ShareRecord struct {
	Holder Identity
	Units  int64
}

// Config is the contract configuration: the admin identity and a one-way
// mutability flag gating wholesale registry replacement.
type Config struct {
	Admin   Identity
	Mutable bool
}

// CommissionConfig is the commission policy: the recipient of skimmed value
// and the two skim rates in basis points.
type CommissionConfig struct {
	Recipient           Identity
	BuyRateBps          int64
	DistributionRateBps int64
}

// SaleListing is a seller's standing offer: units for sale at a fixed price
// per unit, payable in the given asset.
type SaleListing struct {
	Seller       Identity
	Units        int64
	PricePerUnit int64
	PaymentAsset Asset
}
