package splitter

// Record keys in the backing store. Config and commission live in the
// config-class KV; everything else is data-class.
const (
	keyConfig       = "config"
	keyCommission   = "commission"
	keyHolders      = "holders"
	keyListingIndex = "active_listings"
)

func shareKey(holder Identity) string {
	return "share/" + string(holder)
}

func allocationKey(holder Identity, asset Asset) string {
	return "alloc/" + string(holder) + "/" + string(asset)
}

func totalAllocationKey(asset Asset) string {
	return "alloc_total/" + string(asset)
}

func listingKey(seller Identity) string {
	return "listing/" + string(seller)
}
