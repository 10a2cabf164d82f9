package splitter

import "fmt"

// ---------------------------------------------------------------------------
// Listing record access
// ---------------------------------------------------------------------------

func (s *Splitter) getListing(seller Identity) (SaleListing, bool, error) {
	var listing SaleListing
	ok, err := s.store.Data().Get(listingKey(seller), &listing)
	if err != nil {
		return SaleListing{}, false, fmt.Errorf("splitter: read listing: %w", err)
	}
	return listing, ok, nil
}

// getActiveListings returns the active-seller index; absent reads as empty.
func (s *Splitter) getActiveListings() ([]Identity, error) {
	var sellers []Identity
	if _, err := s.store.Data().Get(keyListingIndex, &sellers); err != nil {
		return nil, fmt.Errorf("splitter: read listing index: %w", err)
	}
	return sellers, nil
}

func (s *Splitter) putActiveListings(sellers []Identity) error {
	if err := s.store.Data().Put(keyListingIndex, sellers); err != nil {
		return fmt.Errorf("splitter: write listing index: %w", err)
	}
	return nil
}

// saveListing writes a seller's listing and keeps the active-seller index in
// lockstep: a seller appears at most once.
func (s *Splitter) saveListing(listing SaleListing) error {
	if err := s.store.Data().Put(listingKey(listing.Seller), listing); err != nil {
		return fmt.Errorf("splitter: write listing: %w", err)
	}

	sellers, err := s.getActiveListings()
	if err != nil {
		return err
	}
	for _, seller := range sellers {
		if seller == listing.Seller {
			return nil
		}
	}
	return s.putActiveListings(append(sellers, listing.Seller))
}

// removeListing drops a seller's listing and its index entry.
func (s *Splitter) removeListing(seller Identity) error {
	if err := s.store.Data().Delete(listingKey(seller)); err != nil {
		return fmt.Errorf("splitter: delete listing: %w", err)
	}

	sellers, err := s.getActiveListings()
	if err != nil {
		return err
	}
	return s.putActiveListings(removeHolder(sellers, seller))
}

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// ListSharesForSale creates or overwrites the seller's sale listing. The
// seller must authorize and must currently hold at least the offered units.
func (s *Splitter) ListSharesForSale(ctx Context, seller Identity, units, pricePerUnit int64, paymentAsset Asset) error {
	if units <= 0 {
		return ErrInvalidShareAmount
	}
	if pricePerUnit <= 0 {
		return ErrInvalidPrice
	}
	if err := ctx.Require(seller); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	held, ok, err := s.getShare(seller)
	if err != nil {
		return err
	}
	if !ok || held < units {
		return ErrNoSharesToSell
	}

	listing := SaleListing{
		Seller:       seller,
		Units:        units,
		PricePerUnit: pricePerUnit,
		PaymentAsset: paymentAsset,
	}
	if err := s.saveListing(listing); err != nil {
		return err
	}

	s.emit(ListedEvent{Seller: seller, Units: units, PricePerUnit: pricePerUnit, PaymentAsset: paymentAsset})
	return nil
}

// CancelListing removes the seller's active listing. Seller only.
func (s *Splitter) CancelListing(ctx Context, seller Identity) error {
	if err := ctx.Require(seller); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if _, ok, err := s.getListing(seller); err != nil {
		return err
	} else if !ok {
		return ErrNoActiveListing
	}

	if err := s.removeListing(seller); err != nil {
		return err
	}

	s.emit(ListingCanceledEvent{Seller: seller})
	return nil
}

// BuyShares fills part or all of a seller's listing. The buyer must
// authorize. Payment (minus the buy commission) goes to the seller, the
// commission to the recipient, and the units move with full registry
// semantics. A partial fill rewrites the listing with the reduced amount; a
// full fill removes it.
//
// The seller's current registry balance must still cover the purchased
// units: a listing gone stale through an unrelated share transfer fails the
// buy before any payment moves.
func (s *Splitter) BuyShares(ctx Context, buyer, seller Identity, units int64) error {
	if err := ctx.Require(buyer); err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if units <= 0 {
		return ErrInvalidShareAmount
	}
	if buyer == seller {
		return ErrCannotBuyOwnShares
	}

	listing, ok, err := s.getListing(seller)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoActiveListing
	}
	if units > listing.Units {
		return ErrInsufficientSharesInListing
	}

	totalPrice, ok := checkedMul(units, listing.PricePerUnit)
	if !ok {
		return ErrOverflow
	}

	sellerUnits, ok, err := s.getShare(seller)
	if err != nil {
		return err
	}
	if !ok || sellerUnits < units {
		return ErrNoSharesToSell
	}

	policy, err := s.commissionConfig()
	if err != nil {
		return err
	}
	commission := computeCommission(totalPrice, policy.BuyRateBps)
	sellerReceives := totalPrice - commission

	if sellerReceives > 0 {
		if err := s.assets.Transfer(listing.PaymentAsset, buyer, seller, sellerReceives); err != nil {
			return err
		}
	}
	if commission > 0 {
		if err := s.assets.Transfer(listing.PaymentAsset, buyer, policy.Recipient, commission); err != nil {
			return err
		}
	}

	if err := s.moveShares(seller, buyer, sellerUnits, units); err != nil {
		return err
	}

	remaining := listing.Units - units
	if remaining > 0 {
		listing.Units = remaining
		if err := s.saveListing(listing); err != nil {
			return err
		}
	} else {
		if err := s.removeListing(seller); err != nil {
			return err
		}
	}

	s.emit(TradeEvent{
		Seller:       seller,
		Buyer:        buyer,
		Units:        units,
		TotalPrice:   totalPrice,
		Commission:   commission,
		PaymentAsset: listing.PaymentAsset,
	})
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetListing returns a seller's listing, reporting whether one exists.
func (s *Splitter) GetListing(seller Identity) (SaleListing, bool, error) {
	return s.getListing(seller)
}

// ListAllSales returns every active listing in index order.
func (s *Splitter) ListAllSales() ([]SaleListing, error) {
	sellers, err := s.getActiveListings()
	if err != nil {
		return nil, err
	}
	listings := make([]SaleListing, 0, len(sellers))
	for _, seller := range sellers {
		listing, ok, err := s.getListing(seller)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
