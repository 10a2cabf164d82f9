package splitter

import "errors"

var (
	// ErrNotInitialized indicates the contract has not been initialized.
	ErrNotInitialized = errors.New("splitter: not initialized")

	// ErrAlreadyInitialized indicates Init was called more than once.
	ErrAlreadyInitialized = errors.New("splitter: already initialized")

	// ErrUnauthorized indicates the context does not prove the required identity.
	ErrUnauthorized = errors.New("splitter: unauthorized")

	// ErrContractLocked indicates a registry replacement after the lock.
	ErrContractLocked = errors.New("splitter: contract is locked")

	// ErrLowShareCount indicates fewer than one share record.
	ErrLowShareCount = errors.New("splitter: at least one share record is required")

	// ErrInvalidShareTotal indicates share units do not sum to the total supply.
	ErrInvalidShareTotal = errors.New("splitter: share units must sum to 10000")

	// ErrNegativeShareAmount indicates a share record with negative units.
	ErrNegativeShareAmount = errors.New("splitter: negative share amount")

	// ErrDuplicateShareholder indicates a holder appears twice in a share set.
	ErrDuplicateShareholder = errors.New("splitter: duplicate shareholder")

	// ErrZeroTransferAmount indicates a sweep of a non-positive amount.
	ErrZeroTransferAmount = errors.New("splitter: transfer amount must be positive")

	// ErrTransferAmountAboveBalance indicates a sweep above the held balance.
	ErrTransferAmountAboveBalance = errors.New("splitter: transfer amount above balance")

	// ErrTransferAmountAboveUnusedBalance indicates a sweep into allocated funds.
	ErrTransferAmountAboveUnusedBalance = errors.New("splitter: transfer amount above unused balance")

	// ErrZeroWithdrawalAmount indicates a withdrawal of a non-positive amount.
	ErrZeroWithdrawalAmount = errors.New("splitter: withdrawal amount must be positive")

	// ErrWithdrawalAmountAboveAllocation indicates a withdrawal above the
	// holder's claimable allocation.
	ErrWithdrawalAmountAboveAllocation = errors.New("splitter: withdrawal amount above allocation")

	// ErrNoSharesToSell indicates the seller holds fewer units than offered.
	ErrNoSharesToSell = errors.New("splitter: no shares to sell")

	// ErrNoActiveListing indicates the seller has no live listing.
	ErrNoActiveListing = errors.New("splitter: no active listing")

	// ErrInsufficientSharesInListing indicates a buy above the listed units.
	ErrInsufficientSharesInListing = errors.New("splitter: insufficient shares in listing")

	// ErrInvalidPrice indicates a non-positive price per unit.
	ErrInvalidPrice = errors.New("splitter: price per unit must be positive")

	// ErrInvalidShareAmount indicates a non-positive unit amount.
	ErrInvalidShareAmount = errors.New("splitter: share amount must be positive")

	// ErrCannotBuyOwnShares indicates a buyer purchasing from themselves.
	ErrCannotBuyOwnShares = errors.New("splitter: cannot buy own shares")

	// ErrNoSharesToTransfer indicates the sender holds no share record.
	ErrNoSharesToTransfer = errors.New("splitter: no shares to transfer")

	// ErrInsufficientSharesToTransfer indicates a transfer above the sender's units.
	ErrInsufficientSharesToTransfer = errors.New("splitter: insufficient shares to transfer")

	// ErrCannotTransferToSelf indicates sender and recipient are the same.
	ErrCannotTransferToSelf = errors.New("splitter: cannot transfer to self")

	// ErrOverflow indicates an arithmetic overflow computing a trade total.
	ErrOverflow = errors.New("splitter: arithmetic overflow")

	// ErrInvalidCommissionRate indicates a commission rate outside [0, 5000] bps.
	ErrInvalidCommissionRate = errors.New("splitter: commission rate must be between 0 and 5000 basis points")

	// ErrNilParam indicates a required collaborator is missing.
	ErrNilParam = errors.New("splitter: nil parameter")
)
