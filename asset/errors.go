package asset

import "errors"

var (
	// ErrInsufficientFunds indicates the sender's balance cannot cover the transfer.
	ErrInsufficientFunds = errors.New("asset: insufficient funds")

	// ErrNonPositiveAmount indicates a transfer or mint of a non-positive amount.
	ErrNonPositiveAmount = errors.New("asset: amount must be positive")
)
