package auctionerrors

import "errors"

// Catalog errors
var (
	ErrItemNotFound = errors.New("item not found")
	ErrCatalogFull  = errors.New("catalog is at capacity")
	ErrNoBidder     = errors.New("bidder name is empty")
	ErrBidTooLow    = errors.New("bid amount too low")
	ErrBidTooLarge  = errors.New("bid amount too large")
)

// Credential errors
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserLimit     = errors.New("maximum user limit reached")
)
