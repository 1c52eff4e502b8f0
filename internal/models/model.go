package models

import "time"

// NoBidsYet is the HighestBidder sentinel for items nobody has bid on.
const NoBidsYet = "No Bids Yet"

// AuctionItem represents a single item up for auction.
type AuctionItem struct {
	Name          string
	Description   string
	CurrentBid    float64
	HighestBidder string
	Closed        bool
}

// User represents a registered account. HashedPassword is the djb2
// checksum of the password, not a cryptographic hash.
type User struct {
	Username       string
	HashedPassword uint32
}

// Bid records one accepted bid on an item.
type Bid struct {
	BidID     string
	Item      string
	Bidder    string
	Amount    float64
	CreatedAt time.Time
}
