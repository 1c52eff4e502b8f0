// Package catalog holds the fixed in-memory list of auction items and
// applies the bid-acceptance rules.
package catalog

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/utils"
)

// MaxItems caps how many items the catalog can hold.
const MaxItems = 5

// MaxBid is the largest bid amount the catalog accepts.
const MaxBid = 999_999_999

// Catalog owns the auction items and the history of accepted bids.
type Catalog struct {
	items []models.AuctionItem
	bids  [][]models.Bid // parallel to items
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Seed returns the predefined starting items: two open auctions and one
// already closed.
func Seed() []models.AuctionItem {
	return []models.AuctionItem{
		{
			Name:          "Antique Vase",
			Description:   "A beautiful ceramic vase from the Ming Dynasty.",
			CurrentBid:    1500.00,
			HighestBidder: models.NoBidsYet,
		},
		{
			Name:          "Rare Comic Book",
			Description:   "First edition of 'The Amazing Spider-Man #1'.",
			CurrentBid:    5000.00,
			HighestBidder: "Peter P.",
		},
		{
			Name:          "Vintage Guitar",
			Description:   "1960s electric guitar, well-preserved.",
			CurrentBid:    2500.00,
			HighestBidder: "Mary J.",
			Closed:        true,
		},
	}
}

// AddItem appends an item to the catalog.
func (c *Catalog) AddItem(item models.AuctionItem) error {
	if len(c.items) >= MaxItems {
		return fmt.Errorf("catalog: add %s: %w", item.Name, auctionerrors.ErrCatalogFull)
	}
	c.items = append(c.items, item)
	c.bids = append(c.bids, nil)
	return nil
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of the item list.
func (c *Catalog) Items() []models.AuctionItem {
	return append([]models.AuctionItem(nil), c.items...)
}

// Item returns the item at index.
func (c *Catalog) Item(index int) (models.AuctionItem, error) {
	if index < 0 || index >= len(c.items) {
		return models.AuctionItem{}, fmt.Errorf("catalog: item %d: %w", index, auctionerrors.ErrItemNotFound)
	}
	return c.items[index], nil
}

// PlaceBid applies the bid rules to the item at index and, on acceptance,
// raises its current bid, records the bidder and appends to the item's bid
// history. No rejection path mutates state.
//
// The catalog does not check whether the auction is closed: callers are
// responsible for withholding the bid action on closed items.
func (c *Catalog) PlaceBid(index int, amount float64, bidder string) (models.Bid, error) {
	if index < 0 || index >= len(c.items) {
		return models.Bid{}, fmt.Errorf("catalog: bid on item %d: %w", index, auctionerrors.ErrItemNotFound)
	}
	item := &c.items[index]

	if bidder == "" {
		return models.Bid{}, fmt.Errorf("catalog: bid on %s: %w", item.Name, auctionerrors.ErrNoBidder)
	}
	if amount <= item.CurrentBid {
		return models.Bid{}, fmt.Errorf("catalog: bid on %s: %w - current bid is %.2f",
			item.Name, auctionerrors.ErrBidTooLow, item.CurrentBid)
	}
	if amount > MaxBid {
		return models.Bid{}, fmt.Errorf("catalog: bid on %s: %w", item.Name, auctionerrors.ErrBidTooLarge)
	}

	item.CurrentBid = amount
	item.HighestBidder = bidder

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		Item:      item.Name,
		Bidder:    bidder,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	c.bids[index] = append(c.bids[index], bid)

	utils.Info("Bid placed", map[string]any{
		"bid_id": bid.BidID,
		"item":   bid.Item,
		"bidder": bid.Bidder,
		"amount": bid.Amount,
	})
	return bid, nil
}

// BidsFor returns a copy of the accepted-bid history for the item at index,
// oldest first.
func (c *Catalog) BidsFor(index int) ([]models.Bid, error) {
	if index < 0 || index >= len(c.items) {
		return nil, fmt.Errorf("catalog: bids for item %d: %w", index, auctionerrors.ErrItemNotFound)
	}
	return append([]models.Bid(nil), c.bids[index]...), nil
}
