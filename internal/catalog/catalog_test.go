package catalog

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	for _, item := range Seed() {
		require.NoError(t, c.AddItem(item))
	}
	return c
}

// Tests the predefined starting state
func TestSeed(t *testing.T) {
	c := newSeeded(t)

	require.Equal(t, 3, c.Len())

	vase, err := c.Item(0)
	require.NoError(t, err)
	require.Equal(t, "Antique Vase", vase.Name)
	require.Equal(t, 1500.00, vase.CurrentBid)
	require.Equal(t, model.NoBidsYet, vase.HighestBidder)
	require.False(t, vase.Closed)

	comic, err := c.Item(1)
	require.NoError(t, err)
	require.Equal(t, "Rare Comic Book", comic.Name)
	require.False(t, comic.Closed)

	guitar, err := c.Item(2)
	require.NoError(t, err)
	require.Equal(t, "Vintage Guitar", guitar.Name)
	require.True(t, guitar.Closed)
}

// Tests PlaceBid
func TestCatalog_PlaceBid(t *testing.T) {
	tests := []struct {
		name          string
		index         int
		amount        float64
		bidder        string
		expectedError error
	}{
		{name: "accepted", index: 0, amount: 1600, bidder: "Bob", expectedError: nil},
		{name: "equal_to_current_rejected", index: 0, amount: 1500, bidder: "Bob", expectedError: auctionerrors.ErrBidTooLow},
		{name: "below_current_rejected", index: 0, amount: 1400, bidder: "Bob", expectedError: auctionerrors.ErrBidTooLow},
		{name: "zero_amount_rejected", index: 0, amount: 0, bidder: "Bob", expectedError: auctionerrors.ErrBidTooLow},
		{name: "empty_bidder_rejected", index: 0, amount: 1600, bidder: "", expectedError: auctionerrors.ErrNoBidder},
		{name: "too_large_rejected", index: 0, amount: 1_000_000_000, bidder: "Bob", expectedError: auctionerrors.ErrBidTooLarge},
		{name: "max_bid_accepted", index: 0, amount: MaxBid, bidder: "Bob", expectedError: nil},
		{name: "negative_index", index: -1, amount: 1600, bidder: "Bob", expectedError: auctionerrors.ErrItemNotFound},
		{name: "index_out_of_range", index: 3, amount: 1600, bidder: "Bob", expectedError: auctionerrors.ErrItemNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newSeeded(t)
			before, _ := c.Item(0)

			bid, err := c.PlaceBid(tc.index, tc.amount, tc.bidder)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)

				// no rejection path mutates state
				after, _ := c.Item(0)
				require.Equal(t, before, after)
				return
			}

			require.NoError(t, err)

			after, err := c.Item(tc.index)
			require.NoError(t, err)
			require.Equal(t, tc.amount, after.CurrentBid)
			require.Equal(t, tc.bidder, after.HighestBidder)

			require.Equal(t, after.Name, bid.Item)
			require.Equal(t, tc.amount, bid.Amount)
			require.Equal(t, tc.bidder, bid.Bidder)
			_, parseErr := uuid.Parse(bid.BidID)
			require.NoError(t, parseErr, "BidID should be a valid UUID")
			require.WithinDuration(t, time.Now().UTC(), bid.CreatedAt, 2*time.Second)
		})
	}
}

// Tests that the current bid never decreases across a mixed sequence
func TestCatalog_CurrentBidMonotonic(t *testing.T) {
	c := newSeeded(t)

	amounts := []float64{1600, 1550, 2000, 2000, 1999, 2500.50}
	high := 1500.00
	for _, amount := range amounts {
		_, err := c.PlaceBid(0, amount, "Bob")
		if amount > high {
			require.NoError(t, err)
			high = amount
		} else {
			require.Error(t, err)
		}
		item, _ := c.Item(0)
		require.Equal(t, high, item.CurrentBid)
	}
}

// Tests the accepted-bid history
func TestCatalog_BidsFor(t *testing.T) {
	c := newSeeded(t)

	history, err := c.BidsFor(0)
	require.NoError(t, err)
	require.Empty(t, history)

	_, err = c.PlaceBid(0, 1600, "Bob")
	require.NoError(t, err)
	_, err = c.PlaceBid(0, 1400, "Eve") // rejected, must not be recorded
	require.Error(t, err)
	_, err = c.PlaceBid(0, 1700, "Carol")
	require.NoError(t, err)

	history, err = c.BidsFor(0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "Bob", history[0].Bidder)
	require.Equal(t, 1600.00, history[0].Amount)
	require.Equal(t, "Carol", history[1].Bidder)
	require.Equal(t, 1700.00, history[1].Amount)

	_, err = c.BidsFor(99)
	require.True(t, errors.Is(err, auctionerrors.ErrItemNotFound))
}

// Tests the catalog capacity ceiling
func TestCatalog_AddItem_CapacityExceeded(t *testing.T) {
	c := New()
	for i := 0; i < MaxItems; i++ {
		require.NoError(t, c.AddItem(model.AuctionItem{
			Name:          fmt.Sprintf("Item %d", i),
			HighestBidder: model.NoBidsYet,
		}))
	}

	err := c.AddItem(model.AuctionItem{Name: "One Too Many"})
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrCatalogFull))
	require.Equal(t, MaxItems, c.Len())
}
