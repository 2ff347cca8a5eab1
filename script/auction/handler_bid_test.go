// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
)

func TestFirstBidEscrowsFundsAndAsset(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)

	assert.Nil(t, te.bid(bidderA, id, 100))

	assert.Equal(t, int64(1_000_000-100), te.energy(bidderA).Int64())
	assert.Equal(t, int64(100), te.energy(meter.AuctionModuleAddr).Int64())
	assert.Equal(t, meter.AuctionModuleAddr, te.reg.OwnerOf(tokenAddr, tokenID))

	record := te.a.GetAuctionRecord(te.state, id)
	assert.Equal(t, bidderA, record.HighestBidder)
	assert.Equal(t, int64(100), record.CurrentBid.Int64())
	assert.True(t, record.PreviousBidder.IsZero())
}

func TestBidOnUnknownAuction(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)

	// the zero record carries EndTime 0, so the missing auction reads as ended
	assert.Equal(t, errAuctionEnded, te.bid(bidderA, 42, 100))
}

func TestBidAlreadyHighestBidder(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	te.seedRecord(1, 500, bidderA, bidderB)

	assert.Equal(t, errAlreadyHighestBidder, te.bid(bidderA, 1, 1000))
}

func TestBidBelowStartingBid(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)

	assert.Equal(t, errBidBelowStartingBid, te.bid(bidderA, id, 99))
	assert.Nil(t, te.bid(bidderA, id, 100))
}

func TestZeroBidOnZeroStartingBid(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	id, err := te.create(sellerAddr, 0)
	assert.Nil(t, err)

	assert.Equal(t, errBidBelowStartingBid, te.bid(bidderA, id, 0))

	// the record must stay at its all-sentinel bid state
	record := te.a.GetAuctionRecord(te.state, id)
	assert.True(t, record.HighestBidder.IsZero())
	assert.False(t, record.HasBid())
	assert.Equal(t, int64(0), record.CurrentBid.Int64())
	assert.Equal(t, sellerAddr, te.reg.OwnerOf(tokenAddr, tokenID))
	assert.Equal(t, int64(1_000_000), te.energy(bidderA).Int64())

	// any positive amount still satisfies a zero starting bid
	assert.Nil(t, te.bid(bidderA, id, 1))
	record = te.a.GetAuctionRecord(te.state, id)
	assert.Equal(t, bidderA, record.HighestBidder)
	assert.Equal(t, int64(1), record.CurrentBid.Int64())
	assert.Equal(t, meter.AuctionModuleAddr, te.reg.OwnerOf(tokenAddr, tokenID))
}

func TestBidAfterEnd(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)

	assert.Equal(t, errAuctionEnded, te.bidAt(bidderA, id, 100, testEndTime))
	assert.Equal(t, errAuctionEnded, te.bidAt(bidderA, id, 100, testEndTime+5))
}

func TestBidInsufficientBalance(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)

	assert.Equal(t, errInsufficientBalance, te.bid(bidderA, id, 2_000_000))
}

func TestBidMinimumRaise(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	te.seedRecord(1, 100, bidderA, bidderB)

	// 20% over 100 puts the floor at 120
	assert.Equal(t, errUnprofitableBid, te.bid(bidderC, 1, 119))
	assert.Equal(t, int64(1_000_000), te.energy(bidderC).Int64())

	assert.Nil(t, te.bid(bidderC, 1, 120))

	record := te.a.GetAuctionRecord(te.state, 1)
	assert.Equal(t, bidderC, record.HighestBidder)
	assert.Equal(t, bidderA, record.PreviousBidder)
	assert.Equal(t, int64(120), record.CurrentBid.Int64())

	// displaced bid plus 3% of the gross raise goes back two leaders
	assert.Equal(t, int64(1_000_103), te.energy(bidderB).Int64())
}

func TestSecondBidNoPreviousBidder(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)
	assert.Nil(t, te.bid(bidderA, id, 100))

	// the first raise finds no displaced-by-one leader to refund
	assert.Equal(t, errNoPreviousBidder, te.bid(bidderB, id, 200))
}

func TestBidFeeSplit(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	te.seedRecord(1, 500, bidderA, bidderB)

	assert.Nil(t, te.bid(bidderC, 1, 1000))

	// refund: displaced 500 + 3% of 1000
	assert.Equal(t, int64(1_000_530), te.energy(bidderB).Int64())
	// bidder pays 1000, earns the 1% last-interactor cut back
	assert.Equal(t, int64(999_010), te.energy(bidderC).Int64())
	assert.Equal(t, int64(20), te.energy(meter.AuctionBurnAddr).Int64())
	assert.Equal(t, int64(20), te.energy(meter.AuctionDAOAddr).Int64())
	assert.Equal(t, int64(20), te.energy(meter.AuctionTeamAddr).Int64())
	// escrow keeps the standing bid: 500+1000-530-20-20-20-10
	assert.Equal(t, int64(900), te.energy(meter.AuctionModuleAddr).Int64())

	record := te.a.GetAuctionRecord(te.state, 1)
	assert.Equal(t, bidderC, record.HighestBidder)
	assert.Equal(t, bidderA, record.PreviousBidder)
	assert.Equal(t, int64(1000), record.CurrentBid.Int64())
}

func TestBidCheckOrder(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	te.seedRecord(1, 500, bidderA, bidderB)

	// leader check fires before the amount checks
	assert.Equal(t, errAlreadyHighestBidder, te.bid(bidderA, 1, 0))
	// starting-bid check fires before the deadline check
	record := te.a.GetAuctionRecord(te.state, 1)
	record.StartingBid.SetInt64(600)
	te.a.SetAuctionRecord(te.state, 1, record)
	assert.Equal(t, errBidBelowStartingBid, te.bidAt(bidderC, 1, 599, testEndTime+1))
}
