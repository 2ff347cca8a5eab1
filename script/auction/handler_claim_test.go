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

func TestClaimNotWinner(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	te.seedRecord(1, 500, bidderA, bidderB)

	assert.Equal(t, errNotHighestBidder, te.claimAt(bidderB, 1, testEndTime+1))
	// unknown auction reads as a zero record, the same check fires
	assert.Equal(t, errNotHighestBidder, te.claimAt(bidderA, 99, testEndTime+1))
}

func TestClaimBeforeEnd(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	te.seedRecord(1, 500, bidderA, bidderB)

	assert.Equal(t, errAuctionNotEnded, te.claimAt(bidderA, 1, testEndTime-1))
}

func TestClaimSettlesAndResets(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)
	assert.Nil(t, te.bid(bidderA, id, 100))

	assert.Nil(t, te.claimAt(bidderA, id, testEndTime))

	// the asset leaves module custody, the principal stays behind
	assert.Equal(t, bidderA, te.reg.OwnerOf(tokenAddr, tokenID))
	assert.Equal(t, int64(100), te.energy(meter.AuctionModuleAddr).Int64())

	record := te.a.GetAuctionRecord(te.state, id)
	assert.True(t, record.HighestBidder.IsZero())
	assert.True(t, record.TokenAddr.IsZero())
	assert.Equal(t, uint64(0), record.EndTime)
	assert.Equal(t, int64(0), record.CurrentBid.Int64())

	// the reset record makes a second claim fail the winner check
	assert.Equal(t, errNotHighestBidder, te.claimAt(bidderA, id, testEndTime))
}

func TestClaimBalanceCounted(t *testing.T) {
	te := initAuctionTest(t, nft.StandardBalanceCounted)
	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)
	assert.Nil(t, te.bid(bidderA, id, 100))

	assert.Nil(t, te.claimAt(bidderA, id, testEndTime))
	assert.Equal(t, int64(1), te.reg.BalanceOf(tokenAddr, bidderA, tokenID).Int64())
	assert.Equal(t, int64(0), te.reg.BalanceOf(tokenAddr, meter.AuctionModuleAddr, tokenID).Int64())
}

func TestClaimUnknownStandard(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)
	record := te.seedRecord(1, 500, bidderA, bidderB)
	record.Standard = 7
	te.a.SetAuctionRecord(te.state, 1, record)

	assert.Equal(t, errInvalidAssetType, te.claimAt(bidderA, 1, testEndTime))

	// the record survives a failed settlement
	after := te.a.GetAuctionRecord(te.state, 1)
	assert.Equal(t, bidderA, after.HighestBidder)
}
