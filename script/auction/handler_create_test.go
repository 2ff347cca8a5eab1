// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
)

func TestCreateAuction(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)

	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id)

	record := te.a.GetAuctionRecord(te.state, id)
	assert.Equal(t, id, record.ID)
	assert.Equal(t, sellerAddr, record.Seller)
	assert.Equal(t, testEndTime, record.EndTime)
	assert.Equal(t, big.NewInt(100), record.StartingBid)
	assert.Equal(t, uint8(nft.StandardSingleOwner), record.Standard)
	assert.True(t, record.HighestBidder.IsZero())
	assert.False(t, record.HasBid())

	// creation must not move the asset or any funds
	assert.Equal(t, sellerAddr, te.reg.OwnerOf(tokenAddr, tokenID))
	assert.Equal(t, int64(0), te.energy(meter.AuctionModuleAddr).Int64())
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)

	id1, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)
	id2, err := te.create(sellerAddr, 200)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, uint64(2), te.a.GetAuctionCount(te.state))
}

func TestCreateBalanceCounted(t *testing.T) {
	te := initAuctionTest(t, nft.StandardBalanceCounted)

	id, err := te.create(sellerAddr, 100)
	assert.Nil(t, err)
	record := te.a.GetAuctionRecord(te.state, id)
	assert.Equal(t, uint8(nft.StandardBalanceCounted), record.Standard)
}

func TestCreateNotOwner(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)

	_, err := te.create(bidderA, 100)
	assert.Equal(t, errNotAssetOwner, err)
	assert.Equal(t, uint64(0), te.a.GetAuctionCount(te.state))
}

func TestCreateNoBalance(t *testing.T) {
	te := initAuctionTest(t, nft.StandardBalanceCounted)

	_, err := te.create(bidderA, 100)
	assert.Equal(t, errNotAssetOwner, err)
}

func TestCreateInvalidContract(t *testing.T) {
	te := initAuctionTest(t, nft.StandardSingleOwner)

	body := &AuctionBody{
		Opcode:      OP_CREATE,
		Bidder:      sellerAddr,
		StartingBid: big.NewInt(100),
		EndTime:     testEndTime,
		TokenID:     tokenID,
		TokenAddr:   meter.BytesToAddress([]byte("no-such-contract")),
	}
	body.normalize()
	env := te.scriptEnv(sellerAddr, testNow)
	_, err := te.a.CreateAuction(env, body, meter.ClauseGas*2)
	assert.Equal(t, errInvalidAssetContract, err)
}
