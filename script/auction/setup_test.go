// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meterio/nft-auction/kv"
	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
	setypes "github.com/meterio/nft-auction/script/types"
	"github.com/meterio/nft-auction/state"
	"github.com/meterio/nft-auction/xenv"
)

var (
	sellerAddr = meter.BytesToAddress([]byte("seller"))
	bidderA    = meter.BytesToAddress([]byte("bidder-a"))
	bidderB    = meter.BytesToAddress([]byte("bidder-b"))
	bidderC    = meter.BytesToAddress([]byte("bidder-c"))
	tokenAddr  = meter.BytesToAddress([]byte("token-contract"))
	tokenID    = big.NewInt(7)

	testNow     = uint64(10000)
	testEndTime = uint64(20000)
)

type testEnv struct {
	t     *testing.T
	state *state.State
	a     *Auction
	reg   *nft.StateRegistry
}

// initAuctionTest builds a fresh state with a deployed single-owner token
// contract, one minted token on the seller, and funded bidder accounts.
func initAuctionTest(t *testing.T, std nft.Standard) *testEnv {
	st := state.New(kv.NewMemDB())
	reg := nft.New(st)
	assert.Nil(t, reg.Deploy(tokenAddr, std))
	assert.Nil(t, reg.Mint(tokenAddr, sellerAddr, tokenID, big.NewInt(1)))

	for _, addr := range []meter.Address{bidderA, bidderB, bidderC} {
		st.AddEnergy(addr, big.NewInt(1_000_000))
	}
	return &testEnv{t: t, state: st, a: New(), reg: reg}
}

func (te *testEnv) scriptEnv(origin meter.Address, now uint64) *setypes.ScriptEnv {
	to := meter.AuctionModuleAddr
	return setypes.NewScriptEnv(
		te.state,
		&xenv.BlockContext{Number: 1, Time: now},
		&xenv.TransactionContext{Origin: origin},
		&to,
	)
}

func (te *testEnv) create(caller meter.Address, startingBid int64) (uint64, error) {
	body := &AuctionBody{
		Opcode:      OP_CREATE,
		Bidder:      caller,
		StartingBid: big.NewInt(startingBid),
		EndTime:     testEndTime,
		TokenID:     tokenID,
		TokenAddr:   tokenAddr,
	}
	body.normalize()
	env := te.scriptEnv(caller, testNow)
	_, err := te.a.CreateAuction(env, body, meter.ClauseGas*2)
	if err != nil {
		return 0, err
	}
	return te.a.GetAuctionCount(te.state), nil
}

func (te *testEnv) bidAt(caller meter.Address, auctionID uint64, amount int64, now uint64) error {
	body := &AuctionBody{
		Opcode:    OP_BID,
		AuctionID: auctionID,
		Bidder:    caller,
		Amount:    big.NewInt(amount),
	}
	body.normalize()
	env := te.scriptEnv(caller, now)
	_, err := te.a.HandleBid(env, body, meter.ClauseGas*2)
	return err
}

func (te *testEnv) bid(caller meter.Address, auctionID uint64, amount int64) error {
	return te.bidAt(caller, auctionID, amount, testNow)
}

func (te *testEnv) claimAt(caller meter.Address, auctionID uint64, now uint64) error {
	body := &AuctionBody{
		Opcode:    OP_CLAIM,
		AuctionID: auctionID,
		Bidder:    caller,
	}
	body.normalize()
	env := te.scriptEnv(caller, now)
	_, err := te.a.ClaimReward(env, body, meter.ClauseGas*2)
	return err
}

// seedRecord plants a mid-flight auction record plus the matching escrow
// balance, the way it looks after a chain of accepted bids.
func (te *testEnv) seedRecord(id uint64, currentBid int64, highest, previous meter.Address) *AuctionRecord {
	record := &AuctionRecord{
		ID:             id,
		Seller:         sellerAddr,
		EndTime:        testEndTime,
		StartingBid:    big.NewInt(1),
		CurrentBid:     big.NewInt(currentBid),
		HighestBidder:  highest,
		PreviousBidder: previous,
		TokenID:        tokenID,
		TokenAddr:      tokenAddr,
		Standard:       uint8(nft.StandardSingleOwner),
	}
	te.a.SetAuctionRecord(te.state, id, record)
	if id > te.a.GetAuctionCount(te.state) {
		te.a.SetAuctionCount(te.state, id)
	}
	te.state.AddEnergy(meter.AuctionModuleAddr, big.NewInt(currentBid))
	return record
}

func (te *testEnv) energy(addr meter.Address) *big.Int {
	return te.state.GetEnergy(addr)
}
