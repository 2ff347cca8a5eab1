// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
	setypes "github.com/meterio/nft-auction/script/types"
)

var createdEventTopic = meter.Blake2b([]byte("auction-created"))

// CreateAuction lists an owned asset. The advertised standard is resolved
// here, once, and stored on the record; ownership is verified against the
// gateway. No funds or assets move at creation, custody of the asset is
// deferred to the first bid.
func (a *Auction) CreateAuction(env *setypes.ScriptEnv, ab *AuctionBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("create completed", "elapsed", meter.PrettyDuration(time.Since(start)))
	}()
	leftOverGas = chargeClauseGas(gas)

	state := env.GetState()
	reg := a.newRegistry(state)

	var std nft.Standard
	switch {
	case reg.SupportsStandard(ab.TokenAddr, nft.StandardSingleOwner):
		std = nft.StandardSingleOwner
		if reg.OwnerOf(ab.TokenAddr, ab.TokenID) != ab.Bidder {
			a.logger.Info("create rejected, caller does not own token", "caller", ab.Bidder, "tokenID", ab.TokenID)
			err = errNotAssetOwner
			return
		}
	case reg.SupportsStandard(ab.TokenAddr, nft.StandardBalanceCounted):
		std = nft.StandardBalanceCounted
		if reg.BalanceOf(ab.TokenAddr, ab.Bidder, ab.TokenID).Sign() <= 0 {
			a.logger.Info("create rejected, caller holds no token", "caller", ab.Bidder, "tokenID", ab.TokenID)
			err = errNotAssetOwner
			return
		}
	default:
		a.logger.Info("create rejected, contract advertises no known standard", "contract", ab.TokenAddr)
		err = errInvalidAssetContract
		return
	}

	id := a.GetAuctionCount(state) + 1
	record := &AuctionRecord{
		ID:          id,
		Seller:      ab.Bidder,
		EndTime:     ab.EndTime,
		StartingBid: ab.StartingBid,
		CurrentBid:  new(big.Int),
		TokenID:     ab.TokenID,
		TokenAddr:   ab.TokenAddr,
		Standard:    uint8(std),
	}
	a.SetAuctionRecord(state, id, record)
	a.SetAuctionCount(state, id)

	env.AddEvent(meter.AuctionModuleAddr, []meter.Bytes32{createdEventTopic}, encodeID(id))
	auctionCreatedCounter.Inc()
	a.logger.Info("auction created", "record", record.ToString())

	ret, err = rlp.EncodeToBytes(id)
	return
}

func encodeID(id uint64) []byte {
	data, err := rlp.EncodeToBytes(id)
	if err != nil {
		return []byte{}
	}
	return data
}
