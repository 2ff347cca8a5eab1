// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"time"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
	setypes "github.com/meterio/nft-auction/script/types"
)

var claimedEventTopic = meter.Blake2b([]byte("auction-claimed"))

// ClaimReward settles an ended auction: the recorded winner pulls the asset
// out of module custody and the record is zeroed. The winning principal
// stays on the module account; bid proceeds were already distributed during
// the bid flow and no draw path exists for the final bid.
func (a *Auction) ClaimReward(env *setypes.ScriptEnv, ab *AuctionBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("claim completed", "elapsed", meter.PrettyDuration(time.Since(start)))
	}()
	leftOverGas = chargeClauseGas(gas)

	state := env.GetState()
	record := a.GetAuctionRecord(state, ab.AuctionID)

	if ab.Bidder != record.HighestBidder {
		a.logger.Info("claim rejected, caller is not the winner", "caller", ab.Bidder, "auction", ab.AuctionID)
		err = errNotHighestBidder
		return
	}
	if env.GetBlockCtx().Time < record.EndTime {
		a.logger.Info("claim rejected, auction still open", "now", env.GetBlockCtx().Time, "endTime", record.EndTime)
		err = errAuctionNotEnded
		return
	}

	// dispatch on the standard resolved at creation time
	std := record.AssetStandard()
	switch std {
	case nft.StandardSingleOwner, nft.StandardBalanceCounted:
		reg := a.newRegistry(state)
		if err = reg.Transfer(std, record.TokenAddr, meter.AuctionModuleAddr, ab.Bidder, record.TokenID); err != nil {
			a.logger.Error("asset settlement transfer failed", "winner", ab.Bidder, "err", err)
			return
		}
	default:
		a.logger.Error("claim rejected, record holds unknown standard", "standard", record.Standard)
		err = errInvalidAssetType
		return
	}

	a.ResetAuctionRecord(state, ab.AuctionID)

	env.AddEvent(meter.AuctionModuleAddr, []meter.Bytes32{claimedEventTopic}, encodeID(ab.AuctionID))
	auctionClaimCounter.Inc()
	a.logger.Info("auction claimed", "auction", ab.AuctionID, "winner", ab.Bidder)
	return
}
