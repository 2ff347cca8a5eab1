// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"
	"time"

	"github.com/meterio/nft-auction/meter"
	setypes "github.com/meterio/nft-auction/script/types"
)

var bidEventTopic = meter.Blake2b([]byte("auction-bid"))

// HandleBid places a bid. The first bid escrows both the funds and the
// asset; every later bid must raise the standing bid by at least 20%,
// refunds the previous bidder and splits the configured fees out of the
// gross amount. Validation failures reject the whole transition, the
// engine's checkpoint undoes anything staged here.
func (a *Auction) HandleBid(env *setypes.ScriptEnv, ab *AuctionBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("bid completed", "elapsed", meter.PrettyDuration(time.Since(start)))
	}()
	leftOverGas = chargeClauseGas(gas)

	state := env.GetState()
	record := a.GetAuctionRecord(state, ab.AuctionID)

	if ab.Bidder == record.HighestBidder {
		a.logger.Info("bid rejected, caller already leads", "bidder", ab.Bidder, "auction", ab.AuctionID)
		err = errAlreadyHighestBidder
		return
	}
	// a zero amount never qualifies, even against a zero starting bid;
	// CurrentBid == 0 must keep meaning "no bid yet"
	if ab.Amount.Sign() <= 0 || ab.Amount.Cmp(record.StartingBid) < 0 {
		a.logger.Info("bid rejected, below starting bid", "amount", ab.Amount, "startingBid", record.StartingBid)
		err = errBidBelowStartingBid
		return
	}
	if env.GetBlockCtx().Time >= record.EndTime {
		a.logger.Info("bid rejected, auction over", "now", env.GetBlockCtx().Time, "endTime", record.EndTime)
		err = errAuctionEnded
		return
	}
	if state.GetEnergy(ab.Bidder).Cmp(ab.Amount) < 0 {
		a.logger.Info("bid rejected, not enough balance", "bidder", ab.Bidder, "amount", ab.Amount, "balance", state.GetEnergy(ab.Bidder))
		err = errInsufficientBalance
		return
	}

	if !record.HasBid() {
		err = a.firstBid(env, ab, record)
	} else {
		err = a.raiseBid(env, ab, record)
	}
	if err != nil {
		return
	}

	env.AddEvent(meter.AuctionModuleAddr, []meter.Bytes32{bidEventTopic}, encodeID(ab.AuctionID))
	auctionBidCounter.Inc()
	updateEscrowGauge(state)
	return
}

// firstBid escrows the bid and pulls the asset out of the seller's custody.
// No previous bidder exists yet, so no refund and no fee split.
func (a *Auction) firstBid(env *setypes.ScriptEnv, ab *AuctionBody, record *AuctionRecord) error {
	state := env.GetState()

	if err := env.TransferToEscrow(ab.Bidder, ab.Amount); err != nil {
		a.logger.Error("bid escrow transfer failed", "bidder", ab.Bidder, "err", err)
		return errInsufficientBalance
	}

	reg := a.newRegistry(state)
	if err := reg.Transfer(record.AssetStandard(), record.TokenAddr, record.Seller, meter.AuctionModuleAddr, record.TokenID); err != nil {
		a.logger.Error("asset escrow transfer failed", "seller", record.Seller, "err", err)
		return err
	}

	record.HighestBidder = ab.Bidder
	record.CurrentBid = ab.Amount
	a.SetAuctionRecord(state, ab.AuctionID, record)
	a.logger.Info("first bid accepted", "record", record.ToString())
	return nil
}

// raiseBid handles every bid after the first. The refund deliberately pays
// the record's PreviousBidder, the leader displaced two bids back, the
// displaced bid amount plus the previous-bidder cut of the gross new
// amount. See DESIGN.md before changing this.
func (a *Auction) raiseBid(env *setypes.ScriptEnv, ab *AuctionBody, record *AuctionRecord) error {
	state := env.GetState()

	minRaise := new(big.Int).Add(record.CurrentBid, percentage(record.CurrentBid, MinRaisePct))
	if ab.Amount.Cmp(minRaise) < 0 {
		a.logger.Info("bid rejected, raise too small", "amount", ab.Amount, "minRaise", minRaise)
		return errUnprofitableBid
	}

	if err := env.TransferToEscrow(ab.Bidder, ab.Amount); err != nil {
		a.logger.Error("bid escrow transfer failed", "bidder", ab.Bidder, "err", err)
		return errInsufficientBalance
	}

	if record.PreviousBidder.IsZero() {
		a.logger.Info("bid rejected, no previous bidder to refund", "auction", ab.AuctionID)
		return errNoPreviousBidder
	}
	refund := new(big.Int).Add(record.CurrentBid, percentage(ab.Amount, PreviousBidderPct))
	if err := env.PayFromEscrow(record.PreviousBidder, refund); err != nil {
		a.logger.Error("refund failed", "previousBidder", record.PreviousBidder, "err", err)
		return err
	}

	record.PreviousBidder = record.HighestBidder
	record.HighestBidder = ab.Bidder
	record.CurrentBid = ab.Amount
	a.SetAuctionRecord(state, ab.AuctionID, record)

	if err := a.splitFees(env, ab.Bidder, ab.Amount); err != nil {
		return err
	}
	a.logger.Info("bid accepted", "record", record.ToString(), "refund", refund)
	return nil
}

// splitFees pays the burn sink, the treasuries and the last interactor their
// fixed cuts of the gross bid amount, out of module custody. Floor division
// throughout, the dust stays escrowed.
func (a *Auction) splitFees(env *setypes.ScriptEnv, lastInteractor meter.Address, amount *big.Int) error {
	cuts := []struct {
		recipient meter.Address
		pct       int64
	}{
		{meter.AuctionBurnAddr, BurnPct},
		{meter.AuctionDAOAddr, DAOPct},
		{meter.AuctionTeamAddr, TeamPct},
		{lastInteractor, LastInteractorPct},
	}
	for _, cut := range cuts {
		if err := env.PayFromEscrow(cut.recipient, percentage(amount, cut.pct)); err != nil {
			a.logger.Error("fee payout failed", "recipient", cut.recipient, "err", err)
			return err
		}
	}
	return nil
}
