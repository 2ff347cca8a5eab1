// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"errors"
	"math/big"
)

const (
	OP_CREATE = uint32(1)
	OP_BID    = uint32(2)
	OP_CLAIM  = uint32(3)
)

// Fee configuration, fixed at deployment. Percentages apply to the gross
// amount of each subsequent bid, with floor division; the remainder stays
// on the module account. The sum of the cuts must stay at or below 100.
const (
	// MinRaisePct is the minimum increment over the standing bid.
	MinRaisePct = int64(20)
	// PreviousBidderPct is the displaced-history cut paid on refund.
	PreviousBidderPct = int64(3)
	BurnPct           = int64(2)
	DAOPct            = int64(2)
	TeamPct           = int64(2)
	// LastInteractorPct rewards the caller that triggered the transition.
	LastInteractorPct = int64(1)
)

func GetOpName(op uint32) string {
	switch op {
	case OP_CREATE:
		return "Create"
	case OP_BID:
		return "Bid"
	case OP_CLAIM:
		return "Claim"
	default:
		return "Unknown"
	}
}

var (
	errInvalidAssetContract = errors.New("invalid asset contract")
	errNotAssetOwner        = errors.New("not asset owner")
	errAlreadyHighestBidder = errors.New("already highest bidder")
	errBidBelowStartingBid  = errors.New("bid below starting bid")
	errAuctionEnded         = errors.New("auction ended")
	errInsufficientBalance  = errors.New("insufficient balance")
	errUnprofitableBid      = errors.New("unprofitable bid")
	errNoPreviousBidder     = errors.New("no previous bidder")
	errNotHighestBidder     = errors.New("not highest bidder")
	errAuctionNotEnded      = errors.New("auction not ended")
	errInvalidAssetType     = errors.New("invalid asset type")
)

// percentage computes floor(amount * pct / 100).
func percentage(amount *big.Int, pct int64) *big.Int {
	cut := new(big.Int).Mul(amount, big.NewInt(pct))
	return cut.Div(cut, big.NewInt(100))
}
