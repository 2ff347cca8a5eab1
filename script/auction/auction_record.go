// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"math/big"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
)

// AuctionRecord is the durable state of one auction. A freshly decoded
// missing record is the zero record: every field at its zero/null sentinel.
// CurrentBid == 0 holds exactly while no bid has been placed.
type AuctionRecord struct {
	ID             uint64
	Seller         meter.Address
	EndTime        uint64
	StartingBid    *big.Int
	CurrentBid     *big.Int
	HighestBidder  meter.Address
	PreviousBidder meter.Address
	TokenID        *big.Int
	TokenAddr      meter.Address
	Standard       uint8
}

func newZeroRecord() *AuctionRecord {
	return &AuctionRecord{
		StartingBid: new(big.Int),
		CurrentBid:  new(big.Int),
		TokenID:     new(big.Int),
	}
}

// HasBid reports whether any bid has landed on this record.
func (r *AuctionRecord) HasBid() bool {
	return r.CurrentBid.Sign() > 0
}

// AssetStandard returns the standard resolved at creation time.
func (r *AuctionRecord) AssetStandard() nft.Standard {
	return nft.Standard(r.Standard)
}

func (r *AuctionRecord) ToString() string {
	return fmt.Sprintf("AuctionRecord(id=%v, seller=%v, endTime=%v, startingBid=%v, currentBid=%v, highestBidder=%v, previousBidder=%v, tokenID=%v, tokenAddr=%v, standard=%v)",
		r.ID, r.Seller.AbbrevString(), r.EndTime, r.StartingBid, r.CurrentBid, r.HighestBidder.AbbrevString(), r.PreviousBidder.AbbrevString(), r.TokenID, r.TokenAddr.AbbrevString(), r.AssetStandard())
}
