// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"time"

	"github.com/meterio/nft-auction/script/auction"
)

type AuctionRecord struct {
	ID             uint64 `json:"id"`
	Seller         string `json:"seller"`
	EndTime        string `json:"endTime"`
	StartingBid    string `json:"startingBid"`
	CurrentBid     string `json:"currentBid"`
	HighestBidder  string `json:"highestBidder"`
	PreviousBidder string `json:"previousBidder"`
	TokenID        string `json:"tokenID"`
	TokenAddr      string `json:"tokenAddr"`
	Standard       uint8  `json:"standard"`
}

func convertRecord(r *auction.AuctionRecord) *AuctionRecord {
	return &AuctionRecord{
		ID:             r.ID,
		Seller:         r.Seller.String(),
		EndTime:        fmt.Sprintln(time.Unix(int64(r.EndTime), 0)),
		StartingBid:    r.StartingBid.String(),
		CurrentBid:     r.CurrentBid.String(),
		HighestBidder:  r.HighestBidder.String(),
		PreviousBidder: r.PreviousBidder.String(),
		TokenID:        r.TokenID.String(),
		TokenAddr:      r.TokenAddr.String(),
		Standard:       r.Standard,
	}
}

func convertRecordList(records []*auction.AuctionRecord) []*AuctionRecord {
	recordList := make([]*AuctionRecord, 0)
	for _, r := range records {
		recordList = append(recordList, convertRecord(r))
	}
	return recordList
}
