// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/state"
)

// Auction store schema: everything lives under the module account. The
// count and the records are the only keys this module touches; sibling
// modules on the same state never see them.
var auctionCountKey = meter.Blake2b([]byte("auction-count-key"))

func auctionRecordKey(id uint64) meter.Bytes32 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], id)
	return meter.Blake2b([]byte("auction-record-key"), b[:])
}

// GetAuctionCount returns the number of auctions ever created. Identifiers
// are allocated as count+1, so the count never decreases and ids are never
// reused, a claimed record's id included.
func (a *Auction) GetAuctionCount(state *state.State) (count uint64) {
	state.DecodeStorage(meter.AuctionModuleAddr, auctionCountKey, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &count)
	})
	return
}

func (a *Auction) SetAuctionCount(state *state.State, count uint64) {
	state.EncodeStorage(meter.AuctionModuleAddr, auctionCountKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(count)
	})
}

// GetAuctionRecord loads a record; a missing id decodes to the zero record.
func (a *Auction) GetAuctionRecord(state *state.State, id uint64) (record *AuctionRecord) {
	record = newZeroRecord()
	state.DecodeStorage(meter.AuctionModuleAddr, auctionRecordKey(id), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		var r AuctionRecord
		if err := rlp.DecodeBytes(raw, &r); err != nil {
			return err
		}
		record = &r
		return nil
	})
	return
}

func (a *Auction) SetAuctionRecord(state *state.State, id uint64, record *AuctionRecord) {
	state.EncodeStorage(meter.AuctionModuleAddr, auctionRecordKey(id), func() ([]byte, error) {
		return rlp.EncodeToBytes(record)
	})
}

// ResetAuctionRecord zeroes a settled record. The id stays burned because
// the count is tracked independently.
func (a *Auction) ResetAuctionRecord(state *state.State, id uint64) {
	state.SetStorage(meter.AuctionModuleAddr, auctionRecordKey(id), nil)
}
