// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/meter"
)

// AuctionBody is the wire body of one auction operation. Bidder carries the
// acting identity for every opcode: the seller on create, the bidder on bid,
// the claimer on claim. It must match the transaction origin.
type AuctionBody struct {
	Opcode      uint32
	Version     uint32
	AuctionID   uint64
	Bidder      meter.Address
	Amount      *big.Int
	StartingBid *big.Int
	EndTime     uint64
	TokenID     *big.Int
	TokenAddr   meter.Address
	Timestamp   uint64
	Nonce       uint64
}

func (ab *AuctionBody) ToString() string {
	return fmt.Sprintf("AuctionBody: Opcode=%v, Version=%v, AuctionID=%v, Bidder=%v, Amount=%v, StartingBid=%v, EndTime=%v, TokenID=%v, TokenAddr=%v, Timestamp=%v, Nonce=%v",
		ab.Opcode, ab.Version, ab.AuctionID, ab.Bidder.String(), ab.Amount, ab.StartingBid, ab.EndTime, ab.TokenID, ab.TokenAddr.String(), ab.Timestamp, ab.Nonce)
}

func (ab *AuctionBody) GetOpName(op uint32) string {
	return GetOpName(op)
}

// normalize fills nil big ints so RLP encoding and arithmetic stay total.
func (ab *AuctionBody) normalize() {
	if ab.Amount == nil {
		ab.Amount = new(big.Int)
	}
	if ab.StartingBid == nil {
		ab.StartingBid = new(big.Int)
	}
	if ab.TokenID == nil {
		ab.TokenID = new(big.Int)
	}
}

func AuctionEncodeBytes(ab *AuctionBody) ([]byte, error) {
	ab.normalize()
	auctionBytes, err := rlp.EncodeToBytes(ab)
	if err != nil {
		return nil, errors.WithMessage(err, "encode auction body")
	}
	return auctionBytes, nil
}

func AuctionDecodeFromBytes(bytes []byte) (*AuctionBody, error) {
	ab := AuctionBody{}
	if err := rlp.DecodeBytes(bytes, &ab); err != nil {
		return nil, errors.WithMessage(err, "decode auction body")
	}
	ab.normalize()
	return &ab, nil
}
