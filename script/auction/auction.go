// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
	setypes "github.com/meterio/nft-auction/script/types"
	"github.com/meterio/nft-auction/state"
)

var AuctionGlobInst *Auction

// Auction is the NFT auction engine module. It owns the auction sub-schema
// of the shared state and reaches assets only through the registry gateway.
type Auction struct {
	logger      *slog.Logger
	newRegistry func(*state.State) nft.Registry
}

func GetAuctionGlobInst() *Auction {
	return AuctionGlobInst
}

func SetAuctionGlobInst(inst *Auction) {
	AuctionGlobInst = inst
}

func New() *Auction {
	return NewWithRegistry(func(st *state.State) nft.Registry {
		return nft.New(st)
	})
}

// NewWithRegistry creates the module with a custom asset registry gateway.
func NewWithRegistry(newRegistry func(*state.State) nft.Registry) *Auction {
	auction := &Auction{
		logger:      slog.Default().With("pkg", "auction"),
		newRegistry: newRegistry,
	}
	SetAuctionGlobInst(auction)
	return auction
}

func (a *Auction) Start() error {
	a.logger.Info("auction module started")
	return nil
}

// Handle is the module handler registered with the script engine. It decodes
// the body, pins the acting identity to the transaction origin, and routes
// to the opcode handler. The engine reverts all staged writes on error.
func (a *Auction) Handle(env *setypes.ScriptEnv, payload []byte, to *meter.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	ab, err := AuctionDecodeFromBytes(payload)
	if err != nil {
		a.logger.Error("decode auction body failed", "err", err)
		return nil, gas, err
	}

	if env.GetTxCtx().Origin != ab.Bidder {
		return nil, gas, errors.New("bidder address is not the same from transaction")
	}

	a.logger.Debug("received auction operation", "body", ab.ToString())
	switch ab.Opcode {
	case OP_CREATE:
		leftOverGas, err = a.CreateAuction(env, ab, gas)
	case OP_BID:
		leftOverGas, err = a.HandleBid(env, ab, gas)
	case OP_CLAIM:
		leftOverGas, err = a.ClaimReward(env, ab, gas)
	default:
		a.logger.Error("unknown opcode", "opcode", ab.Opcode)
		return nil, gas, errors.New("unknown auction opcode")
	}
	if err != nil {
		return nil, leftOverGas, err
	}
	return env.GetOutput(), leftOverGas, nil
}

func chargeClauseGas(gas uint64) uint64 {
	if gas < meter.ClauseGas {
		return 0
	}
	return gas - meter.ClauseGas
}
