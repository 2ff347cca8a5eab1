// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nft

import (
	"math/big"

	"github.com/meterio/nft-auction/meter"
)

// Standard identifies one of the two supported non-fungible asset variants.
// The set is closed; the auction engine resolves the standard once at
// creation time and stores it on the record.
type Standard uint8

const (
	StandardUnknown Standard = iota
	// StandardSingleOwner assets have exactly one owner per token id.
	StandardSingleOwner
	// StandardBalanceCounted assets track a quantity per (holder, token id).
	StandardBalanceCounted
)

func (s Standard) String() string {
	switch s {
	case StandardSingleOwner:
		return "single-owner"
	case StandardBalanceCounted:
		return "balance-counted"
	default:
		return "unknown"
	}
}

// Registry is the asset registry gateway the auction engine calls through.
// Contract is the asset contract's account; the registry never hands out
// custody of anything else.
type Registry interface {
	// SupportsStandard reports whether contract advertises std.
	SupportsStandard(contract meter.Address, std Standard) bool
	// OwnerOf returns the owner of a single-owner token, or the null
	// sentinel when the token does not exist.
	OwnerOf(contract meter.Address, tokenID *big.Int) meter.Address
	// BalanceOf returns the quantity of tokenID held by holder on a
	// balance-counted contract.
	BalanceOf(contract meter.Address, holder meter.Address, tokenID *big.Int) *big.Int
	// Transfer moves one unit of tokenID from one holder to another,
	// dispatching on std.
	Transfer(std Standard, contract meter.Address, from, to meter.Address, tokenID *big.Int) error
}
