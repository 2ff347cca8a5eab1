// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nft

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/state"
)

var standardKey = meter.Blake2b([]byte("nft-standard-key"))

func ownerKey(tokenID *big.Int) meter.Bytes32 {
	return meter.Blake2b([]byte("nft-owner-key"), tokenID.Bytes())
}

func balanceKey(holder meter.Address, tokenID *big.Int) meter.Bytes32 {
	return meter.Blake2b([]byte("nft-balance-key"), holder.Bytes(), tokenID.Bytes())
}

// StateRegistry keeps each asset contract's ownership tables in storage
// under the contract's own account, the advertised standard included.
type StateRegistry struct {
	state *state.State
}

// New creates a registry over the given state.
func New(st *state.State) *StateRegistry {
	return &StateRegistry{state: st}
}

// Deploy registers contract as advertising std. Deploying over an already
// registered contract is rejected so ownership tables cannot be reinterpreted.
func (r *StateRegistry) Deploy(contract meter.Address, std Standard) error {
	if std != StandardSingleOwner && std != StandardBalanceCounted {
		return errors.Errorf("nft: cannot deploy %v contract", std)
	}
	if r.advertised(contract) != StandardUnknown {
		return errors.Errorf("nft: contract %v already deployed", contract)
	}
	r.state.EncodeStorage(contract, standardKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(uint8(std))
	})
	return nil
}

func (r *StateRegistry) advertised(contract meter.Address) (std Standard) {
	r.state.DecodeStorage(contract, standardKey, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		var v uint8
		if err := rlp.DecodeBytes(raw, &v); err != nil {
			return err
		}
		std = Standard(v)
		return nil
	})
	return
}

func (r *StateRegistry) SupportsStandard(contract meter.Address, std Standard) bool {
	return std != StandardUnknown && r.advertised(contract) == std
}

func (r *StateRegistry) OwnerOf(contract meter.Address, tokenID *big.Int) (owner meter.Address) {
	r.state.DecodeStorage(contract, ownerKey(tokenID), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &owner)
	})
	return
}

func (r *StateRegistry) setOwner(contract meter.Address, tokenID *big.Int, owner meter.Address) {
	if owner.IsZero() {
		r.state.SetStorage(contract, ownerKey(tokenID), nil)
		return
	}
	r.state.EncodeStorage(contract, ownerKey(tokenID), func() ([]byte, error) {
		return rlp.EncodeToBytes(owner)
	})
}

func (r *StateRegistry) BalanceOf(contract meter.Address, holder meter.Address, tokenID *big.Int) (bal *big.Int) {
	bal = new(big.Int)
	r.state.DecodeStorage(contract, balanceKey(holder, tokenID), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, bal)
	})
	return
}

func (r *StateRegistry) setBalance(contract meter.Address, holder meter.Address, tokenID, bal *big.Int) {
	if bal.Sign() == 0 {
		r.state.SetStorage(contract, balanceKey(holder, tokenID), nil)
		return
	}
	r.state.EncodeStorage(contract, balanceKey(holder, tokenID), func() ([]byte, error) {
		return rlp.EncodeToBytes(bal)
	})
}

// Mint creates a token. For single-owner contracts the token id must be
// unminted; for balance-counted contracts the holder's quantity grows by
// amount. Tooling and tests only, the auction engine never mints.
func (r *StateRegistry) Mint(contract meter.Address, to meter.Address, tokenID *big.Int, amount *big.Int) error {
	switch r.advertised(contract) {
	case StandardSingleOwner:
		if !r.OwnerOf(contract, tokenID).IsZero() {
			return errors.Errorf("nft: token %v already minted on %v", tokenID, contract)
		}
		r.setOwner(contract, tokenID, to)
		return nil
	case StandardBalanceCounted:
		bal := r.BalanceOf(contract, to, tokenID)
		r.setBalance(contract, to, tokenID, new(big.Int).Add(bal, amount))
		return nil
	default:
		return errors.Errorf("nft: contract %v not deployed", contract)
	}
}

func (r *StateRegistry) Transfer(std Standard, contract meter.Address, from, to meter.Address, tokenID *big.Int) error {
	if !r.SupportsStandard(contract, std) {
		return errors.Errorf("nft: contract %v does not advertise %v", contract, std)
	}
	switch std {
	case StandardSingleOwner:
		if owner := r.OwnerOf(contract, tokenID); owner != from {
			return errors.Errorf("nft: token %v on %v not owned by %v", tokenID, contract, from)
		}
		r.setOwner(contract, tokenID, to)
		return nil
	case StandardBalanceCounted:
		bal := r.BalanceOf(contract, from, tokenID)
		if bal.Sign() <= 0 {
			return errors.Errorf("nft: %v holds no token %v on %v", from, tokenID, contract)
		}
		r.setBalance(contract, from, tokenID, new(big.Int).Sub(bal, big.NewInt(1)))
		r.setBalance(contract, to, tokenID, new(big.Int).Add(r.BalanceOf(contract, to, tokenID), big.NewInt(1)))
		return nil
	default:
		return errors.Errorf("nft: unsupported standard %v", std)
	}
}
