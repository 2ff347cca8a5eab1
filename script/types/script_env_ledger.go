// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/meter"
)

// ==================== account operation ===========================
// All fund movement of the auction engine goes through these two helpers.
// Both leave a transfer log on the env.

// TransferToEscrow moves amount from addr into the auction module's custody.
func (env *ScriptEnv) TransferToEscrow(addr meter.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	state := env.GetState()

	balance := state.GetEnergy(addr)
	if balance.Cmp(amount) < 0 {
		return errors.Errorf("not enough balance on %v, balance:%v amount:%v", addr, balance, amount)
	}

	state.SubEnergy(addr, amount)
	state.AddEnergy(meter.AuctionModuleAddr, amount)
	env.AddTransfer(addr, meter.AuctionModuleAddr, amount, meter.MTR)
	return nil
}

// PayFromEscrow moves amount out of the auction module's custody to addr.
func (env *ScriptEnv) PayFromEscrow(addr meter.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	state := env.GetState()

	balance := state.GetEnergy(meter.AuctionModuleAddr)
	if balance.Cmp(amount) < 0 {
		return errors.Errorf("not enough balance in escrow, balance:%v amount:%v", balance, amount)
	}

	state.SubEnergy(meter.AuctionModuleAddr, amount)
	state.AddEnergy(addr, amount)
	env.AddTransfer(meter.AuctionModuleAddr, addr, amount, meter.MTR)
	return nil
}
