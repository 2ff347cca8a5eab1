// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"fmt"

	"github.com/meterio/nft-auction/meter"
)

// BlockContext block context.
type BlockContext struct {
	Number uint32
	Time   uint64
}

// TransactionContext transaction context. Origin is the externally supplied,
// untrusted caller identity every module transition is attributed to.
type TransactionContext struct {
	ID     meter.Bytes32
	Origin meter.Address
	Nonce  uint64
}

func (ctx *TransactionContext) String() string {
	return fmt.Sprintf("txCtx{ID:%s Origin:%s Nonce:%d}", ctx.ID.AbbrevString(), ctx.Origin.String(), ctx.Nonce)
}
