// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package meter

// Well-known module accounts. Funds escrowed by the auction engine sit on
// AuctionModuleAddr; the fee split pays out to the sink and treasury
// accounts below. All of them are fixed at deployment.
var (
	// 0x6374696f6e2d6d6f64756c652d6163636f756e74
	AuctionModuleAddr = BytesToAddress([]byte("auction-module-account"))
	AuctionBurnAddr   = BytesToAddress([]byte("auction-burn-sink"))
	AuctionDAOAddr    = BytesToAddress([]byte("auction-dao-treasury"))
	AuctionTeamAddr   = BytesToAddress([]byte("auction-team-treasury"))
)

const (
	// MTR is the token tag carried on transfer logs.
	MTR = byte(0)

	// ClauseGas is the flat gas charge per handled clause.
	ClauseGas = uint64(21000)
)
