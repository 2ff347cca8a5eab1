// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/state"
)

var (
	auctionCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_created_total",
		Help: "Counter of created auctions",
	})
	auctionBidCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_total",
		Help: "Counter of accepted bids",
	})
	auctionClaimCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_claims_total",
		Help: "Counter of settled auctions",
	})
	auctionEscrowGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "auction_escrow_balance",
		Help: "Current balance held on the auction module account",
	})
)

func init() {
	prometheus.MustRegister(auctionCreatedCounter)
	prometheus.MustRegister(auctionBidCounter)
	prometheus.MustRegister(auctionClaimCounter)
	prometheus.MustRegister(auctionEscrowGauge)
}

func updateEscrowGauge(st *state.State) {
	bal, _ := new(big.Float).SetInt(st.GetEnergy(meter.AuctionModuleAddr)).Float64()
	auctionEscrowGauge.Set(bal)
}
