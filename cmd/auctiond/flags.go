// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for auction databases",
	}
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8669",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	apiTimeoutFlag = cli.IntFlag{
		Name:  "api-timeout",
		Value: 10000,
		Usage: "API request timeout value in milliseconds",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 3,
		Usage: "log verbosity (0-4: error, warn, info, debug)",
	}
	callerFlag = cli.StringFlag{
		Name:  "caller",
		Usage: "address acting as the transaction origin",
	}
	auctionIDFlag = cli.Uint64Flag{
		Name:  "auction",
		Usage: "auction identifier",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "bid amount",
	}
	startingBidFlag = cli.StringFlag{
		Name:  "starting-bid",
		Usage: "minimum acceptable first bid",
	}
	endTimeFlag = cli.Uint64Flag{
		Name:  "end-time",
		Usage: "auction deadline as a unix timestamp",
	}
	tokenAddrFlag = cli.StringFlag{
		Name:  "token-addr",
		Usage: "asset contract address",
	}
	tokenIDFlag = cli.StringFlag{
		Name:  "token-id",
		Usage: "asset token identifier",
	}
	standardFlag = cli.UintFlag{
		Name:  "standard",
		Value: 1,
		Usage: "asset standard (1: single-owner, 2: balance-counted)",
	}
)
