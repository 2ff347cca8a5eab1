// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"math/big"
	"path/filepath"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/meterio/nft-auction/kv"
	"github.com/meterio/nft-auction/meter"
)

func openMainDB(ctx *cli.Context) *kv.LevelDB {
	dbFilePath := ctx.String(dataDirFlag.Name)
	dir := filepath.Join(dbFilePath, "auction.db")
	db, err := kv.NewLevelDB(dir, 8192)
	if err != nil {
		fatal(fmt.Sprintf("open auction database [%v]: %v", dir, err))
	}
	return db
}

func mustParseAddress(ctx *cli.Context, flag cli.StringFlag) meter.Address {
	raw := ctx.String(flag.Name)
	if raw == "" {
		fatal(fmt.Sprintf("missing required flag --%v", flag.Name))
	}
	addr, err := meter.ParseAddress(raw)
	if err != nil {
		fatal(fmt.Sprintf("parse --%v [%v]: %v", flag.Name, raw, err))
	}
	return addr
}

func mustParseBig(ctx *cli.Context, flag cli.StringFlag) *big.Int {
	raw := ctx.String(flag.Name)
	if raw == "" {
		fatal(fmt.Sprintf("missing required flag --%v", flag.Name))
	}
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		fatal(fmt.Sprintf("parse --%v [%v]: not a decimal number", flag.Name, raw))
	}
	return v
}
