// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"net"
	"net/http"
	"os"
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/meterio/nft-auction/api"
	"github.com/meterio/nft-auction/meter"
	"github.com/meterio/nft-auction/nft"
	"github.com/meterio/nft-auction/script"
	"github.com/meterio/nft-auction/script/auction"
	setypes "github.com/meterio/nft-auction/script/types"
	"github.com/meterio/nft-auction/state"
	"github.com/meterio/nft-auction/xenv"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Auctiond",
		Usage:     "NFT auction engine node",
		Copyright: "2023 Meter Foundation <https://meter.io/>",
		Flags: []cli.Flag{
			dataDirFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiTimeoutFlag,
			verbosityFlag,
		},
		Action: serveAction,
		Commands: []cli.Command{
			{
				Name:  "create",
				Usage: "list an owned asset for auction",
				Flags: []cli.Flag{
					dataDirFlag,
					verbosityFlag,
					callerFlag,
					startingBidFlag,
					endTimeFlag,
					tokenAddrFlag,
					tokenIDFlag,
				},
				Action: createAction,
			},
			{
				Name:  "bid",
				Usage: "place a bid on an open auction",
				Flags: []cli.Flag{
					dataDirFlag,
					verbosityFlag,
					callerFlag,
					auctionIDFlag,
					amountFlag,
				},
				Action: bidAction,
			},
			{
				Name:  "claim",
				Usage: "settle an ended auction as its winner",
				Flags: []cli.Flag{
					dataDirFlag,
					verbosityFlag,
					callerFlag,
					auctionIDFlag,
				},
				Action: claimAction,
			},
			{
				Name:  "mint",
				Usage: "deploy a token contract if needed and mint a token (dev tooling)",
				Flags: []cli.Flag{
					dataDirFlag,
					verbosityFlag,
					callerFlag,
					tokenAddrFlag,
					tokenIDFlag,
					standardFlag,
				},
				Action: mintAction,
			},
			{
				Name:  "fund",
				Usage: "credit an account balance (dev tooling)",
				Flags: []cli.Flag{
					dataDirFlag,
					verbosityFlag,
					callerFlag,
					amountFlag,
				},
				Action: fundAction,
			},
			{
				Name:  "show",
				Usage: "print an auction record",
				Flags: []cli.Flag{
					dataDirFlag,
					verbosityFlag,
					auctionIDFlag,
				},
				Action: showAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// runAuctionOp wraps one auction body into a script envelope, drives it
// through the engine against the durable store and commits on success.
func runAuctionOp(ctx *cli.Context, body *auction.AuctionBody) error {
	initLogger(ctx)
	db := openMainDB(ctx)
	defer db.Close()

	stateCreator := state.NewCreator(db)
	engine := script.NewScriptEngine(stateCreator)

	st := stateCreator.NewState()
	to := meter.AuctionModuleAddr
	env := setypes.NewScriptEnv(
		st,
		&xenv.BlockContext{Time: uint64(time.Now().Unix())},
		&xenv.TransactionContext{Origin: body.Bidder, Nonce: body.Nonce},
		&to,
	)

	payload, err := auction.AuctionEncodeBytes(body)
	if err != nil {
		return err
	}
	data, err := script.EncodeScriptData(script.AUCTION_MODULE_ID, payload)
	if err != nil {
		return err
	}

	out, _, err := engine.HandleScriptData(env, data, &to, meter.ClauseGas*2)
	if err != nil {
		return err
	}
	if err := st.Stage().Commit(); err != nil {
		return err
	}
	if len(out.GetData()) > 0 {
		fmt.Println("output:", hex.EncodeToString(out.GetData()))
	}
	for _, t := range out.GetTransfers() {
		fmt.Printf("transfer: %v -> %v amount=%v\n", t.Sender, t.Recipient, t.Amount)
	}
	return nil
}

func createAction(ctx *cli.Context) error {
	body := &auction.AuctionBody{
		Opcode:      auction.OP_CREATE,
		Bidder:      mustParseAddress(ctx, callerFlag),
		StartingBid: mustParseBig(ctx, startingBidFlag),
		EndTime:     ctx.Uint64(endTimeFlag.Name),
		TokenID:     mustParseBig(ctx, tokenIDFlag),
		TokenAddr:   mustParseAddress(ctx, tokenAddrFlag),
		Timestamp:   uint64(time.Now().Unix()),
	}
	return runAuctionOp(ctx, body)
}

func bidAction(ctx *cli.Context) error {
	body := &auction.AuctionBody{
		Opcode:    auction.OP_BID,
		AuctionID: ctx.Uint64(auctionIDFlag.Name),
		Bidder:    mustParseAddress(ctx, callerFlag),
		Amount:    mustParseBig(ctx, amountFlag),
		Timestamp: uint64(time.Now().Unix()),
	}
	return runAuctionOp(ctx, body)
}

func claimAction(ctx *cli.Context) error {
	body := &auction.AuctionBody{
		Opcode:    auction.OP_CLAIM,
		AuctionID: ctx.Uint64(auctionIDFlag.Name),
		Bidder:    mustParseAddress(ctx, callerFlag),
		Timestamp: uint64(time.Now().Unix()),
	}
	return runAuctionOp(ctx, body)
}

func mintAction(ctx *cli.Context) error {
	initLogger(ctx)
	db := openMainDB(ctx)
	defer db.Close()

	st := state.NewCreator(db).NewState()
	reg := nft.New(st)

	token := mustParseAddress(ctx, tokenAddrFlag)
	owner := mustParseAddress(ctx, callerFlag)
	tokenID := mustParseBig(ctx, tokenIDFlag)
	std := nft.Standard(ctx.Uint(standardFlag.Name))

	if !reg.SupportsStandard(token, std) {
		if err := reg.Deploy(token, std); err != nil {
			return err
		}
	}
	if err := reg.Mint(token, owner, tokenID, big.NewInt(1)); err != nil {
		return err
	}
	if err := st.Stage().Commit(); err != nil {
		return err
	}
	slog.Info("minted", "token", token, "owner", owner, "tokenID", tokenID)
	return nil
}

func fundAction(ctx *cli.Context) error {
	initLogger(ctx)
	db := openMainDB(ctx)
	defer db.Close()

	st := state.NewCreator(db).NewState()
	addr := mustParseAddress(ctx, callerFlag)
	amount := mustParseBig(ctx, amountFlag)

	st.AddEnergy(addr, amount)
	if err := st.Stage().Commit(); err != nil {
		return err
	}
	slog.Info("funded", "addr", addr, "amount", amount, "balance", st.GetEnergy(addr))
	return nil
}

func showAction(ctx *cli.Context) error {
	initLogger(ctx)
	db := openMainDB(ctx)
	defer db.Close()

	stateCreator := state.NewCreator(db)
	script.NewScriptEngine(stateCreator)

	st := stateCreator.NewState()
	a := auction.GetAuctionGlobInst()
	id := ctx.Uint64(auctionIDFlag.Name)
	if id == 0 {
		fmt.Println("auction count:", a.GetAuctionCount(st))
		return nil
	}
	fmt.Println(a.GetAuctionRecord(st, id).ToString())
	return nil
}

func serveAction(ctx *cli.Context) error {
	initLogger(ctx)
	db := openMainDB(ctx)
	defer db.Close()

	stateCreator := state.NewCreator(db)
	script.NewScriptEngine(stateCreator)

	handler := api.New(stateCreator, ctx.String(apiCorsFlag.Name))
	timeout := time.Duration(ctx.Int(apiTimeoutFlag.Name)) * time.Millisecond

	listener, err := net.Listen("tcp", ctx.String(apiAddrFlag.Name))
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler: handleAPITimeout(requestBodyLimit(handler), timeout),
	}

	exitCtx := handleExitSignal()
	go func() {
		<-exitCtx.Done()
		srv.Close()
	}()

	slog.Info("API service started", "addr", listener.Addr(), "version", fullVersion())
	if err := srv.Serve(listener); err != http.ErrServerClosed {
		return err
	}
	return nil
}
