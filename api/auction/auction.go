// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/api/utils"
	"github.com/meterio/nft-auction/script/auction"
	"github.com/meterio/nft-auction/state"
)

type Auction struct {
	stateCreator *state.Creator
}

func New(stateCreator *state.Creator) *Auction {
	return &Auction{stateCreator: stateCreator}
}

func (at *Auction) module() (*auction.Auction, *state.State, error) {
	a := auction.GetAuctionGlobInst()
	if a == nil {
		return nil, nil, errors.New("auction module is not started")
	}
	return a, at.stateCreator.NewState(), nil
}

func (at *Auction) handleGetAuctionCount(w http.ResponseWriter, req *http.Request) error {
	a, st, err := at.module()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, utils.M{"count": a.GetAuctionCount(st)})
}

func (at *Auction) handleGetAuctionRecords(w http.ResponseWriter, req *http.Request) error {
	a, st, err := at.module()
	if err != nil {
		return err
	}
	records := make([]*auction.AuctionRecord, 0)
	count := a.GetAuctionCount(st)
	for id := uint64(1); id <= count; id++ {
		r := a.GetAuctionRecord(st, id)
		if r.ID == 0 {
			// settled record, zeroed in place
			continue
		}
		records = append(records, r)
	}
	return utils.WriteJSON(w, convertRecordList(records))
}

func (at *Auction) handleGetRecordByID(w http.ResponseWriter, req *http.Request) error {
	a, st, err := at.module()
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(mux.Vars(req)["id"], 10, 64)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	record := a.GetAuctionRecord(st, id)
	return utils.WriteJSON(w, convertRecord(record))
}

func (at *Auction) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/count").Methods("Get").HandlerFunc(utils.WrapHandlerFunc(at.handleGetAuctionCount))
	sub.Path("/records").Methods("Get").HandlerFunc(utils.WrapHandlerFunc(at.handleGetAuctionRecords))
	sub.Path("/records/{id}").Methods("Get").HandlerFunc(utils.WrapHandlerFunc(at.handleGetRecordByID))
}
