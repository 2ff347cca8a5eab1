// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import "github.com/meterio/nft-auction/meter"

// Event log emitted by a module transition.
type Event struct {
	Address meter.Address
	Topics  []meter.Bytes32
	Data    []byte
}

// Events slice of event logs.
type Events []*Event
