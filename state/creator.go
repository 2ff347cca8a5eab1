// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import "github.com/meterio/nft-auction/kv"

// Creator hands out fresh states over one backing store.
type Creator struct {
	kv kv.Store
}

// NewCreator creates a state creator.
func NewCreator(store kv.Store) *Creator {
	return &Creator{kv: store}
}

// NewState creates a fresh state with no staged writes.
func (c *Creator) NewState() *State {
	return New(c.kv)
}
