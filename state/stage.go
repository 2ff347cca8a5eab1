// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/kv"
)

// Stage abstracts the staged writes of a state, ready to be committed to
// the backing store as one batch.
type Stage struct {
	err   error
	batch kv.Batch
}

// Stage collects the current staged writes into a committable batch.
func (s *State) Stage() *Stage {
	if s.err != nil {
		return &Stage{err: s.err}
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	batch := s.kv.NewBatch()
	for _, k := range keys {
		val := s.values[k]
		if val == nil {
			if err := batch.Delete([]byte(k)); err != nil {
				return &Stage{err: err}
			}
			continue
		}
		if err := batch.Put([]byte(k), val); err != nil {
			return &Stage{err: err}
		}
	}
	return &Stage{batch: batch}
}

// Commit lands the staged writes durably.
func (st *Stage) Commit() error {
	if st.err != nil {
		return errors.WithMessage(st.err, "stage commit")
	}
	if st.batch.Len() == 0 {
		return nil
	}
	return st.batch.Write()
}
