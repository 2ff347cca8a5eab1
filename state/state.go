// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/meterio/nft-auction/kv"
	"github.com/meterio/nft-auction/meter"
)

// State is the shared storage region all modules run on. It journals every
// write so a caller can take a checkpoint before a transition and revert to
// it when the transition fails, which is what makes module calls atomic.
//
// Two sub-schemas live here: per-account energy balances (the fungible
// ledger) and per-account keyed storage. Each module must only ever touch
// keys under its own accounts.
type State struct {
	kv       kv.Store
	values   map[string][]byte // staged writes, nil value marks a deletion
	journal  []journalEntry
	err      error
	setError func(err error)
}

type journalEntry struct {
	key    string
	prev   []byte
	staged bool // whether values held an entry for key before this write
}

// account is the persistent shape of a ledger account.
type account struct {
	Energy *big.Int
}

// New creates a state over the given store.
func New(store kv.Store) *State {
	state := &State{
		kv:     store,
		values: make(map[string][]byte),
	}
	state.setError = func(err error) {
		if state.err == nil {
			state.err = err
		}
	}
	return state
}

// Err returns the first error encountered. A state with a pending error
// must not be staged.
func (s *State) Err() error {
	return s.err
}

func accountKey(addr meter.Address) meter.Bytes32 {
	return meter.Blake2b([]byte("account"), addr.Bytes())
}

func storageKey(addr meter.Address, key meter.Bytes32) meter.Bytes32 {
	return meter.Blake2b([]byte("storage"), addr.Bytes(), key.Bytes())
}

// getRaw reads through the staged writes into the backing store.
func (s *State) getRaw(key meter.Bytes32) []byte {
	if val, ok := s.values[string(key.Bytes())]; ok {
		return val
	}
	val, err := s.kv.Get(key.Bytes())
	if err != nil {
		if !kv.IsNotFound(err) {
			s.setError(errors.WithMessage(err, "state read"))
		}
		return nil
	}
	return val
}

// setRaw stages a write, journaling the previous staged value.
// An empty or nil value deletes the key.
func (s *State) setRaw(key meter.Bytes32, val []byte) {
	k := string(key.Bytes())
	prev, staged := s.values[k]
	s.journal = append(s.journal, journalEntry{key: k, prev: prev, staged: staged})
	if len(val) == 0 {
		val = nil
	}
	s.values[k] = val
}

// NewCheckpoint marks the current write position. Passing the returned value
// to RevertTo undoes every write staged after this call.
func (s *State) NewCheckpoint() int {
	return len(s.journal)
}

// RevertTo undoes all writes staged after the given checkpoint.
func (s *State) RevertTo(checkpoint int) {
	if checkpoint < 0 || checkpoint > len(s.journal) {
		s.setError(errors.Errorf("revert to invalid checkpoint %d", checkpoint))
		return
	}
	for i := len(s.journal) - 1; i >= checkpoint; i-- {
		e := s.journal[i]
		if e.staged {
			s.values[e.key] = e.prev
		} else {
			delete(s.values, e.key)
		}
	}
	s.journal = s.journal[:checkpoint]
}

func (s *State) getAccount(addr meter.Address) *account {
	raw := s.getRaw(accountKey(addr))
	if len(raw) == 0 {
		return &account{Energy: new(big.Int)}
	}
	var acct account
	if err := rlp.DecodeBytes(raw, &acct); err != nil {
		s.setError(errors.WithMessage(err, "decode account"))
		return &account{Energy: new(big.Int)}
	}
	return &acct
}

func (s *State) setAccount(addr meter.Address, acct *account) {
	if acct.Energy.Sign() == 0 {
		s.setRaw(accountKey(addr), nil)
		return
	}
	raw, err := rlp.EncodeToBytes(acct)
	if err != nil {
		s.setError(errors.WithMessage(err, "encode account"))
		return
	}
	s.setRaw(accountKey(addr), raw)
}

// GetEnergy returns the fungible balance of addr.
func (s *State) GetEnergy(addr meter.Address) *big.Int {
	return s.getAccount(addr).Energy
}

// AddEnergy credits addr.
func (s *State) AddEnergy(addr meter.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	acct := s.getAccount(addr)
	acct.Energy = new(big.Int).Add(acct.Energy, amount)
	s.setAccount(addr, acct)
}

// SubEnergy debits addr. Underflow is a hard state error; callers check
// balances before moving funds.
func (s *State) SubEnergy(addr meter.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	acct := s.getAccount(addr)
	if acct.Energy.Cmp(amount) < 0 {
		s.setError(errors.Errorf("energy underflow on %v", addr))
		return
	}
	acct.Energy = new(big.Int).Sub(acct.Energy, amount)
	s.setAccount(addr, acct)
}

// GetStorage returns the raw storage value for (addr, key).
func (s *State) GetStorage(addr meter.Address, key meter.Bytes32) []byte {
	return s.getRaw(storageKey(addr, key))
}

// SetStorage stages a raw storage value for (addr, key). Empty removes it.
func (s *State) SetStorage(addr meter.Address, key meter.Bytes32, raw []byte) {
	s.setRaw(storageKey(addr, key), raw)
}

// DecodeStorage reads the raw value and hands it to dec. Missing keys are
// handed over as empty raw, which decoders treat as the zero value.
func (s *State) DecodeStorage(addr meter.Address, key meter.Bytes32, dec func(raw []byte) error) {
	if err := dec(s.GetStorage(addr, key)); err != nil {
		s.setError(errors.WithMessage(err, "decode storage"))
	}
}

// EncodeStorage stores the value produced by enc.
func (s *State) EncodeStorage(addr meter.Address, key meter.Bytes32, enc func() ([]byte, error)) {
	raw, err := enc()
	if err != nil {
		s.setError(errors.WithMessage(err, "encode storage"))
		return
	}
	s.SetStorage(addr, key, raw)
}
