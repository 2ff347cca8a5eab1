// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"

	"github.com/meterio/nft-auction/kv"
	"github.com/meterio/nft-auction/meter"
)

var (
	addrA = meter.BytesToAddress([]byte("addr-a"))
	addrB = meter.BytesToAddress([]byte("addr-b"))
)

func TestEnergy(t *testing.T) {
	st := New(kv.NewMemDB())

	assert.Equal(t, 0, st.GetEnergy(addrA).Sign())

	st.AddEnergy(addrA, big.NewInt(1000))
	assert.Equal(t, big.NewInt(1000), st.GetEnergy(addrA))

	st.SubEnergy(addrA, big.NewInt(400))
	assert.Equal(t, big.NewInt(600), st.GetEnergy(addrA))
	assert.Nil(t, st.Err())

	// underflow poisons the state
	st.SubEnergy(addrA, big.NewInt(601))
	assert.NotNil(t, st.Err())
}

func TestCheckpointRevert(t *testing.T) {
	st := New(kv.NewMemDB())
	st.AddEnergy(addrA, big.NewInt(100))

	cp := st.NewCheckpoint()
	st.SubEnergy(addrA, big.NewInt(40))
	st.AddEnergy(addrB, big.NewInt(40))
	key := meter.Blake2b([]byte("some-key"))
	st.SetStorage(addrA, key, []byte("payload"))
	assert.Equal(t, big.NewInt(60), st.GetEnergy(addrA))

	st.RevertTo(cp)
	assert.Equal(t, big.NewInt(100), st.GetEnergy(addrA))
	assert.Equal(t, 0, st.GetEnergy(addrB).Sign())
	assert.Empty(t, st.GetStorage(addrA, key))
	assert.Nil(t, st.Err())
}

func TestNestedCheckpoints(t *testing.T) {
	st := New(kv.NewMemDB())
	st.AddEnergy(addrA, big.NewInt(1))

	outer := st.NewCheckpoint()
	st.AddEnergy(addrA, big.NewInt(1))
	inner := st.NewCheckpoint()
	st.AddEnergy(addrA, big.NewInt(1))

	st.RevertTo(inner)
	assert.Equal(t, big.NewInt(2), st.GetEnergy(addrA))
	st.RevertTo(outer)
	assert.Equal(t, big.NewInt(1), st.GetEnergy(addrA))
}

func TestStorageCodec(t *testing.T) {
	st := New(kv.NewMemDB())
	key := meter.Blake2b([]byte("counter-key"))

	// missing key decodes as empty raw
	st.DecodeStorage(addrA, key, func(raw []byte) error {
		assert.Empty(t, raw)
		return nil
	})

	st.EncodeStorage(addrA, key, func() ([]byte, error) {
		return rlp.EncodeToBytes(uint64(7))
	})
	var count uint64
	st.DecodeStorage(addrA, key, func(raw []byte) error {
		return rlp.DecodeBytes(raw, &count)
	})
	assert.Equal(t, uint64(7), count)
	assert.Nil(t, st.Err())
}

func TestStageCommit(t *testing.T) {
	db := kv.NewMemDB()
	st := New(db)
	st.AddEnergy(addrA, big.NewInt(123))
	key := meter.Blake2b([]byte("record"))
	st.SetStorage(addrB, key, []byte("record-bytes"))

	assert.Nil(t, st.Stage().Commit())

	// a fresh state over the same store sees the committed values
	fresh := NewCreator(db).NewState()
	assert.Equal(t, big.NewInt(123), fresh.GetEnergy(addrA))
	assert.Equal(t, []byte("record-bytes"), fresh.GetStorage(addrB, key))
}

func TestStageRefusesPoisonedState(t *testing.T) {
	st := New(kv.NewMemDB())
	st.SubEnergy(addrA, big.NewInt(1)) // underflow
	assert.NotNil(t, st.Err())
	assert.NotNil(t, st.Stage().Commit())
}
