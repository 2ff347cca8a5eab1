// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package meter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x8a88c59bf15451f9deb1d62f7734fece2002668e")
	assert.Nil(t, err)
	assert.Equal(t, "0x8a88c59bf15451f9deb1d62f7734fece2002668e", addr.String())
	assert.False(t, addr.IsZero())

	_, err = ParseAddress("8a88c59bf15451f9deb1d62f7734fece2002668e")
	assert.NotNil(t, err)

	_, err = ParseAddress("0x8a88")
	assert.NotNil(t, err)
}

func TestBytesToAddress(t *testing.T) {
	// left-truncated to the low 20 bytes
	addr := BytesToAddress([]byte("auction-module-account"))
	assert.Equal(t, BytesToAddress([]byte("ction-module-account")), addr)

	// short input is zero-padded on the left
	short := BytesToAddress([]byte{0x01})
	assert.Equal(t, byte(0x01), short[19])
	assert.True(t, Address{}.IsZero())
}

func TestBlake2b(t *testing.T) {
	h1 := Blake2b([]byte("auction-record-key"))
	h2 := Blake2b([]byte("auction-record-key"))
	h3 := Blake2b([]byte("auction-count-key"))
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.False(t, h1.IsZero())
}
