// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package meter

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// NewBlake2b returns a blake2b-256 hasher.
func NewBlake2b() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails with a key, which we never pass
		panic(err)
	}
	return h
}

// Blake2b computes the blake2b-256 checksum over the given chunks.
func Blake2b(data ...[]byte) (b32 Bytes32) {
	h := NewBlake2b()
	for _, b := range data {
		h.Write(b)
	}
	h.Sum(b32[:0])
	return
}
