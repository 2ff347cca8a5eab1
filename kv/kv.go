// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import "github.com/pkg/errors"

// ErrNotFound is returned by Getter.Get for missing keys.
var ErrNotFound = errors.New("kv: not found")

// Getter reads values.
type Getter interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// Putter writes values.
type Putter interface {
	Put(key, value []byte) error
	Delete(key []byte) error
}

// GetPutter reads and writes values.
type GetPutter interface {
	Getter
	Putter
}

// Batch accumulates writes and lands them as one unit.
type Batch interface {
	Putter
	Len() int
	Write() error
}

// Store is a durable key-value store.
type Store interface {
	GetPutter
	NewBatch() Batch
	Close() error
}

// IsNotFound reports whether err means a missing key.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
