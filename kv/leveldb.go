// Copyright (c) 2023 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	dberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

const defaultCacheSize = 8192

// LevelDB is a Store backed by goleveldb with an LRU read-through cache.
type LevelDB struct {
	db    *leveldb.DB
	cache *lru.Cache
}

// NewLevelDB opens (or creates) a leveldb database at path.
func NewLevelDB(path string, cacheSize int) (*LevelDB, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	db, err := leveldb.OpenFile(path, &opt.Options{
		OpenFilesCacheCapacity: 256,
		BlockCacheCapacity:     cacheSize * opt.KiB,
		WriteBuffer:            cacheSize * opt.KiB / 4,
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*dberrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, errors.WithMessage(err, "open leveldb")
	}
	return newLevelDB(db, cacheSize)
}

// NewMemDB creates an in-memory store, for tests and one-shot tooling.
func NewMemDB() *LevelDB {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		panic(errors.WithMessage(err, "open in-memory leveldb"))
	}
	ldb, err := newLevelDB(db, defaultCacheSize)
	if err != nil {
		panic(err)
	}
	return ldb
}

func newLevelDB(db *leveldb.DB, cacheSize int) (*LevelDB, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db, cache: cache}, nil
}

func (l *LevelDB) Get(key []byte) ([]byte, error) {
	if val, ok := l.cache.Get(string(key)); ok {
		if val == nil {
			return nil, ErrNotFound
		}
		return append([]byte(nil), val.([]byte)...), nil
	}
	val, err := l.db.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			l.cache.Add(string(key), nil)
			return nil, ErrNotFound
		}
		return nil, err
	}
	l.cache.Add(string(key), append([]byte(nil), val...))
	return val, nil
}

func (l *LevelDB) Has(key []byte) (bool, error) {
	if val, ok := l.cache.Get(string(key)); ok {
		return val != nil, nil
	}
	return l.db.Has(key, nil)
}

func (l *LevelDB) Put(key, value []byte) error {
	if err := l.db.Put(key, value, nil); err != nil {
		return err
	}
	l.cache.Add(string(key), append([]byte(nil), value...))
	return nil
}

func (l *LevelDB) Delete(key []byte) error {
	if err := l.db.Delete(key, nil); err != nil {
		return err
	}
	l.cache.Add(string(key), nil)
	return nil
}

func (l *LevelDB) NewBatch() Batch {
	return &ldbBatch{db: l, batch: &leveldb.Batch{}}
}

func (l *LevelDB) Close() error {
	l.cache.Purge()
	return l.db.Close()
}

type ldbBatch struct {
	db      *LevelDB
	batch   *leveldb.Batch
	touched []string
	len     int
}

func (b *ldbBatch) Put(key, value []byte) error {
	b.batch.Put(key, value)
	b.touched = append(b.touched, string(key))
	b.len++
	return nil
}

func (b *ldbBatch) Delete(key []byte) error {
	b.batch.Delete(key)
	b.touched = append(b.touched, string(key))
	b.len++
	return nil
}

func (b *ldbBatch) Len() int {
	return b.len
}

func (b *ldbBatch) Write() error {
	if err := b.db.db.Write(b.batch, nil); err != nil {
		return errors.WithMessage(err, "write batch")
	}
	// drop cached entries for written keys rather than guessing their values
	for _, k := range b.touched {
		b.db.cache.Remove(k)
	}
	return nil
}
