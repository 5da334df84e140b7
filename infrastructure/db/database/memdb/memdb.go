package memdb

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/cinderchain/cinderd/infrastructure/db/database"
)

// MemDB is an in-memory implementation of database.Database. It keeps the
// whole key space in a map guarded by a reader/writer mutex: readers never
// block each other and are only blocked for the instant a write is applied.
// It exists for tests and for running a node without a disk footprint.
type MemDB struct {
	mutex    sync.RWMutex
	data     map[string][]byte
	isClosed bool
}

// New returns a new, empty MemDB.
func New() *MemDB {
	return &MemDB{
		data: make(map[string][]byte),
	}
}

// Compact does nothing; there is nothing to compact in a map.
func (db *MemDB) Compact() error {
	return nil
}

// Close closes the database. Any further access fails.
func (db *MemDB) Close() error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.isClosed {
		return errors.New("cannot close an already closed database")
	}
	db.isClosed = true
	db.data = nil
	return nil
}

// Put sets the value for the given key. It overwrites
// any previous value for that key.
func (db *MemDB) Put(key *database.Key, value []byte) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.isClosed {
		return errors.New("cannot put into a closed database")
	}

	valueClone := make([]byte, len(value))
	copy(valueClone, value)
	db.data[key.String()] = valueClone
	return nil
}

// Get gets the value for the given key. A missing key is reported via
// found=false rather than an error.
func (db *MemDB) Get(key *database.Key) (data []byte, found bool, err error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	if db.isClosed {
		return nil, false, errors.New("cannot get from a closed database")
	}

	value, ok := db.data[key.String()]
	if !ok {
		return nil, false, nil
	}

	valueClone := make([]byte, len(value))
	copy(valueClone, value)
	return valueClone, true, nil
}

// Has returns true if the database does contain the
// given key.
func (db *MemDB) Has(key *database.Key) (bool, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	if db.isClosed {
		return false, errors.New("cannot has from a closed database")
	}

	_, ok := db.data[key.String()]
	return ok, nil
}

// Delete deletes the value for the given key. Will not
// return an error if the key doesn't exist.
func (db *MemDB) Delete(key *database.Key) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.isClosed {
		return errors.New("cannot delete from a closed database")
	}

	delete(db.data, key.String())
	return nil
}
