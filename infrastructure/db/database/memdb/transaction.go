package memdb

import (
	"github.com/pkg/errors"

	"github.com/cinderchain/cinderd/infrastructure/db/database"
)

// memDBTransaction stages writes against a point-in-time copy of the
// database. Staged writes stay invisible to every reader until Commit
// applies them under the database's write lock in one step.
type memDBTransaction struct {
	db       *MemDB
	snapshot map[string][]byte
	toPut    map[string][]byte
	toDelete map[string]struct{}

	isClosed bool
}

// Begin begins a new transaction.
func (db *MemDB) Begin() (database.Transaction, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	if db.isClosed {
		return nil, errors.New("cannot begin a transaction on a closed database")
	}

	snapshot := make(map[string][]byte, len(db.data))
	for key, value := range db.data {
		snapshot[key] = value
	}

	transaction := &memDBTransaction{
		db:       db,
		snapshot: snapshot,
		toPut:    make(map[string][]byte),
		toDelete: make(map[string]struct{}),
	}
	return transaction, nil
}

// Commit commits whatever changes were made to the database
// within this transaction.
func (tx *memDBTransaction) Commit() error {
	if tx.isClosed {
		return errors.New("cannot commit a closed transaction")
	}
	tx.isClosed = true

	tx.db.mutex.Lock()
	defer tx.db.mutex.Unlock()

	if tx.db.isClosed {
		return errors.New("cannot commit a transaction on a closed database")
	}

	for key, value := range tx.toPut {
		tx.db.data[key] = value
	}
	for key := range tx.toDelete {
		delete(tx.db.data, key)
	}
	return nil
}

// Rollback rolls back whatever changes were made to the
// database within this transaction.
func (tx *memDBTransaction) Rollback() error {
	if tx.isClosed {
		return errors.New("cannot rollback a closed transaction")
	}
	tx.isClosed = true

	tx.toPut = nil
	tx.toDelete = nil
	return nil
}

// RollbackUnlessClosed rolls back changes that were made to
// the database within the transaction, unless the transaction
// had already been closed using either Rollback or Commit.
func (tx *memDBTransaction) RollbackUnlessClosed() error {
	if tx.isClosed {
		return nil
	}
	return tx.Rollback()
}

// Put sets the value for the given key. It overwrites
// any previous value for that key.
func (tx *memDBTransaction) Put(key *database.Key, value []byte) error {
	if tx.isClosed {
		return errors.New("cannot put into a closed transaction")
	}

	valueClone := make([]byte, len(value))
	copy(valueClone, value)
	tx.toPut[key.String()] = valueClone
	delete(tx.toDelete, key.String())
	return nil
}

// Get gets the value for the given key from the transaction's snapshot.
// Like the leveldb transaction, writes staged within the transaction are
// not visible to it.
func (tx *memDBTransaction) Get(key *database.Key) (data []byte, found bool, err error) {
	if tx.isClosed {
		return nil, false, errors.New("cannot get from a closed transaction")
	}

	value, ok := tx.snapshot[key.String()]
	if !ok {
		return nil, false, nil
	}

	valueClone := make([]byte, len(value))
	copy(valueClone, value)
	return valueClone, true, nil
}

// Has returns true if the transaction's snapshot contains the given key.
func (tx *memDBTransaction) Has(key *database.Key) (bool, error) {
	if tx.isClosed {
		return false, errors.New("cannot has from a closed transaction")
	}

	_, ok := tx.snapshot[key.String()]
	return ok, nil
}

// Delete deletes the value for the given key. Will not
// return an error if the key doesn't exist.
func (tx *memDBTransaction) Delete(key *database.Key) error {
	if tx.isClosed {
		return errors.New("cannot delete from a closed transaction")
	}

	tx.toDelete[key.String()] = struct{}{}
	delete(tx.toPut, key.String())
	return nil
}
