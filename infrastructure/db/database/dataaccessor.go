package database

// DataAccessor defines the common interface by which data gets
// accessed in a generic cinderd database.
type DataAccessor interface {
	// Put sets the value for the given key. It overwrites
	// any previous value for that key.
	Put(key *Key, value []byte) error

	// Get gets the value for the given key. A missing key is
	// a normal outcome and is reported via found=false rather
	// than an error.
	Get(key *Key) (data []byte, found bool, err error)

	// Has returns true if the database does contain the
	// given key.
	Has(key *Key) (bool, error)

	// Delete deletes the value for the given key. Will not
	// return an error if the key doesn't exist.
	Delete(key *Key) error
}
