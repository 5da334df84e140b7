package database

// Database defines the common interface of a crash-durable key/value store
// shared by every subsystem of the node. A Database is safe for concurrent
// use: readers are only briefly blocked while a write is applied.
type Database interface {
	DataAccessor

	// Begin begins a new database transaction. The returned
	// transaction must not be shared between call paths.
	Begin() (Transaction, error)

	// Compact compacts the database instance.
	Compact() error

	// Close closes the database.
	Close() error
}
