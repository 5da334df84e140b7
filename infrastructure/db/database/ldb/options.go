package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

var (
	defaultOptions = opt.Options{
		// The chain state consists of a great number of small records,
		// so compaction is tuned for write throughput rather than for
		// strict space minimization.
		Compression:            opt.NoCompression,
		WriteBuffer:            64 * opt.MiB,
		DisableSeeksCompaction: true,

		// Bound the number of concurrently open file handles. The many
		// small table files produced by the write pattern above would
		// otherwise exhaust the process's descriptor budget.
		OpenFilesCacheCapacity: 256,

		// Durability is deferred to the OS instead of fsyncing on every
		// write. Operators accept a bounded crash-loss window in
		// exchange for throughput; a resync covers whatever the window
		// loses.
		NoSync: true,
	}

	// Options is a function that returns a leveldb
	// opt.Options struct for opening a database.
	// It's defined as a variable for the sake of testing.
	Options = func() *opt.Options {
		return &defaultOptions
	}
)
