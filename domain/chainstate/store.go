package chainstate

import (
	"github.com/cinderchain/cinderd/domain/model"
	"github.com/cinderchain/cinderd/infrastructure/db/database"
	"github.com/cinderchain/cinderd/util/chainhash"
)

// ChainStore is the storage contract the block-processing pipeline requires.
// Every method runs against the given dbContext, which is either the shared
// database handle or a transaction begun on it. A caller that needs several
// writes to become visible together must issue them against a single
// database.Transaction and commit it; calling the methods against the bare
// database offers no atomicity across them.
type ChainStore interface {
	// Head returns the tip of the fully-validated block chain. It fails
	// with database.ErrNotFound only before genesis bootstrap.
	Head(dbContext database.DataAccessor) (*Tip, error)

	// SaveHead overwrites the head with the provided tip. The caller is
	// responsible for having established that the tip is the correct new
	// chain leaf; no comparison with the current head happens here.
	SaveHead(dbContext database.DataAccessor, tip *Tip) error

	// HeaderHead returns the tip of the header chain. During headers-first
	// synchronization it may be far ahead of Head.
	HeaderHead(dbContext database.DataAccessor) (*Tip, error)

	// SaveHeaderHead overwrites the header-chain head with the provided
	// tip, independently of Head.
	SaveHeaderHead(dbContext database.DataAccessor, tip *Tip) error

	// HeadHeader returns the block header the head tip points at.
	HeadHeader(dbContext database.DataAccessor) (*model.BlockHeader, error)

	// GetBlock returns the block of the given hash, or
	// database.ErrNotFound if it was never stored.
	GetBlock(dbContext database.DataAccessor, hash *chainhash.Hash) (*model.Block, error)

	// HasBlock returns whether a block of the given hash was stored.
	HasBlock(dbContext database.DataAccessor, hash *chainhash.Hash) (bool, error)

	// SaveBlock stores the given block keyed by its content hash. Blocks
	// are append-only: storing the same block twice is a harmless no-op.
	SaveBlock(dbContext database.DataAccessor, block *model.Block) error

	// GetBlockHeader returns the block header of the given hash, or
	// database.ErrNotFound if it was never stored.
	GetBlockHeader(dbContext database.DataAccessor, hash *chainhash.Hash) (*model.BlockHeader, error)

	// HasBlockHeader returns whether a header of the given hash was stored.
	HasBlockHeader(dbContext database.DataAccessor, hash *chainhash.Hash) (bool, error)

	// SaveBlockHeader stores the given header keyed by its content hash,
	// with the same append-only semantics as SaveBlock.
	SaveBlockHeader(dbContext database.DataAccessor, header *model.BlockHeader) error

	// BlockHashAtHeight returns the hash of the header currently
	// considered canonical at the given height, or database.ErrNotFound
	// if the height was never indexed.
	BlockHashAtHeight(dbContext database.DataAccessor, height uint64) (*chainhash.Hash, error)

	// HeaderAtHeight returns the header currently considered canonical at
	// the given height.
	HeaderAtHeight(dbContext database.DataAccessor, height uint64) (*model.BlockHeader, error)

	// IndexBlockHeight records the given header's hash as canonical at its
	// height. Except at height zero, the entry at the previous height must
	// already hold the header's declared previous hash: a missing entry
	// fails with database.ErrNotFound, a disagreeing one with
	// ErrInconsistentHeightIndex. During a reorganization the pipeline
	// must therefore re-index every header along the new branch in
	// ascending height order, starting at the fork point.
	IndexBlockHeight(dbContext database.DataAccessor, header *model.BlockHeader) error
}
