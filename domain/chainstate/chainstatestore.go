package chainstate

import (
	"github.com/pkg/errors"

	"github.com/cinderchain/cinderd/domain/model"
	"github.com/cinderchain/cinderd/infrastructure/db/database"
	"github.com/cinderchain/cinderd/util/chainhash"
)

// Single-byte bucket prefixes. Together with the database's separator they
// produce the flat key layout [prefix][separator][identifier].
var (
	blocksBucket      = database.MakeBucket([]byte{'b'})
	headersBucket     = database.MakeBucket([]byte{'h'})
	headBucket        = database.MakeBucket([]byte{'H'})
	headerHeadBucket  = database.MakeBucket([]byte{'I'})
	heightIndexBucket = database.MakeBucket([]byte{'8'})
)

// The two head pointers are singleton records, so their keys carry no
// identifier suffix.
var (
	headKey       = headBucket.Key(nil)
	headerHeadKey = headerHeadBucket.Key(nil)
)

func blockKey(hash *chainhash.Hash) *database.Key {
	return blocksBucket.Key(hash[:])
}

func headerKey(hash *chainhash.Hash) *database.Key {
	return headersBucket.Key(hash[:])
}

func heightKey(height uint64) *database.Key {
	return heightIndexBucket.Uint64Key(height)
}

// chainStateStore implements ChainStore over any database.DataAccessor.
// It owns no state of its own: all state lives in the database the caller
// passes in, so the same store value serves the shared handle and any
// transaction begun on it.
type chainStateStore struct{}

// New instantiates a new ChainStore.
func New() ChainStore {
	return &chainStateStore{}
}

func (css *chainStateStore) Head(dbContext database.DataAccessor) (*Tip, error) {
	head := &Tip{}
	err := database.RequireDecoded(dbContext, headKey, head)
	if err != nil {
		return nil, err
	}
	return head, nil
}

func (css *chainStateStore) SaveHead(dbContext database.DataAccessor, tip *Tip) error {
	return database.PutEncoded(dbContext, headKey, tip)
}

func (css *chainStateStore) HeaderHead(dbContext database.DataAccessor) (*Tip, error) {
	headerHead := &Tip{}
	err := database.RequireDecoded(dbContext, headerHeadKey, headerHead)
	if err != nil {
		return nil, err
	}
	return headerHead, nil
}

func (css *chainStateStore) SaveHeaderHead(dbContext database.DataAccessor, tip *Tip) error {
	return database.PutEncoded(dbContext, headerHeadKey, tip)
}

func (css *chainStateStore) HeadHeader(dbContext database.DataAccessor) (*model.BlockHeader, error) {
	head, err := css.Head(dbContext)
	if err != nil {
		return nil, err
	}
	return css.GetBlockHeader(dbContext, &head.LastBlock)
}

func (css *chainStateStore) GetBlock(dbContext database.DataAccessor, hash *chainhash.Hash) (*model.Block, error) {
	block := &model.Block{}
	err := database.RequireDecoded(dbContext, blockKey(hash), block)
	if err != nil {
		return nil, err
	}
	return block, nil
}

func (css *chainStateStore) HasBlock(dbContext database.DataAccessor, hash *chainhash.Hash) (bool, error) {
	return dbContext.Has(blockKey(hash))
}

func (css *chainStateStore) SaveBlock(dbContext database.DataAccessor, block *model.Block) error {
	hash := block.BlockHash()
	return database.PutEncoded(dbContext, blockKey(&hash), block)
}

func (css *chainStateStore) GetBlockHeader(dbContext database.DataAccessor, hash *chainhash.Hash) (*model.BlockHeader, error) {
	header := &model.BlockHeader{}
	err := database.RequireDecoded(dbContext, headerKey(hash), header)
	if err != nil {
		return nil, err
	}
	return header, nil
}

func (css *chainStateStore) HasBlockHeader(dbContext database.DataAccessor, hash *chainhash.Hash) (bool, error) {
	return dbContext.Has(headerKey(hash))
}

func (css *chainStateStore) SaveBlockHeader(dbContext database.DataAccessor, header *model.BlockHeader) error {
	hash := header.BlockHash()
	return database.PutEncoded(dbContext, headerKey(&hash), header)
}

func (css *chainStateStore) BlockHashAtHeight(dbContext database.DataAccessor, height uint64) (*chainhash.Hash, error) {
	hashBytes, err := database.Require(dbContext, heightKey(height))
	if err != nil {
		return nil, err
	}
	hash, err := chainhash.NewHash(hashBytes)
	if err != nil {
		return nil, errors.Wrapf(database.ErrMalformedData,
			"invalid hash indexed at height %d: %s", height, err)
	}
	return hash, nil
}

func (css *chainStateStore) HeaderAtHeight(dbContext database.DataAccessor, height uint64) (*model.BlockHeader, error) {
	hash, err := css.BlockHashAtHeight(dbContext, height)
	if err != nil {
		return nil, err
	}
	return css.GetBlockHeader(dbContext, hash)
}

func (css *chainStateStore) IndexBlockHeight(dbContext database.DataAccessor, header *model.BlockHeader) error {
	hash := header.BlockHash()

	// The genesis header bootstraps the index; every other height must
	// connect to the hash already indexed right below it, so the index
	// always describes one contiguous chain and never a splice of
	// competing forks.
	if header.Height > 0 {
		prevHash, err := css.BlockHashAtHeight(dbContext, header.Height-1)
		if err != nil {
			return errors.Wrapf(err, "cannot index header %s at height %d", hash, header.Height)
		}
		if !prevHash.IsEqual(&header.PrevBlock) {
			return errors.Wrapf(ErrInconsistentHeightIndex,
				"header %s declares previous block %s but height %d is indexed as %s",
				hash, header.PrevBlock, header.Height-1, prevHash)
		}
	}

	return dbContext.Put(heightKey(header.Height), hash.CloneBytes())
}
