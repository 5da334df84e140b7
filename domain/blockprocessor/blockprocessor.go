package blockprocessor

import (
	"github.com/cinderchain/cinderd/domain/chainstate"
	"github.com/cinderchain/cinderd/domain/model"
	"github.com/cinderchain/cinderd/infrastructure/db/database"
	"github.com/cinderchain/cinderd/infrastructure/logger"
)

// BlockProcessor persists blocks and headers that the validation pipeline
// has already accepted as valid. It performs no consensus validation of its
// own: proof of work, difficulty and ordering are its caller's problem. Its
// job is to make every multi-record update atomic, so that a crash can never
// leave the chain state with a block but no height entry, or a head pointing
// at a block that was never stored.
type BlockProcessor struct {
	db      database.Database
	store   chainstate.ChainStore
	adapter chainstate.Adapter
}

// New instantiates a new BlockProcessor over the given database. A nil
// adapter defaults to the no-op adapter.
func New(db database.Database, store chainstate.ChainStore, adapter chainstate.Adapter) *BlockProcessor {
	if adapter == nil {
		adapter = chainstate.NoopAdapter{}
	}
	return &BlockProcessor{
		db:      db,
		store:   store,
		adapter: adapter,
	}
}

// Init bootstraps an empty chain state with the given genesis block: the
// block, its header, the height-zero index entry and both head pointers are
// committed in one transaction. A chain state that already has a head is
// left untouched.
func (bp *BlockProcessor) Init(genesisBlock *model.Block) error {
	_, err := bp.store.Head(bp.db)
	if err == nil {
		return nil
	}
	if !database.IsNotFoundError(err) {
		return err
	}

	genesisHash := genesisBlock.BlockHash()
	log.Infof("Bootstrapping chain state with genesis block %s", genesisHash)

	tx, err := bp.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.RollbackUnlessClosed()
	}()

	err = bp.store.SaveBlock(tx, genesisBlock)
	if err != nil {
		return err
	}
	err = bp.store.SaveBlockHeader(tx, &genesisBlock.Header)
	if err != nil {
		return err
	}
	err = bp.store.IndexBlockHeight(tx, &genesisBlock.Header)
	if err != nil {
		return err
	}

	genesisTip := chainstate.GenesisTip(&genesisHash)
	err = bp.store.SaveHead(tx, genesisTip)
	if err != nil {
		return err
	}
	err = bp.store.SaveHeaderHead(tx, genesisTip)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ProcessBlock persists the given validated block and, when its fork
// accumulates more work than the current head, indexes its height and
// advances the head - all in one atomic commit. Blocks on forks with less
// accumulated work are stored but change nothing else.
//
// The block is expected to extend the currently indexed chain. On a
// reorganization the caller must first re-index the new branch from the fork
// point upward via the store; a block whose height entry would not connect
// is rejected with the store's consistency error, and nothing is committed.
//
// Once a block is durably committed as the new head, the adapter is
// notified.
func (bp *BlockProcessor) ProcessBlock(block *model.Block) (becameHead bool, err error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "ProcessBlock")
	defer onEnd()

	head, err := bp.store.Head(bp.db)
	if err != nil {
		return false, err
	}
	tip := chainstate.TipFromHeader(&block.Header)

	tx, err := bp.db.Begin()
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.RollbackUnlessClosed()
	}()

	err = bp.store.SaveBlock(tx, block)
	if err != nil {
		return false, err
	}
	err = bp.store.SaveBlockHeader(tx, &block.Header)
	if err != nil {
		return false, err
	}

	if tip.TotalDifficulty > head.TotalDifficulty {
		err = bp.store.IndexBlockHeight(tx, &block.Header)
		if err != nil {
			return false, err
		}
		err = bp.store.SaveHead(tx, tip)
		if err != nil {
			return false, err
		}
		becameHead = true
	}

	err = tx.Commit()
	if err != nil {
		return false, err
	}

	if becameHead {
		log.Debugf("Block %s became the new head at height %d", tip.LastBlock, tip.Height)
		bp.adapter.BlockAccepted(block)
	} else {
		log.Debugf("Block %s stored on a side fork at height %d", tip.LastBlock, block.Header.Height)
	}
	return becameHead, nil
}

// ProcessHeader persists the given validated header for headers-first
// synchronization and, when it accumulates more work than the current header
// head, indexes its height and advances the header head, atomically. The
// header head advances independently of the head and may run far ahead of
// it; full blocks catch up later through ProcessBlock.
func (bp *BlockProcessor) ProcessHeader(header *model.BlockHeader) (becameHeaderHead bool, err error) {
	headerHead, err := bp.store.HeaderHead(bp.db)
	if err != nil {
		return false, err
	}
	tip := chainstate.TipFromHeader(header)

	tx, err := bp.db.Begin()
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.RollbackUnlessClosed()
	}()

	err = bp.store.SaveBlockHeader(tx, header)
	if err != nil {
		return false, err
	}

	if tip.TotalDifficulty > headerHead.TotalDifficulty {
		err = bp.store.IndexBlockHeight(tx, header)
		if err != nil {
			return false, err
		}
		err = bp.store.SaveHeaderHead(tx, tip)
		if err != nil {
			return false, err
		}
		becameHeaderHead = true
	}

	err = tx.Commit()
	if err != nil {
		return false, err
	}

	if becameHeaderHead {
		log.Debugf("Header %s became the new header head at height %d", tip.LastBlock, tip.Height)
	}
	return becameHeaderHead, nil
}
