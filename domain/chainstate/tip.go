package chainstate

import (
	"io"

	"github.com/pkg/errors"

	"github.com/cinderchain/cinderd/domain/model"
	"github.com/cinderchain/cinderd/util/binaryserializer"
	"github.com/cinderchain/cinderd/util/chainhash"
)

// TipSize is the size, in bytes, of a serialized Tip: 8-byte big-endian
// height, two 32-byte hashes and an 8-byte big-endian difficulty, in that
// order. The encoding is fixed-size, so a Tip record can be decoded from the
// leading region of a longer value.
const TipSize = 8 + 2*chainhash.HashSize + 8

// Tip is the leaf of a fork: a handle to the fork's ancestry in the block
// tree. It references the fork's max height, its latest and previous block
// hashes and the total difficulty accumulated on it.
//
// Tips are immutable values. Advancing a chain produces a new Tip; no Tip is
// ever modified in place, and this layer retains no history of superseded
// Tips. Ancestry is recovered by walking stored headers via PrevBlock.
type Tip struct {
	// Height of the tip (max height of the fork).
	Height uint64

	// LastBlock is the hash of the last block pushed to the fork.
	LastBlock chainhash.Hash

	// PrevBlock is the hash of the block previous to the last.
	PrevBlock chainhash.Hash

	// TotalDifficulty accumulated on the fork.
	TotalDifficulty model.Difficulty
}

// GenesisTip creates the tip of a chain containing only the genesis block:
// height zero, both block hashes equal to the given genesis hash and a total
// difficulty of one base unit.
func GenesisTip(genesisHash *chainhash.Hash) *Tip {
	return &Tip{
		Height:          0,
		LastBlock:       *genesisHash,
		PrevBlock:       *genesisHash,
		TotalDifficulty: model.DifficultyOne,
	}
}

// TipFromHeader creates the tip of the fork whose leaf is the given header.
// The header's total difficulty is trusted as supplied by the validation
// pipeline; it is not recomputed here.
func TipFromHeader(header *model.BlockHeader) *Tip {
	return &Tip{
		Height:          header.Height,
		LastBlock:       header.BlockHash(),
		PrevBlock:       header.PrevBlock,
		TotalDifficulty: header.TotalDifficulty,
	}
}

// Serialize writes the tip into w using the fixed encoding described by
// TipSize.
func (t *Tip) Serialize(w io.Writer) error {
	err := binaryserializer.PutUint64(w, t.Height)
	if err != nil {
		return err
	}
	_, err = w.Write(t.LastBlock[:])
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = w.Write(t.PrevBlock[:])
	if err != nil {
		return errors.WithStack(err)
	}
	return t.TotalDifficulty.Serialize(w)
}

// Deserialize reads the tip from r using the fixed encoding described by
// TipSize.
func (t *Tip) Deserialize(r io.Reader) error {
	height, err := binaryserializer.Uint64(r)
	if err != nil {
		return err
	}
	var lastBlock, prevBlock chainhash.Hash
	_, err = io.ReadFull(r, lastBlock[:])
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = io.ReadFull(r, prevBlock[:])
	if err != nil {
		return errors.WithStack(err)
	}
	totalDifficulty, err := model.DeserializeDifficulty(r)
	if err != nil {
		return err
	}

	t.Height = height
	t.LastBlock = lastBlock
	t.PrevBlock = prevBlock
	t.TotalDifficulty = totalDifficulty
	return nil
}
