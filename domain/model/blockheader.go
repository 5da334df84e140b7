package model

import (
	"io"

	"github.com/pkg/errors"

	"github.com/cinderchain/cinderd/util/binaryserializer"
	"github.com/cinderchain/cinderd/util/chainhash"
)

// BlockHeaderSize is the size, in bytes, of a serialized block header:
// version 2 bytes + height 8 bytes + 2 hashes of 32 bytes each + timestamp,
// nonce and total difficulty of 8 bytes each. The encoding is fixed-size so
// that a header can be decoded from the leading region of any record that
// embeds it.
const BlockHeaderSize = 2 + 8 + 2*chainhash.HashSize + 8 + 8 + 8

// BlockHeader defines information about a block. The validation pipeline is
// the sole producer of headers; the chain-state layer stores them verbatim
// and trusts every field, including TotalDifficulty.
type BlockHeader struct {
	// Version of the block. This is not the same as the software version.
	Version uint16

	// Height of this block in the chain, zero for the genesis block.
	Height uint64

	// PrevBlock is the hash of the previous block header in the chain.
	PrevBlock chainhash.Hash

	// TxRoot is the root of the merkle tree over the block's transactions.
	TxRoot chainhash.Hash

	// Timestamp is the time the block was created, in unix seconds.
	Timestamp int64

	// Nonce used to generate the block's proof of work.
	Nonce uint64

	// TotalDifficulty is the difficulty accumulated on the fork this
	// block extends, this block included.
	TotalDifficulty Difficulty
}

// Serialize writes the header into w using the fixed big-endian encoding.
func (h *BlockHeader) Serialize(w io.Writer) error {
	err := binaryserializer.PutUint16(w, h.Version)
	if err != nil {
		return err
	}
	err = binaryserializer.PutUint64(w, h.Height)
	if err != nil {
		return err
	}
	_, err = w.Write(h.PrevBlock[:])
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = w.Write(h.TxRoot[:])
	if err != nil {
		return errors.WithStack(err)
	}
	err = binaryserializer.PutUint64(w, uint64(h.Timestamp))
	if err != nil {
		return err
	}
	err = binaryserializer.PutUint64(w, h.Nonce)
	if err != nil {
		return err
	}
	return h.TotalDifficulty.Serialize(w)
}

// Deserialize reads the header from r using the fixed big-endian encoding.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	version, err := binaryserializer.Uint16(r)
	if err != nil {
		return err
	}
	height, err := binaryserializer.Uint64(r)
	if err != nil {
		return err
	}
	var prevBlock, txRoot chainhash.Hash
	_, err = io.ReadFull(r, prevBlock[:])
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = io.ReadFull(r, txRoot[:])
	if err != nil {
		return errors.WithStack(err)
	}
	timestamp, err := binaryserializer.Uint64(r)
	if err != nil {
		return err
	}
	nonce, err := binaryserializer.Uint64(r)
	if err != nil {
		return err
	}
	totalDifficulty, err := DeserializeDifficulty(r)
	if err != nil {
		return err
	}

	h.Version = version
	h.Height = height
	h.PrevBlock = prevBlock
	h.TxRoot = txRoot
	h.Timestamp = int64(timestamp)
	h.Nonce = nonce
	h.TotalDifficulty = totalDifficulty
	return nil
}

// BlockHash computes the block identifier, the double sha256 of the
// serialized header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	writer := chainhash.NewDoubleHashWriter()

	// Ignore the error returns since writing into a hash writer
	// cannot fail.
	_ = h.Serialize(writer)

	return writer.Finalize()
}
