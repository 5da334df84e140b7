package model

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/cinderchain/cinderd/util/chainhash"
)

// Block is a block header together with its body. The body is an opaque,
// externally encoded transaction payload; the chain-state layer never
// interprets it.
type Block struct {
	Header BlockHeader
	Body   []byte
}

// BlockHash computes the block identifier from the block's header.
func (b *Block) BlockHash() chainhash.Hash {
	return b.Header.BlockHash()
}

// Serialize writes the block into w: the fixed-size header encoding
// followed by the raw body bytes.
func (b *Block) Serialize(w io.Writer) error {
	err := b.Header.Serialize(w)
	if err != nil {
		return err
	}
	_, err = w.Write(b.Body)
	return errors.WithStack(err)
}

// Deserialize reads the block from r. The header occupies the fixed-size
// leading region; everything after it is the body.
func (b *Block) Deserialize(r io.Reader) error {
	err := b.Header.Deserialize(r)
	if err != nil {
		return err
	}
	body, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.WithStack(err)
	}
	b.Body = body
	return nil
}
