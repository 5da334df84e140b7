package chaincfg

import (
	"github.com/cinderchain/cinderd/domain/model"
	"github.com/cinderchain/cinderd/util/chainhash"
)

// genesisTxRoot is the merkle root of the genesis block's single coinbase
// transaction.
var genesisTxRoot = chainhash.Hash{
	0x3b, 0xa3, 0xed, 0xfd, 0x7a, 0x7b, 0x12, 0xb2,
	0x7a, 0xc7, 0x2c, 0x3e, 0x67, 0x76, 0x8f, 0x61,
	0x7f, 0xc8, 0x1b, 0xc3, 0x88, 0x8a, 0x51, 0x32,
	0x3a, 0x9f, 0xb8, 0xaa, 0x4b, 0x1e, 0x5e, 0x4a,
}

// GenesisBlock defines the genesis block of the block chain which serves
// as the public transaction ledger's starting point. Its previous-block
// hash is the zero hash; the stored genesis tip points both of its hashes
// at the genesis block itself.
var GenesisBlock = model.Block{
	Header: model.BlockHeader{
		Version:         1,
		Height:          0,
		PrevBlock:       chainhash.Hash{},
		TxRoot:          genesisTxRoot,
		Timestamp:       0x605cd0e0, // 2021-03-25 20:00:00 +0000 UTC
		Nonce:           0x200a2f55,
		TotalDifficulty: model.DifficultyOne,
	},
	Body: []byte("ashes to ashes, cinders to chains"),
}

// GenesisHash is the hash of the genesis block.
var GenesisHash = GenesisBlock.BlockHash()
