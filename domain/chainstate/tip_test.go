package chainstate

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/cinderchain/cinderd/domain/model"
	"github.com/cinderchain/cinderd/util/chainhash"
)

func TestTipSerializeRoundTrip(t *testing.T) {
	lastBlock, err := chainhash.NewHashFromStr(
		"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")
	if err != nil {
		t.Fatalf("TestTipSerializeRoundTrip: NewHashFromStr unexpectedly failed: %s", err)
	}
	prevBlock, err := chainhash.NewHashFromStr(
		"00000000839a8e6886ab5951d76f411475428afc90947ee320161bbf18eb6048")
	if err != nil {
		t.Fatalf("TestTipSerializeRoundTrip: NewHashFromStr unexpectedly failed: %s", err)
	}

	tests := []struct {
		name string
		tip  *Tip
	}{
		{
			name: "genesis tip",
			tip:  GenesisTip(lastBlock),
		},
		{
			name: "arbitrary tip",
			tip: &Tip{
				Height:          123456,
				LastBlock:       *lastBlock,
				PrevBlock:       *prevBlock,
				TotalDifficulty: model.Difficulty(987654321),
			},
		},
	}

	for _, test := range tests {
		buffer := &bytes.Buffer{}
		err := test.tip.Serialize(buffer)
		if err != nil {
			t.Errorf("TestTipSerializeRoundTrip: %s: Serialize unexpectedly failed: %s",
				test.name, err)
			continue
		}
		if buffer.Len() != TipSize {
			t.Errorf("TestTipSerializeRoundTrip: %s: serialized tip is %d bytes "+
				"instead of %d", test.name, buffer.Len(), TipSize)
			continue
		}

		deserializedTip := &Tip{}
		err = deserializedTip.Deserialize(buffer)
		if err != nil {
			t.Errorf("TestTipSerializeRoundTrip: %s: Deserialize unexpectedly failed: %s",
				test.name, err)
			continue
		}
		if !reflect.DeepEqual(deserializedTip, test.tip) {
			t.Errorf("TestTipSerializeRoundTrip: %s: deserialized tip is not identical "+
				"to the original. Want: %+v, got: %+v", test.name, test.tip, deserializedTip)
		}
	}
}

// TestTipEncodingLayout pins the exact byte layout of a serialized tip, since
// stored head records must remain readable across versions.
func TestTipEncodingLayout(t *testing.T) {
	var lastBlock, prevBlock chainhash.Hash
	for i := range lastBlock {
		lastBlock[i] = 0xaa
		prevBlock[i] = 0xbb
	}
	tip := &Tip{
		Height:          0x0102030405060708,
		LastBlock:       lastBlock,
		PrevBlock:       prevBlock,
		TotalDifficulty: model.Difficulty(0x1112131415161718),
	}

	buffer := &bytes.Buffer{}
	err := tip.Serialize(buffer)
	if err != nil {
		t.Fatalf("TestTipEncodingLayout: Serialize unexpectedly failed: %s", err)
	}
	serialized := buffer.Bytes()

	expectedHeight := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(serialized[:8], expectedHeight) {
		t.Errorf("TestTipEncodingLayout: unexpected height bytes. Want: %v, got: %v",
			expectedHeight, serialized[:8])
	}
	if !bytes.Equal(serialized[8:40], lastBlock[:]) {
		t.Errorf("TestTipEncodingLayout: bytes 8:40 do not hold the last block hash")
	}
	if !bytes.Equal(serialized[40:72], prevBlock[:]) {
		t.Errorf("TestTipEncodingLayout: bytes 40:72 do not hold the previous block hash")
	}
	expectedDifficulty := []byte{0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18}
	if !bytes.Equal(serialized[72:80], expectedDifficulty) {
		t.Errorf("TestTipEncodingLayout: unexpected difficulty bytes. Want: %v, got: %v",
			expectedDifficulty, serialized[72:80])
	}
}

func TestGenesisTip(t *testing.T) {
	genesisHash, err := chainhash.NewHashFromStr(
		"00000000839a8e6886ab5951d76f411475428afc90947ee320161bbf18eb6048")
	if err != nil {
		t.Fatalf("TestGenesisTip: NewHashFromStr unexpectedly failed: %s", err)
	}

	tip := GenesisTip(genesisHash)
	if tip.Height != 0 {
		t.Errorf("TestGenesisTip: unexpected height %d for the genesis tip", tip.Height)
	}
	if !tip.LastBlock.IsEqual(genesisHash) || !tip.PrevBlock.IsEqual(genesisHash) {
		t.Errorf("TestGenesisTip: both block hashes of the genesis tip should equal "+
			"the genesis hash %s", genesisHash)
	}
	if tip.TotalDifficulty != model.DifficultyOne {
		t.Errorf("TestGenesisTip: unexpected total difficulty %d for the genesis tip",
			tip.TotalDifficulty)
	}
}

func TestTipFromHeader(t *testing.T) {
	var prevBlock, txRoot chainhash.Hash
	prevBlock[0] = 1
	txRoot[0] = 2
	header := &model.BlockHeader{
		Version:         1,
		Height:          77,
		PrevBlock:       prevBlock,
		TxRoot:          txRoot,
		Timestamp:       0x5fd00000,
		Nonce:           42,
		TotalDifficulty: model.Difficulty(1234),
	}

	tip := TipFromHeader(header)
	if tip.Height != header.Height {
		t.Errorf("TestTipFromHeader: unexpected height. Want: %d, got: %d",
			header.Height, tip.Height)
	}
	expectedLastBlock := header.BlockHash()
	if !tip.LastBlock.IsEqual(&expectedLastBlock) {
		t.Errorf("TestTipFromHeader: the tip's last block is not the header's hash")
	}
	if !tip.PrevBlock.IsEqual(&header.PrevBlock) {
		t.Errorf("TestTipFromHeader: the tip's previous block is not the header's "+
			"previous block %s", &header.PrevBlock)
	}
	if tip.TotalDifficulty != header.TotalDifficulty {
		t.Errorf("TestTipFromHeader: unexpected total difficulty. Want: %d, got: %d",
			header.TotalDifficulty, tip.TotalDifficulty)
	}
}
