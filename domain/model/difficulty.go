package model

import (
	"io"

	"github.com/cinderchain/cinderd/util/binaryserializer"
)

// Difficulty is an amount of proof-of-work, either of a single block or
// accumulated along a fork. It is expressed in base work units.
type Difficulty uint64

// DifficultyOne is the base work unit, the cumulative difficulty of a chain
// containing only the genesis block.
const DifficultyOne Difficulty = 1

// Add returns the sum of this difficulty and the given one.
func (d Difficulty) Add(other Difficulty) Difficulty {
	return d + other
}

// Serialize writes the difficulty as a fixed-width 8-byte big-endian value.
func (d Difficulty) Serialize(w io.Writer) error {
	return binaryserializer.PutUint64(w, uint64(d))
}

// DeserializeDifficulty reads a fixed-width 8-byte big-endian difficulty.
func DeserializeDifficulty(r io.Reader) (Difficulty, error) {
	value, err := binaryserializer.Uint64(r)
	if err != nil {
		return 0, err
	}
	return Difficulty(value), nil
}
