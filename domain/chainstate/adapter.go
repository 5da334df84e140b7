package chainstate

import (
	"github.com/cinderchain/cinderd/domain/model"
)

// Adapter is the bridge between the block-processing pipeline and the rest
// of the system. It handles downstream processing of durably accepted
// blocks, most importantly their broadcast to peers.
type Adapter interface {
	// BlockAccepted is invoked after the pipeline has accepted the block
	// as valid and durably committed it to the chain state.
	BlockAccepted(block *model.Block)
}

// NoopAdapter is the default Adapter when nothing is wired to receive
// notifications.
type NoopAdapter struct{}

// BlockAccepted does nothing.
func (NoopAdapter) BlockAccepted(block *model.Block) {}
