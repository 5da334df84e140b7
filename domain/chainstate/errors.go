package chainstate

import (
	"github.com/pkg/errors"
)

// ErrInconsistentHeightIndex denotes that the header being indexed declares a
// previous block different from the hash currently indexed right below it.
// It is kept distinct from database.ErrNotFound so that callers can tell "no
// prior record yet" apart from "prior record disagrees" - the latter signals
// a reorganization applied out of order.
var ErrInconsistentHeightIndex = errors.New("inconsistent height index")

// IsInconsistentHeightIndexError checks whether an error is an
// ErrInconsistentHeightIndex.
func IsInconsistentHeightIndexError(err error) bool {
	return errors.Is(err, ErrInconsistentHeightIndex)
}
