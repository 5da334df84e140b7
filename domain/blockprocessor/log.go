package blockprocessor

import (
	"github.com/cinderchain/cinderd/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.BLKP)
