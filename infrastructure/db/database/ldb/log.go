package ldb

import (
	"github.com/cinderchain/cinderd/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.DTBS)
