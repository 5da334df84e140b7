package app

import (
	"github.com/cinderchain/cinderd/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.CNDR)
