package logger

import (
	"time"
)

// LogAndMeasureExecutionTime logs the start of a function and returns a
// closure that, deferred, logs its end together with the elapsed time.
func LogAndMeasureExecutionTime(log *Logger, functionName string) (onEnd func()) {
	start := time.Now()
	log.Debugf("%s start", functionName)
	return func() {
		log.Debugf("%s end. Took: %s", functionName, time.Since(start))
	}
}
