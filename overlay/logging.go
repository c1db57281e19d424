package overlay

import (
	"log"
	"sync/atomic"
)

var debugLogging atomic.Bool

// SetDebugLogging enables or disables verbose logging inside the overlay package.
func SetDebugLogging(enabled bool) {
	debugLogging.Store(enabled)
}

func logDebug(format string, args ...interface{}) {
	if debugLogging.Load() {
		log.Printf(format, args...)
	}
}
