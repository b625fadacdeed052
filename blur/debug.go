//go:build debug

package blur

import (
	"fmt"
	"log"
	"os"
)

var debugLogger = log.New(os.Stderr, "[BLUR DEBUG] ", log.Ltime|log.Lmicroseconds|log.Lshortfile)

// debugLog logs debug messages when built with -tags debug
func debugLog(format string, args ...any) {
	debugLogger.Output(2, fmt.Sprintf(format, args...))
}
