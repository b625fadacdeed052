//go:build debug

package imaging

import (
	"fmt"
	"log"
	"os"
)

var debugLogger = log.New(os.Stderr, "[IMAGING DEBUG] ", log.Ltime|log.Lmicroseconds|log.Lshortfile)

// debugLog logs debug messages when built with -tags debug
func debugLog(format string, args ...any) {
	debugLogger.Output(2, fmt.Sprintf(format, args...))
}
