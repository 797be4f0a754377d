// Package satlog wires the saturation core's subsystems to a single
// commonlog backend, the way internal/lsp wires the Kanso language server.
package satlog

import (
	"sync"

	"github.com/tliron/commonlog"
)

var (
	configureOnce sync.Once
	verbosity     int
)

// Configure sets the global verbosity level (mirrors the -v CLI flag) and
// an optional log file path. Safe to call once at process start; later
// calls are ignored, matching commonlog's own process-wide configuration.
func Configure(level int, logFile string) {
	configureOnce.Do(func() {
		verbosity = level
		var path *string
		if logFile != "" {
			path = &logFile
		}
		commonlog.Configure(level, path)
	})
}

// Verbosity returns the level passed to Configure (0 if never configured).
func Verbosity() int {
	return verbosity
}

// For returns a named logger for a subsystem, e.g. satlog.For("loop").
func For(subsystem string) commonlog.Logger {
	return commonlog.GetLogger("saturation." + subsystem)
}
