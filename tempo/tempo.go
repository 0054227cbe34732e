// Package tempo provides a lightweight, hierarchical timer for attributing
// elapsed time to the steps of a single operation.
//
// A [Timer] records named durations ("measures") either against a previously
// set mark or against its implicit start, and owns named child timers so time
// can be attributed to sub-operations. An example structure may be:
//
//	 Timer
//	  ├ measure "parse"
//	  ├ measure "eval"
//	  └ context "render"
//	      ├ measure "layout"
//	      └ context "paint"
//	          └ measure "total"
//
// The resulting tree is exported as a nested [Snapshot], suitable for JSON
// embedding or tabular console inspection.
package tempo

import (
	"os"

	"golang.org/x/exp/slog"
)

func init() {
	logLevel = new(slog.LevelVar)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(h)
}

var (
	logger   *slog.Logger
	logLevel *slog.LevelVar
)

// SetLogger sets the logger used by tempo.
// [SetLogLevel] will not be enforced if a custom logger is used.
func SetLogger(newlogger *slog.Logger) {
	logger = newlogger
}

// SetLogLevel sets the level for tempo messages unless [SetLogger] has been called.
// The default log level is the zero value of [slog.LevelVar].
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
