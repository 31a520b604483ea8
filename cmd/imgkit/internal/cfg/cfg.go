// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"log/slog"

	"github.com/rusq/osenv/v2"
)

var (
	TraceFile   string = osenv.Value("TRACE_FILE", "")
	LogFile     string = osenv.Value("LOG_FILE", "")
	JSONHandler bool   = osenv.Value("JSON_LOG", false)
	Verbose     bool   = osenv.Value("DEBUG", false)

	Log *slog.Logger = slog.Default()
)

type FlagMask uint16

const (
	DefaultFlags  FlagMask = 0
	OmitTraceFlag FlagMask = 1 << (iota - 1)
	OmitLogFlags

	OmitAll = OmitTraceFlag | OmitLogFlags
)

// SetBaseFlags sets base flags.  It is safe to call more than once on the
// same flag set.
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	if fs.Lookup("v") != nil {
		return
	}
	fs.BoolVar(&Verbose, "v", Verbose, "verbose messages")

	if mask&OmitTraceFlag == 0 {
		fs.StringVar(&TraceFile, "trace", TraceFile, "trace `filename`")
	}
	if mask&OmitLogFlags == 0 {
		fs.StringVar(&LogFile, "log", LogFile, "log `file`, if not specified, messages are printed to STDERR")
		fs.BoolVar(&JSONHandler, "log-json", JSONHandler, "log in JSON format")
	}
}

// SetDebugLevel enables debug messages on the default logger.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
