package cfg

import (
	"io"
	"sync"
)

// InfoReportFunc writes a status report to w.
type InfoReportFunc func(w io.Writer)

var (
	reportersMu  sync.Mutex
	sigReporters []InfoReportFunc
)

// RegisterSigInfoReporter registers the function that is called when the
// process receives SIGINFO (or SIGUSR1).
func RegisterSigInfoReporter(fn InfoReportFunc) {
	if fn == nil {
		return
	}
	reportersMu.Lock()
	defer reportersMu.Unlock()
	sigReporters = append(sigReporters, fn)
}

// SigInfo calls all registered reporters.
func SigInfo(w io.Writer) {
	if w == nil {
		return
	}
	reportersMu.Lock()
	rr := append([]InfoReportFunc(nil), sigReporters...)
	reportersMu.Unlock()
	for _, fn := range rr {
		fn(w)
	}
}
