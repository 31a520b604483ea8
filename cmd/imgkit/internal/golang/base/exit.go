package base

import (
	"os"
	"sync"
)

// StatusCode is the process exit status.
type StatusCode uint8

const (
	SNoError StatusCode = iota
	SGenericError
	SInvalidParameters
	SHelpRequested
	SApplicationError
	SCancelled
)

func (s StatusCode) String() string {
	switch s {
	case SNoError:
		return "no error"
	case SGenericError:
		return "generic error"
	case SInvalidParameters:
		return "invalid parameters"
	case SHelpRequested:
		return "help requested"
	case SApplicationError:
		return "application error"
	case SCancelled:
		return "cancelled"
	default:
		return "unknown error"
	}
}

var (
	exitMu     sync.Mutex
	exitStatus = SNoError
	atExitFn   []func()
)

// SetExitStatus sets the exit status, unless a higher status has already
// been set.
func SetExitStatus(n StatusCode) {
	exitMu.Lock()
	defer exitMu.Unlock()
	if exitStatus < n {
		exitStatus = n
	}
}

// ExitStatus returns the current exit status.
func ExitStatus() StatusCode {
	exitMu.Lock()
	defer exitMu.Unlock()
	return exitStatus
}

// AtExit registers a function that is called on Exit, in the order of
// registration.
func AtExit(f func()) {
	exitMu.Lock()
	defer exitMu.Unlock()
	atExitFn = append(atExitFn, f)
}

// Exit runs the AtExit functions and exits with the current exit status.
func Exit() {
	exitMu.Lock()
	fns := atExitFn
	atExitFn = nil
	exitMu.Unlock()
	for _, f := range fns {
		f()
	}
	os.Exit(int(ExitStatus()))
}
