//go:build unix && !(darwin || dragonfly || freebsd || netbsd || openbsd)

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rusq/imgkit/cmd/imgkit/internal/cfg"
)

// trapSigInfo reports status on SIGUSR1, there's no SIGINFO on this platform.
func trapSigInfo() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGUSR1)
	go func() {
		for range ch {
			fmt.Fprint(os.Stderr, "IMGKIT STATUS REPORT\n")
			cfg.SigInfo(os.Stderr)
		}
	}()
}
