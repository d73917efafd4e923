//go:build !windows
// +build !windows

package main

import (
	"os"
	"syscall"
)

// platformSignals lists the signals the dashboard intercepts. SIGTSTP
// is included so a stray ctrl+z cannot suspend the process and leave
// the terminal in the alternate screen.
func platformSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGTSTP,
	}
}

func isSuspendSignal(sig os.Signal) bool {
	return sig == syscall.SIGTSTP
}
