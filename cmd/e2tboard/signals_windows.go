//go:build windows
// +build windows

package main

import (
	"os"
	"syscall"
)

func platformSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}

func isSuspendSignal(sig os.Signal) bool {
	return false
}
