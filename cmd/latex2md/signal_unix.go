//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop a batch or a clipboard watch.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
