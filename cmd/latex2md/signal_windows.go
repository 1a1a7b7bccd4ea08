//go:build windows

package main

import "os"

// shutdownSignals stop a batch or a clipboard watch.
// syscall.SIGTERM is not delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
