//go:build !windows

package main

import (
	"os/signal"
	"syscall"
)

// A consumer closing the pipe (gtree | head) must surface as an EPIPE
// write error, not the runtime's fatal SIGPIPE, so the clean-exit path
// still runs when the walk is already streaming output.
func init() {
	signal.Ignore(syscall.SIGPIPE)
}
