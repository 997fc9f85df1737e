package util

import (
	"errors"
	"io/fs"
	"syscall"
)

// IsBrokenPipe reports whether err means the output consumer went away
// (e.g. `gtree | head` closing the pipe). Callers treat this as a clean,
// silent termination; every other sink error is fatal.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, syscall.EPIPE) {
		return true
	}
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) && errors.Is(pathErr.Err, syscall.EPIPE)
}
