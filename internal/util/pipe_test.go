package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"syscall"
	"testing"
)

func TestIsBrokenPipe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"epipe", syscall.EPIPE, true},
		{"wrapped epipe", fmt.Errorf("cannot write output: %w", syscall.EPIPE), true},
		{"path error epipe", &fs.PathError{Op: "write", Path: "|1", Err: syscall.EPIPE}, true},
		{"other errno", syscall.EBADF, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		if got := IsBrokenPipe(tt.err); got != tt.want {
			t.Errorf("IsBrokenPipe(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsBrokenPipe_ClosedPipeWrite(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("EPIPE semantics are unix-specific")
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	r.Close()

	_, werr := w.Write([]byte("root\n"))
	if !IsBrokenPipe(werr) {
		t.Errorf("IsBrokenPipe(%v) = false after writing to a closed pipe", werr)
	}
}
