// Package remote walks a directory tree on another machine over the SFTP
// subsystem, so `gtree user@host:path` renders exactly like a local run.
package remote

import (
	"fmt"
	"strings"
)

// Target is a parsed user@host:path argument.
type Target struct {
	User string
	Host string
	Path string
}

// IsTarget reports whether arg looks like a remote target rather than a
// local path. A local relative path containing '@' stays local unless it
// also carries the user@host shape before any slash.
func IsTarget(arg string) bool {
	at := strings.Index(arg, "@")
	if at <= 0 {
		return false
	}
	if slash := strings.IndexByte(arg, '/'); slash >= 0 && slash < at {
		return false
	}
	return true
}

// ParseTarget splits user@host:path. The path defaults to "." (the remote
// home directory).
func ParseTarget(arg string) (Target, error) {
	user, rest, ok := strings.Cut(arg, "@")
	if !ok || user == "" || rest == "" {
		return Target{}, fmt.Errorf("invalid remote target %q: expected user@host[:path]", arg)
	}

	host, path, hasPath := strings.Cut(rest, ":")
	if host == "" {
		return Target{}, fmt.Errorf("invalid remote target %q: missing host", arg)
	}
	if !hasPath || path == "" {
		path = "."
	}
	return Target{User: user, Host: host, Path: path}, nil
}
