package remote

import "testing"

func TestIsTarget(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"user@host:/var/log", true},
		{"user@host", true},
		{"./some@dir/path", false},
		{"plain/path", false},
		{"@host", false},
	}
	for _, tt := range tests {
		if got := IsTarget(tt.arg); got != tt.want {
			t.Errorf("IsTarget(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("alice@example.com:/srv/data")
	if err != nil {
		t.Fatalf("ParseTarget error = %v", err)
	}
	if target.User != "alice" || target.Host != "example.com" || target.Path != "/srv/data" {
		t.Errorf("ParseTarget = %+v", target)
	}
}

func TestParseTarget_DefaultPath(t *testing.T) {
	target, err := ParseTarget("bob@server")
	if err != nil {
		t.Fatalf("ParseTarget error = %v", err)
	}
	if target.Path != "." {
		t.Errorf("Path = %q, want \".\"", target.Path)
	}
}

func TestParseTarget_Invalid(t *testing.T) {
	for _, arg := range []string{"@host", "user@", "nouser"} {
		if _, err := ParseTarget(arg); err == nil {
			t.Errorf("ParseTarget(%q) error = nil, want error", arg)
		}
	}
}
