package browser

import (
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://www.bensbites.com/p/agents", false},
		{"http://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Validate(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestOpenRejectsBeforeLaunching(t *testing.T) {
	if err := Open("javascript:alert(1)"); err == nil {
		t.Error("expected Open to refuse a javascript: URL")
	}
}

func TestCommandPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
		{"windows", "rundll32"},
	}
	for _, tt := range tests {
		cmd := command(tt.goos, "https://example.com")
		if got := filepath.Base(cmd.Args[0]); got != tt.want {
			t.Errorf("command(%q) runs %q, want %q", tt.goos, got, tt.want)
		}
		if last := cmd.Args[len(cmd.Args)-1]; last != "https://example.com" {
			t.Errorf("command(%q) last arg = %q", tt.goos, last)
		}
	}
}
