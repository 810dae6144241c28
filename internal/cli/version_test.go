package cli

import (
	"strings"
	"testing"
)

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{"v2.0.0-rc.1", "v2.0.0-rc.1"},
		{"dev", "dev"},
	}
	for _, tt := range tests {
		if got := displayVersion(tt.in); got != tt.want {
			t.Errorf("displayVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	sandbox(t, "")
	old := buildVersion
	buildVersion = "0.3.1"
	t.Cleanup(func() { buildVersion = old })

	r := run(t, "", "version", "--short")
	if strings.TrimSpace(r.out) != "v0.3.1" {
		t.Errorf("version --short = %q", r.out)
	}

	r = run(t, "", "version", "--json")
	if !strings.Contains(r.out, `"version": "v0.3.1"`) {
		t.Errorf("version --json = %q", r.out)
	}
}
