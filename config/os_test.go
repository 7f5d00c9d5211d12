package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnableColorOutput_NotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if EnableColorOutput(f) {
		t.Error("regular file must not get colors")
	}
}

func TestEnableColorOutput_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if EnableColorOutput(os.Stdout) {
		t.Error("NO_COLOR must disable colors even when empty")
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ChainCare_Presentation", "ChainCare_Presentation"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"", "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
