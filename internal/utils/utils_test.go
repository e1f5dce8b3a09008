package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClip(t *testing.T) {
	tests := []struct {
		in       string
		n        int
		expected string
	}{
		{"Milk", 10, "Milk"},
		{"Fresh Milk", 10, "Fresh Milk"},
		{"Fresh Milk 1L", 10, "Fresh Mil…"},
		{"Ñandú", 3, "Ña…"},
	}
	for _, tt := range tests {
		if got := Clip(tt.in, tt.n); got != tt.expected {
			t.Errorf("Clip(%q, %d) = %q, expected %q", tt.in, tt.n, got, tt.expected)
		}
	}
}

func TestPrintGoesToOutput(t *testing.T) {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	defer func() { Output = old }()

	PrintWarning("table %s is corrupt", "sale")
	if !strings.Contains(buf.String(), "table sale is corrupt") {
		t.Errorf("Unexpected output %q", buf.String())
	}
}

func TestFileAndDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pos.yml")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(file) {
		t.Error("File should exist")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("Missing file should not exist")
	}
	if !DirExists(dir) {
		t.Error("Dir should exist")
	}
	if DirExists(file) {
		t.Error("File is not a dir")
	}
}
