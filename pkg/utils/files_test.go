package utils

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGetPathInfo(t *testing.T) {
	fullPath, parentDir, err := GetPathInfo("sample.cpp")
	if err != nil {
		t.Fatalf("GetPathInfo failed: %v", err)
	}
	if !filepath.IsAbs(fullPath) {
		t.Errorf("Full path %q is not absolute", fullPath)
	}
	if !strings.HasSuffix(fullPath, "sample.cpp") {
		t.Errorf("Full path %q lost the file name", fullPath)
	}
	if parentDir != filepath.Dir(fullPath) {
		t.Errorf("Parent dir %q does not match %q", parentDir, filepath.Dir(fullPath))
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"sample.cpp", "sample.py"},
		{"dir/prog.cc", "dir/prog.py"},
		{"noext", "noext.py"},
		{"a/b.v2.cpp", "a/b.v2.py"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.expected {
			t.Errorf("OutputPath(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
