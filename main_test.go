package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cpp2py/pkg/translator"
)

func TestTranslateFile(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "prog.cpp")
	src := "int main() {\n    cout << \"hi\" << endl;\n    return 0;\n}\n"
	if err := os.WriteFile(inPath, []byte(src), 0o644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	outPath := filepath.Join(dir, "prog.py")
	if err := translateFile(inPath, outPath, translator.Options{}); err != nil {
		t.Fatalf("translateFile failed: %v", err)
	}

	outBytes, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	expected := translator.Header + "\nprint(\"hi\")\n"
	if string(outBytes) != expected {
		t.Errorf("Output = %q, expected %q", string(outBytes), expected)
	}
}

func TestTranslateFileSyntaxError(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "broken.cpp")
	if err := os.WriteFile(inPath, []byte("int x = ;"), 0o644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	outPath := filepath.Join(dir, "broken.py")
	err := translateFile(inPath, outPath, translator.Options{})
	if err == nil {
		t.Fatal("Expected a translation error, got none")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("Unexpected error: %v", err)
	}

	// The output file still exists, holding only the header.
	outBytes, rerr := os.ReadFile(outPath)
	if rerr != nil {
		t.Fatalf("Expected a header-only output file: %v", rerr)
	}
	if string(outBytes) != translator.Header+"\n\n" {
		t.Errorf("Output = %q, expected header only", string(outBytes))
	}
}

func TestTranslateFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := translateFile(filepath.Join(dir, "absent.cpp"), filepath.Join(dir, "absent.py"), translator.Options{})
	if err == nil {
		t.Fatal("Expected a read error, got none")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpp2py.toml")
	if err := os.WriteFile(path, []byte("Strict = true\nJobs = 2\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if !cfg.Strict {
		t.Error("Expected Strict to be true")
	}
	if cfg.Jobs != 2 {
		t.Errorf("Jobs = %d, expected 2", cfg.Jobs)
	}
	if cfg.NoColor {
		t.Error("Expected NoColor to keep its default")
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cpp2py.toml")
	if err := os.WriteFile(path, []byte("Verbosity = 3\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := defaultConfig()
	err := loadConfig(path, &cfg)
	if err == nil {
		t.Fatal("Expected an error for an unknown field, got none")
	}
	if !strings.Contains(err.Error(), "Verbosity") {
		t.Errorf("Unexpected error: %v", err)
	}
}
