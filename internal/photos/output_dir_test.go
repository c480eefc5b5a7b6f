package photos

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOutputDirName(t *testing.T) {
	tests := []struct {
		when     time.Time
		expected string
	}{
		{time.Date(2024, 3, 7, 9, 5, 59, 0, time.UTC), "Transformed-20240307-0905"},
		{time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC), "Transformed-20231231-2359"},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "Transformed-20250101-0000"},
	}

	for _, tt := range tests {
		if result := OutputDirName(tt.when); result != tt.expected {
			t.Errorf("OutputDirName(%v) = %s, expected %s", tt.when, result, tt.expected)
		}
	}
}

func TestOutputDirPath(t *testing.T) {
	when := time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC)
	expected := filepath.Join("/photos", "Transformed-20240307-0905")
	if result := OutputDirPath("/photos", when); result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestEnsureOutputDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Transformed-20240307-0905")

	if err := EnsureOutputDir(path); err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	if err := EnsureOutputDir(path); err != nil {
		t.Fatalf("Second call failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("Expected directory at %s", path)
	}
}

func TestEnsureOutputDir_PathIsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "Transformed-20240307-0905", []byte("not a dir"))

	err := EnsureOutputDir(path)
	if !errors.Is(err, ErrEncodeOrWrite) {
		t.Errorf("Expected encode or write error, got: %v", err)
	}
}
