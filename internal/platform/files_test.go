package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory at %s", dir)
	}

	// Second call on an existing directory is a no-op.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Existing directory should not error: %v", err)
	}
}

func TestUniqueExportPath(t *testing.T) {
	a := UniqueExportPath("/tmp/exports", "diagram", ".svg")
	b := UniqueExportPath("/tmp/exports", "diagram", ".svg")

	if a == b {
		t.Error("Consecutive export paths must differ")
	}
	if !strings.HasPrefix(a, filepath.Join("/tmp/exports", "diagram-")) {
		t.Errorf("Unexpected path shape: %s", a)
	}
	if !strings.HasSuffix(a, ".svg") {
		t.Errorf("Expected .svg suffix: %s", a)
	}
}
