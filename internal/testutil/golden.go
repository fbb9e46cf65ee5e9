package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Fixture returns the path of a file under the repository's testdata directory.
func Fixture(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "testdata", name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("missing fixture %s: %v", name, err)
	}
	return path
}

// AssertGolden compares output with testdata/<goldenName>. Setting
// UPDATE_GOLDEN rewrites the golden file first.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join(RepoRoot(t), "testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	if string(data) != output {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", goldenName, string(data), output)
	}
}

// RepoRoot walks up from the working directory to the directory holding go.mod.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
