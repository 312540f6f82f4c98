package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(contents)
}

func TestRewriteMakefiles(t *testing.T) {
	root := t.TempDir()

	writeTestFile(t, filepath.Join(root, "a", "Makefile"), "run:\n\t./venv/bin/foo\n")
	writeTestFile(t, filepath.Join(root, "b", "Makefile"), "test:\n\t./venv/bin/foo --all\n")
	writeTestFile(t, filepath.Join(root, "b", "notes.txt"), "./venv/bin/foo\n")
	writeTestFile(t, filepath.Join(root, "c", "Makefile"), "clean:\n\trm -rf build\n")

	rewritten, err := RewriteMakefiles(root, "/bin", "/Scripts")
	assert.NoError(t, err)
	assert.Len(t, rewritten, 2)

	assert.Equal(t, "run:\n\t./venv/Scripts/foo\n", readTestFile(t, filepath.Join(root, "a", "Makefile")))
	assert.Equal(t, "test:\n\t./venv/Scripts/foo --all\n", readTestFile(t, filepath.Join(root, "b", "Makefile")))

	// Only files named exactly Makefile are touched
	assert.Equal(t, "./venv/bin/foo\n", readTestFile(t, filepath.Join(root, "b", "notes.txt")))

	// Makefiles without the substring are not rewritten
	assert.Equal(t, "clean:\n\trm -rf build\n", readTestFile(t, filepath.Join(root, "c", "Makefile")))
	assert.NotContains(t, rewritten, filepath.Join(root, "c", "Makefile"))
}

func TestRewriteMakefilesReplacesEveryOccurrence(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "Makefile")
	writeTestFile(t, path, "./venv/bin/pip install -e .\n./venv/bin/pytest\n")

	rewritten, err := RewriteMakefiles(root, "/bin", "/Scripts")
	assert.NoError(t, err)
	assert.Equal(t, []string{path}, rewritten)
	assert.Equal(t, "./venv/Scripts/pip install -e .\n./venv/Scripts/pytest\n", readTestFile(t, path))
}

func TestRewriteMakefilesEmptyTree(t *testing.T) {
	rewritten, err := RewriteMakefiles(t.TempDir(), "/bin", "/Scripts")
	assert.NoError(t, err)
	assert.Empty(t, rewritten)
}

func TestRewriteMakefilesMissingRoot(t *testing.T) {
	_, err := RewriteMakefiles(filepath.Join(t.TempDir(), "missing"), "/bin", "/Scripts")
	assert.Error(t, err)
}
