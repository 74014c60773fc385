package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collect(t *testing.T, w *Walker, root string, ignores []string) []string {
	t.Helper()
	var paths []string
	for path, err := range w.WalkFiles(root, ignores) {
		require.NoError(t, err)
		paths = append(paths, path)
	}
	return paths
}

func TestWalkFilesSkipsBuildAndVCSDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.c"), "int main(){}")
	writeFile(t, filepath.Join(root, "src", "util.c"), "")
	writeFile(t, filepath.Join(root, ".git", "config"), "")
	writeFile(t, filepath.Join(root, "target", "debug", "main.o"), "")

	paths := collect(t, NewWalker(), root, nil)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "main.c"),
		filepath.Join(root, "src", "util.c"),
	}, paths)
}

func TestWalkFilesHonorsIgnoreGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.c"), "")
	writeFile(t, filepath.Join(root, "vendor", "lib.c"), "")
	writeFile(t, filepath.Join(root, "third_party", "dep.c"), "")

	paths := collect(t, NewWalker(), root, []string{"vendor", "third_*"})
	assert.ElementsMatch(t, []string{filepath.Join(root, "main.c")}, paths)
}

func TestWalkFilesYieldsErrorForMissingRoot(t *testing.T) {
	w := NewWalker()
	var got error
	for _, err := range w.WalkFiles(filepath.Join(t.TempDir(), "nope"), nil) {
		if err != nil {
			got = err
		}
	}
	assert.Error(t, got)
}

func TestComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.c")
	b := filepath.Join(dir, "b.c")
	writeFile(t, a, "int main() { return 0; }")
	writeFile(t, b, "int main() { return 0; }")

	h := NewHasher()
	hashA, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := h.ComputeFileHash(b)
	require.NoError(t, err)

	assert.Len(t, hashA, 16)
	assert.Equal(t, hashA, hashB, "identical content must hash identically")

	writeFile(t, b, "int main() { return 1; }")
	hashB2, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB2)
}

func TestComputeFileHashMissingFile(t *testing.T) {
	_, err := NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing.c"))
	assert.Error(t, err)
}
