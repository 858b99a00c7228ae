package dirsize

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testFile represents a file of a given size to be created in a temporary directory.
type testFile struct {
	path string
	size int
}

// setupTestDir creates a temporary directory with the given files and empty
// directories and returns its path.
func setupTestDir(t *testing.T, files []testFile, dirs ...string) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "dirsize-")
	require.NoError(t, err)
	t.Cleanup(func() {
		os.RemoveAll(tmpDir)
	})

	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0o755))
	}

	for _, v := range files {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, filepath.Dir(v.path)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, v.path), make([]byte, v.size), 0o644))
	}

	return tmpDir
}

// referenceSize sums regular files below root sequentially.
func referenceSize(t *testing.T, root string) uint64 {
	t.Helper()

	var total uint64

	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}

			total += uint64(info.Size())
		}

		return nil
	})
	require.NoError(t, err)

	return total
}

// noPseudo disables pseudo-filesystem skipping so temp dirs under any root are walked.
func noPseudo() []string {
	return []string{}
}
