package dirsize

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	dir := setupTestDir(t, []testFile{{path: "f", size: 1}})

	assert.Equal(t, KindDirectory, Classify(dir))
	assert.Equal(t, KindFile, Classify(filepath.Join(dir, "f")))
	assert.Equal(t, KindNonexistent, Classify(filepath.Join(dir, "missing")))
}

func TestRunNonRegularTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no device files")
	}

	assert.Equal(t, KindDirectory, Classify(os.DevNull))

	for _, engine := range []string{EngineRecursive, EngineFastwalk} {
		result, err := Run(Options{Path: os.DevNull, Engine: engine, PseudoPrefixes: noPseudo()})
		require.NoError(t, err, engine)
		assert.Equal(t, KindDirectory, result.Kind, engine)
		assert.Equal(t, uint64(0), result.Bytes, engine)
	}
}

func TestRun(t *testing.T) {
	dir := setupTestDir(t, []testFile{
		{path: "data.bin", size: 2048},
		{path: "sub/more.bin", size: 500},
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, "data.bin")

		result, err := Run(Options{Path: path})
		require.NoError(t, err)
		assert.Equal(t, KindFile, result.Kind)
		assert.Equal(t, uint64(2048), result.Bytes)
		assert.Equal(t, path, result.Path)
	})

	for _, engine := range []string{"", EngineRecursive, EngineFastwalk} {
		t.Run("directory engine="+engine, func(t *testing.T) {
			result, err := Run(Options{Path: dir, Engine: engine, PseudoPrefixes: noPseudo()})
			require.NoError(t, err)
			assert.Equal(t, KindDirectory, result.Kind)
			assert.Equal(t, uint64(2548), result.Bytes)
		})
	}

	t.Run("nonexistent", func(t *testing.T) {
		_, err := Run(Options{Path: filepath.Join(dir, "missing")})
		require.ErrorIs(t, err, ErrNotExist)

		var readErr *ReadError
		assert.False(t, errors.As(err, &readErr))
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, err := Run(Options{Path: dir, Engine: "bogus"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown engine")
	})

	t.Run("debug output", func(t *testing.T) {
		var buf bytes.Buffer

		_, err := Run(Options{Path: dir, Debug: true, Log: &buf, PseudoPrefixes: noPseudo()})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "[debug]:")
		assert.Contains(t, buf.String(), "classified as directory")
	})
}

func TestReadError(t *testing.T) {
	fileErr := &ReadError{Kind: KindFile, Path: "a", Err: fs.ErrPermission}
	assert.Equal(t, `reading file "a": permission denied`, fileErr.Error())
	require.ErrorIs(t, fileErr, fs.ErrPermission)

	dirErr := &ReadError{Kind: KindDirectory, Path: "b", Err: fs.ErrPermission}
	assert.Equal(t, `reading directory "b": permission denied`, dirErr.Error())
}
