package dirsize

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Engine names accepted in Options.Engine.
const (
	// EngineRecursive sums directories with a bounded recursive fork-join.
	EngineRecursive = "recursive"
	// EngineFastwalk sums directories with a parallel fastwalk traversal.
	EngineFastwalk = "fastwalk"
)

// ErrNotExist is returned by Run when the target path cannot be found.
var ErrNotExist = errors.New("path does not exist")

// Kind classifies a target path.
type Kind string

const (
	// KindFile is a regular file target.
	KindFile Kind = "file"
	// KindDirectory is a directory target, or any other non-regular target.
	KindDirectory Kind = "directory"
	// KindNonexistent is a path that could not be stat'ed.
	KindNonexistent Kind = "nonexistent"
)

// Options configures size computation.
type Options struct {
	// Path is the file or directory to measure.
	Path string
	// Engine selects the directory aggregator (EngineRecursive or EngineFastwalk).
	Engine string
	// Workers caps concurrent traversal goroutines (0 = GOMAXPROCS).
	Workers int
	// PseudoPrefixes overrides the pseudo-filesystem roots (nil = platform default).
	PseudoPrefixes []string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Log receives debug output (nil = os.Stderr).
	Log io.Writer
}

// Result is the outcome of measuring one target.
type Result struct {
	// Path is the target path as given.
	Path string `json:"path"`
	// Kind is the classification of Path.
	Kind Kind `json:"kind"`
	// Bytes is the total apparent size.
	Bytes uint64 `json:"bytes"`
	// Elapsed is the time spent measuring.
	Elapsed time.Duration `json:"elapsed"`
}

// ReadError reports a top-level measurement that could not be performed.
// Callers treat it as recoverable: it is reported, not fatal.
type ReadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Kind == KindDirectory {
		return fmt.Sprintf("reading directory %q: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("reading file %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
