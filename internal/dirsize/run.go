package dirsize

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Classify resolves path to a Kind. Symlinks are followed; any stat failure
// is reported as KindNonexistent. Only regular files are KindFile: devices,
// sockets and pipes are measured as directories and therefore count as 0.
func Classify(path string) Kind {
	kind, _ := classify(path)

	return kind
}

func classify(path string) (Kind, fs.FileInfo) {
	info, err := os.Stat(path)

	switch {
	case err != nil:
		return KindNonexistent, nil
	case info.Mode().IsRegular():
		return KindFile, info
	default:
		return KindDirectory, info
	}
}

// Run measures opt.Path.
//
// A missing path yields an error wrapping ErrNotExist. A target that exists but
// cannot be measured yields a *ReadError. Inside a directory tree no error is
// ever reported: inaccessible parts simply contribute nothing.
func Run(opt Options) (*Result, error) {
	log := newLogger(opt.Debug, opt.Log)

	if opt.Engine == "" {
		opt.Engine = EngineRecursive
	}

	if opt.Engine != EngineRecursive && opt.Engine != EngineFastwalk {
		return nil, fmt.Errorf("unknown engine: %s", opt.Engine)
	}

	kind, info := classify(opt.Path)
	log.printf("[debug]: %q classified as %s\n", opt.Path, kind)

	start := time.Now()

	var (
		total uint64
		err   error
	)

	switch kind {
	case KindNonexistent:
		return nil, fmt.Errorf("%w: %q", ErrNotExist, opt.Path)
	case KindFile:
		total, err = fileSize(opt.Path)
	case KindDirectory:
		// Opening a pipe would block, so non-directories are never listed.
		if info.IsDir() {
			total, err = dirSize(opt)
		}
	}

	if err != nil {
		return nil, &ReadError{Kind: kind, Path: opt.Path, Err: err}
	}

	elapsed := time.Since(start)

	//nolint:gosec // Comma only formats; saturated totals are not realistic
	log.printf("[debug]: %s total, %s bytes, engine %s, elapsed %v\n",
		humanize.IBytes(total), humanize.Comma(int64(total)), opt.Engine, elapsed)

	return &Result{
		Path:    opt.Path,
		Kind:    kind,
		Bytes:   total,
		Elapsed: elapsed,
	}, nil
}

func fileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}

	return fileBytes(info.Size()), nil
}

func dirSize(opt Options) (uint64, error) {
	if opt.Engine == EngineFastwalk {
		return Walk(opt.Path, opt)
	}

	return NewSizer(opt).Dir(opt.Path), nil
}
