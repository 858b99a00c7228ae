package dirsize

import (
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Sizer sums directory trees with a recursive fork-join.
//
// A single worker pool is shared by every level of the recursion. Entries that
// cannot get a worker slot are processed inline by the calling goroutine, so a
// directory never waits for a slot it cannot obtain and the recursion cannot
// deadlock no matter how deep or wide the tree is.
type Sizer struct {
	pool   *semaphore.Weighted
	pseudo pseudoMatcher
	log    logger
}

// NewSizer creates a Sizer configured from opt.
func NewSizer(opt Options) *Sizer {
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &Sizer{
		pool:   semaphore.NewWeighted(int64(workers)),
		pseudo: newPseudoMatcher(opt.PseudoPrefixes),
		log:    newLogger(opt.Debug, opt.Log),
	}
}

// Dir returns the total size in bytes of all regular files reachable from path.
// It never fails: unreadable directories and entries contribute 0.
func (s *Sizer) Dir(path string) uint64 {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	} else {
		path = filepath.Clean(path)
	}

	return s.dir(path)
}

// dir expects a cleaned absolute path.
func (s *Sizer) dir(path string) uint64 {
	if s.pseudo.match(path) {
		s.log.printf("[debug]: skipping pseudo-filesystem: %s\n", path)

		return 0
	}

	// os.ReadDir returns the entries read before a failure, which are still counted.
	entries, err := os.ReadDir(path)
	if err != nil {
		s.log.printf("[debug]: error reading directory %s: %v\n", path, err)
	}

	if len(entries) == 0 {
		return 0
	}

	sizes := make([]uint64, len(entries))

	var g errgroup.Group

	for i, entry := range entries {
		work := func() {
			sizes[i] = s.entry(path, entry)
		}

		if !s.pool.TryAcquire(1) {
			work()

			continue
		}

		g.Go(func() error {
			defer s.pool.Release(1)
			work()

			return nil
		})
	}

	_ = g.Wait() // Workers never return errors

	return sum(sizes)
}

// entry returns the contribution of a single directory entry.
//
//nolint:varnamelen // d is standard for DirEntry
func (s *Sizer) entry(parent string, d os.DirEntry) uint64 {
	path := filepath.Join(parent, d.Name())

	switch {
	case d.IsDir():
		return s.dir(path)
	case d.Type().IsRegular():
		info, err := d.Info()
		if err != nil {
			s.log.printf("[debug]: error reading file info %s: %v\n", path, err)

			return 0
		}

		return fileBytes(info.Size())
	default:
		return 0
	}
}
