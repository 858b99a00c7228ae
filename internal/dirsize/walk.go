package dirsize

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// Walk returns the total size of the regular files below root using a parallel
// fastwalk traversal. Errors on individual entries are absorbed; an error is
// returned only when the walk itself cannot run.
func Walk(root string, opt Options) (uint64, error) {
	log := newLogger(opt.Debug, opt.Log)
	pseudo := newPseudoMatcher(opt.PseudoPrefixes)

	abs, err := filepath.Abs(root)
	if err != nil {
		return 0, fmt.Errorf("resolving absolute path: %w", err)
	}

	if pseudo.match(abs) {
		log.printf("[debug]: skipping pseudo-filesystem: %s\n", abs)

		return 0, nil
	}

	collector := &collector{}

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: opt.Workers,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)
			collector.addError()

			return nil // Silently skip errors
		}

		if d.IsDir() {
			if path != abs && pseudo.match(path) {
				log.printf("[debug]: skipping pseudo-filesystem: %s\n", path)

				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.printf("[debug]: error reading file info %s: %v\n", path, err)
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		collector.add(fileBytes(info.Size()))

		return nil
	})
	if walkErr != nil {
		return 0, walkErr
	}

	total, files, errs := collector.finalize()
	log.printf("[debug]: fastwalk visited %d files, %d errors\n", files, errs)

	return total, nil
}
