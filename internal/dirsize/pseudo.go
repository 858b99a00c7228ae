package dirsize

import (
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultPseudoPrefixes returns the virtual filesystem roots skipped on this platform.
func DefaultPseudoPrefixes() []string {
	if runtime.GOOS == "windows" {
		return nil
	}

	return []string{"/proc", "/sys", "/dev"}
}

// pseudoMatcher reports whether a path lies under a pseudo-filesystem root.
type pseudoMatcher []string

func newPseudoMatcher(prefixes []string) pseudoMatcher {
	if prefixes == nil {
		prefixes = DefaultPseudoPrefixes()
	}

	m := make(pseudoMatcher, 0, len(prefixes))

	for _, p := range prefixes {
		if p == "" {
			continue
		}

		m = append(m, filepath.Clean(p))
	}

	return m
}

// match expects a cleaned absolute path. Matching is per path component,
// so "/proc/1" is under "/proc" but "/processes" is not. This is stricter than
// a plain string-prefix test, which would also skip "/processes".
func (m pseudoMatcher) match(path string) bool {
	for _, p := range m {
		if path == p {
			return true
		}

		prefix := p
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}

		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
