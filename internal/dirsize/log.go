package dirsize

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// logger provides conditional debug output. It is safe for use from
// concurrent traversal goroutines.
type logger struct {
	enabled bool
	mu      *sync.Mutex
	w       io.Writer
}

func newLogger(enabled bool, w io.Writer) logger {
	if w == nil {
		w = os.Stderr
	}

	return logger{enabled: enabled, mu: &sync.Mutex{}, w: w}
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if !l.enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.w, format, args...)
}
