package seriesassert

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Recorder is an assert.TestingT that keeps failure messages instead of
// reporting them, for running checks outside of go test.
type Recorder struct {
	mu     sync.Mutex
	Errors []string
}

func (r *Recorder) Errorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Errors) > 0
}

// Err joins every recorded message, or returns nil.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Errors) == 0 {
		return nil
	}
	return errors.New(strings.Join(r.Errors, ", "))
}

// Reset forgets every recorded message.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = nil
}
