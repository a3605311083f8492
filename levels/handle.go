package levels

import (
	"context"
	"fmt"
	"os"
)

// Handle is a level set being loaded in the background. Game code polls
// Levels each frame and skips its work until the set is ready.
type Handle struct {
	done chan struct{}
	set  *Set
	err  error
}

// LoadAsync starts reading and parsing on a goroutine.
func LoadAsync(ctx context.Context, open func() ([]byte, error)) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		data, err := open()
		if err != nil {
			h.err = fmt.Errorf("levels: open: %w", err)
			return
		}
		if err := ctx.Err(); err != nil {
			h.err = err
			return
		}
		h.set, h.err = Parse(data)
	}()
	return h
}

// Ready wraps an already loaded set.
func Ready(set *Set) *Handle {
	h := &Handle{done: make(chan struct{}), set: set}
	close(h.done)
	return h
}

// OpenFile returns an opener for LoadAsync that reads path.
func OpenFile(path string) func() ([]byte, error) {
	return func() ([]byte, error) {
		return os.ReadFile(path)
	}
}

// Levels returns the set once loading succeeded.
func (h *Handle) Levels() (*Set, bool) {
	if h == nil {
		return nil, false
	}
	select {
	case <-h.done:
		return h.set, h.err == nil && h.set != nil
	default:
		return nil, false
	}
}

// Err returns the load failure, or nil while loading or after success.
func (h *Handle) Err() error {
	if h == nil {
		return nil
	}
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Wait blocks until loading finishes or ctx is done.
func (h *Handle) Wait(ctx context.Context) (*Set, error) {
	select {
	case <-h.done:
		return h.set, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
