// internal/core/services/debounce.go
package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrSuperseded reports that a newer call arrived while this one was
// waiting out the quiet window. Callers drop the result silently.
var ErrSuperseded = errors.New("superseded by newer call")

// Debouncer coalesces rapid repeated calls, as a keystroke stream from a
// search box produces. Each call waits out the quiet window; only the call
// that is still the newest when its window elapses runs fn, every older
// call returns ErrSuperseded without running anything.
type Debouncer[T any] struct {
	window time.Duration
	seq    atomic.Uint64
}

// NewDebouncer creates a debouncer with the given quiet window.
func NewDebouncer[T any](window time.Duration) *Debouncer[T] {
	return &Debouncer[T]{window: window}
}

// Do runs fn once the quiet window elapses without a newer call.
func (d *Debouncer[T]) Do(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	mine := d.seq.Add(1)

	timer := time.NewTimer(d.window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-timer.C:
	}

	if d.seq.Load() != mine {
		return zero, ErrSuperseded
	}

	return fn(ctx)
}
