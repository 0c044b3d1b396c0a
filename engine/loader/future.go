package loader

import (
	"context"
	"sync"
)

// Result is the outcome of an asynchronous load.
type Result[T any] struct {
	Value T
	Err   error
}

// Dispatcher runs completion callbacks on the goroutine that owns the scene.
// The engine implements it with its frame mailbox.
type Dispatcher interface {
	// Post queues fn to run on the owning goroutine.
	Post(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Post calls d(fn).
func (d DispatcherFunc) Post(fn func()) {
	d(fn)
}

// Future is a single-assignment container for a load result.
// It resolves exactly once; later resolutions are ignored.
type Future[T any] struct {
	once   sync.Once
	done   chan struct{}
	result Result[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved returns a future that has already completed with the given value and error.
//
// Parameters:
//   - value: the result value
//   - err: the result error
//
// Returns:
//   - *Future[T]: the completed future
func Resolved[T any](value T, err error) *Future[T] {
	f := newFuture[T]()
	f.resolve(value, err)
	return f
}

// resolve completes the future. Only the first call has any effect.
func (f *Future[T]) resolve(value T, err error) bool {
	resolved := false
	f.once.Do(func() {
		f.result = Result[T]{Value: value, Err: err}
		close(f.done)
		resolved = true
	})
	return resolved
}

// Done returns a channel that is closed once the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Poll returns the result without blocking.
//
// Returns:
//   - Result[T]: the result, zero while pending
//   - bool: true once the future has resolved
func (f *Future[T]) Poll() (Result[T], bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return Result[T]{}, false
	}
}

// Await blocks until the future resolves or ctx is done.
//
// Parameters:
//   - ctx: bounds the wait
//
// Returns:
//   - T: the loaded value
//   - error: the load error or ctx.Err()
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result.Value, f.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then arranges for exactly one of the callbacks to run once the future resolves.
// Callbacks are posted through d; a nil dispatcher runs them on a background goroutine.
// Either callback may be nil.
//
// Parameters:
//   - d: where the callback runs
//   - onSuccess: called with the value when the load succeeded
//   - onFailure: called with the error when the load failed
func (f *Future[T]) Then(d Dispatcher, onSuccess func(T), onFailure func(error)) {
	complete := func() {
		if f.result.Err != nil {
			if onFailure != nil {
				onFailure(f.result.Err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(f.result.Value)
		}
	}
	go func() {
		<-f.done
		if d == nil {
			complete()
			return
		}
		d.Post(complete)
	}()
}
