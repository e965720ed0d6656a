package repository

import "context"

// Result is the one emission of a Single.
type Result[T any] struct {
	Value T
	Err   error
}

// Single is a cold, single-shot asynchronous value: every subscription runs
// the underlying computation once and delivers exactly one Result.
type Single[T any] struct {
	fn func(ctx context.Context) (T, error)
}

// Defer builds a Single that runs fn on each subscription.
func Defer[T any](fn func(ctx context.Context) (T, error)) *Single[T] {
	return &Single[T]{fn: fn}
}

// Just builds a Single that yields value.
func Just[T any](value T) *Single[T] {
	return Defer(func(context.Context) (T, error) {
		return value, nil
	})
}

// Fail builds a Single that yields err.
func Fail[T any](err error) *Single[T] {
	return Defer(func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// Subscribe starts the computation in its own goroutine. The returned channel
// receives exactly one Result and is then closed.
func (s *Single[T]) Subscribe(ctx context.Context) <-chan Result[T] {
	out := make(chan Result[T], 1)
	go func() {
		defer close(out)
		value, err := s.fn(ctx)
		out <- Result[T]{Value: value, Err: err}
	}()
	return out
}

// Await subscribes and waits for the result or for ctx to end.
func (s *Single[T]) Await(ctx context.Context) (T, error) {
	select {
	case res := <-s.Subscribe(ctx):
		return res.Value, res.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Map transforms the value of s, passing errors through untouched.
func Map[T, U any](s *Single[T], fn func(T) U) *Single[U] {
	return Defer(func(ctx context.Context) (U, error) {
		value, err := s.fn(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(value), nil
	})
}
