// Package task provides the deferred computation container variant. A
// Task describes work that has not started yet: building or combining
// tasks never runs anything, and a task only executes when it is
// finally invoked with a context. Unlike the synchronous containers in
// the fn package, Task's applicative capability runs independent
// operands concurrently.
//
// Tasks are expected to honor their context: cancellation, deadline
// and timeout semantics all flow through the context the task is
// invoked with.
package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrTimeout is returned by a task wrapped in WithTimeout when
	// the deadline elapses before the task produces a result.
	ErrTimeout = errors.New("timeout elapsed before task completed")

	// ErrExhausted is returned by a task wrapped in Retry when every
	// attempt has failed.
	ErrExhausted = errors.New("all retry attempts failed")
)

// Task is a deferred computation that eventually produces a value of
// type A or fails with an error. The computation does not begin until
// the task is invoked.
type Task[A any] func(ctx context.Context) (A, error)

// New wraps a context-aware function as a Task. It exists for symmetry
// with the other constructors; the conversion is free.
func New[A any](f func(ctx context.Context) (A, error)) Task[A] {
	return f
}

// Resolve lifts an already computed value into a task that succeeds
// immediately. It is the of capability for this variant.
func Resolve[A any](a A) Task[A] {
	return func(_ context.Context) (A, error) {
		return a, nil
	}
}

// Reject builds a task that fails immediately with the given error.
func Reject[A any](err error) Task[A] {
	return func(_ context.Context) (A, error) {
		var zero A
		return zero, err
	}
}

// Run executes the task. It reads better at the end of a composition
// chain than invoking the function value directly.
func (t Task[A]) Run(ctx context.Context) (A, error) {
	return t(ctx)
}

// Map is the functor capability for Task: the transformation is staged
// after the deferred computation without starting it.
func Map[A, B any](f func(A) B) func(Task[A]) Task[B] {
	return func(t Task[A]) Task[B] {
		return func(ctx context.Context) (B, error) {
			a, err := t(ctx)
			if err != nil {
				var zero B
				return zero, err
			}

			return f(a), nil
		}
	}
}

// Chain is the monad capability for Task: the continuation receives
// the first task's result and decides what runs next. The two steps
// are necessarily sequential.
func Chain[A, B any](f func(A) Task[B]) func(Task[A]) Task[B] {
	return func(t Task[A]) Task[B] {
		return func(ctx context.Context) (B, error) {
			a, err := t(ctx)
			if err != nil {
				var zero B
				return zero, err
			}

			return f(a)(ctx)
		}
	}
}

// Then sequences two tasks, discarding the first result. It is Chain
// with a constant continuation, minus the closure.
func Then[A, B any](ta Task[A], tb Task[B]) Task[B] {
	return func(ctx context.Context) (B, error) {
		if _, err := ta(ctx); err != nil {
			var zero B
			return zero, err
		}

		return tb(ctx)
	}
}

// Ap is the applicative capability for Task. The function operand and
// the argument operand run concurrently in their own goroutines; Ap
// imposes no ordering between them beyond waiting for both before
// combining the results. The first operand to fail cancels the other
// through the shared context, and its error becomes the task's error.
func Ap[A, B any](tf Task[func(A) B], ta Task[A]) Task[B] {
	return func(ctx context.Context) (B, error) {
		var (
			f func(A) B
			a A
		)

		eg, ectx := errgroup.WithContext(ctx)

		eg.Go(func() error {
			var err error
			f, err = tf(ectx)
			return err
		})

		eg.Go(func() error {
			var err error
			a, err = ta(ectx)
			return err
		})

		if err := eg.Wait(); err != nil {
			var zero B
			return zero, err
		}

		return f(a), nil
	}
}

// LiftA2 combines two tasks with a curried binary function. Both
// operands run concurrently. The helper is itself curried so that
// partially applied forms can be reused.
func LiftA2[A, B, C any](
	f func(A) func(B) C) func(Task[A]) func(Task[B]) Task[C] {

	return func(ta Task[A]) func(Task[B]) Task[C] {
		return func(tb Task[B]) Task[C] {
			return Ap(Map(f)(ta), tb)
		}
	}
}

// LiftA3 combines three tasks with a curried ternary function. All
// three operands run concurrently.
func LiftA3[A, B, C, D any](
	f func(A) func(B) func(C) D) func(Task[A]) func(Task[B]) func(Task[C]) Task[D] {

	return func(ta Task[A]) func(Task[B]) func(Task[C]) Task[D] {
		return func(tb Task[B]) func(Task[C]) Task[D] {
			return func(tc Task[C]) Task[D] {
				return Ap(Ap(Map(f)(ta), tb), tc)
			}
		}
	}
}

// Sequence runs a slice of tasks concurrently and collects their
// results in the original order. The first failure cancels the
// remaining tasks and becomes the combined task's error.
func Sequence[A any](tasks []Task[A]) Task[[]A] {
	return func(ctx context.Context) ([]A, error) {
		out := make([]A, len(tasks))

		eg, ectx := errgroup.WithContext(ctx)
		for i, t := range tasks {
			i, t := i, t
			eg.Go(func() error {
				a, err := t(ectx)
				if err != nil {
					return err
				}

				out[i] = a
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return nil, err
		}

		return out, nil
	}
}

// Traverse maps every element of the slice to a task and runs the
// tasks concurrently, at most limit at a time. A limit of zero or
// less means unbounded. Results keep the input order.
func Traverse[A, B any](as []A, f func(A) Task[B], limit int) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		log.Debugf("Traversing %d tasks, concurrency limit %d",
			len(as), limit)

		out := make([]B, len(as))

		eg, ectx := errgroup.WithContext(ctx)
		if limit > 0 {
			eg.SetLimit(limit)
		}

		for i, a := range as {
			i, a := i, a
			eg.Go(func() error {
				b, err := f(a)(ectx)
				if err != nil {
					return err
				}

				out[i] = b
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return nil, err
		}

		return out, nil
	}
}

// After builds a task that resolves with the given value once the
// delay has elapsed, or fails early if the context is done first.
func After[A any](d time.Duration, a A) Task[A] {
	return func(ctx context.Context) (A, error) {
		select {
		case <-ctx.Done():
			var zero A
			return zero, ctx.Err()

		case <-time.After(d):
			return a, nil
		}
	}
}

// WithTimeout bounds a task's execution time. The task runs under a
// child context carrying the deadline; if it has not produced a result
// when the deadline elapses, the combined task fails with ErrTimeout
// and the abandoned computation is left to observe its cancelled
// context. A parent deadline that fires first is reported as the
// parent's own context error, not as ErrTimeout.
func WithTimeout[A any](d time.Duration) func(Task[A]) Task[A] {
	return func(t Task[A]) Task[A] {
		return func(parent context.Context) (A, error) {
			ctx, cancel := context.WithTimeout(parent, d)
			defer cancel()

			// Our deadline is only the binding one if the parent
			// does not already expire at or before it.
			deadline, _ := ctx.Deadline()
			parentDeadline, parentHas := parent.Deadline()
			ownDeadline := !parentHas ||
				deadline.Before(parentDeadline)

			type result struct {
				a   A
				err error
			}

			// Buffered so the worker can complete after we stop
			// listening.
			done := make(chan result, 1)
			go func() {
				a, err := t(ctx)
				done <- result{a: a, err: err}
			}()

			select {
			case r := <-done:
				return r.a, r.err

			case <-ctx.Done():
				var zero A
				if ownDeadline && errors.Is(
					ctx.Err(), context.DeadlineExceeded,
				) {

					log.Debugf("Task abandoned after %v", d)
					return zero, ErrTimeout
				}

				return zero, ctx.Err()
			}
		}
	}
}

// Retry reruns a failing task up to attempts times, waiting delay
// between attempts. Context cancellation interrupts the wait. When
// every attempt fails, the combined task fails with an error wrapping
// ErrExhausted that records the final attempt's error. A non-positive
// attempt count never runs the task and fails with ErrExhausted.
func Retry[A any](attempts int, delay time.Duration) func(Task[A]) Task[A] {
	return func(t Task[A]) Task[A] {
		return func(ctx context.Context) (A, error) {
			var (
				zero    A
				lastErr error
			)

			if attempts < 1 {
				return zero, fmt.Errorf("%w: %d attempts "+
					"configured", ErrExhausted, attempts)
			}

			for i := 0; i < attempts; i++ {
				a, err := t(ctx)
				if err == nil {
					return a, nil
				}
				lastErr = err

				log.Debugf("Task attempt %d/%d failed: %v",
					i+1, attempts, err)

				// Skip the delay after the final attempt.
				if i == attempts-1 {
					break
				}

				select {
				case <-ctx.Done():
					return zero, ctx.Err()
				case <-time.After(delay):
				}
			}

			return zero, fmt.Errorf("%w: %d attempts, last "+
				"error: %v", ErrExhausted, attempts, lastErr)
		}
	}
}
