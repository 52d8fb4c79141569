package authsession

import (
	"context"
	"sync"
)

// Slot holds a value that is written at most once and read any number of
// times. The first Resolve wins; later calls report false and change nothing.
type Slot[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
}

func NewSlot[T any]() *Slot[T] {
	return &Slot[T]{done: make(chan struct{})}
}

func (s *Slot[T]) Resolve(v T) bool {
	won := false
	s.once.Do(func() {
		s.value = v
		won = true
		close(s.done)
	})
	return won
}

// Done is closed once the slot holds a value.
func (s *Slot[T]) Done() <-chan struct{} {
	return s.done
}

func (s *Slot[T]) Value() (T, bool) {
	select {
	case <-s.done:
		return s.value, true
	default:
		var zero T
		return zero, false
	}
}

// Wait blocks until the slot is resolved or ctx ends.
func (s *Slot[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-s.done:
		return s.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
