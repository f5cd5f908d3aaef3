// Package listing keeps the in-memory copy of a directory collection behind a list page.
//
// A View is fetched once on first use and then only changed by local create,
// update and delete results. A failed fetch sticks until the view is reset.
package listing

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// State is the lifecycle of a View.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// FetchFunc retrieves the full collection.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// View is a goroutine-safe cached collection keyed by record ID.
type View[T any] struct {
	idOf  func(T) string
	fetch FetchFunc[T]

	mu         sync.RWMutex
	state      State
	items      []T
	err        error
	generation uint64

	group singleflight.Group
}

// NewView creates an idle view. idOf extracts the record ID used for merges.
func NewView[T any](idOf func(T) string, fetch FetchFunc[T]) *View[T] {
	return &View[T]{
		idOf:  idOf,
		fetch: fetch,
		state: StateIdle,
	}
}

// Load returns the collection, fetching it on first use.
// Concurrent callers share one fetch. After a failure every call returns the
// same error without fetching again until Reset. A Reset during the fetch
// starts a new one instead of reporting an empty collection.
func (v *View[T]) Load(ctx context.Context) ([]T, error) {
	for {
		v.mu.Lock()
		switch v.state {
		case StateLoaded:
			items := slices.Clone(v.items)
			v.mu.Unlock()

			return items, nil
		case StateFailed:
			err := v.err
			v.mu.Unlock()

			return nil, err
		}
		v.state = StateLoading
		generation := v.generation
		v.mu.Unlock()

		// The fetch outlives any single caller; its result is shared.
		fetchCtx := context.WithoutCancel(ctx)
		_, fetchErr, _ := v.group.Do(strconv.FormatUint(generation, 10), func() (any, error) {
			if settled, err := v.settled(generation); settled {
				return nil, err
			}

			items, err := v.fetch(fetchCtx)
			v.finish(generation, items, err)

			return nil, err
		})

		items, current, err := v.snapshot(generation)
		if !current {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			continue
		}
		if err != nil {
			return nil, err
		}
		if fetchErr != nil {
			return nil, fetchErr
		}

		return items, nil
	}
}

// snapshot returns the settled result of generation. current is false when the
// view was reset after that generation started.
func (v *View[T]) snapshot(generation uint64) (items []T, current bool, err error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if generation != v.generation {
		return nil, false, nil
	}

	switch v.state {
	case StateLoaded:
		return slices.Clone(v.items), true, nil
	case StateFailed:
		return nil, true, v.err
	default:
		return nil, false, nil
	}
}

func (v *View[T]) finish(generation uint64, items []T, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// A reset while fetching discards the result.
	if generation != v.generation {
		return
	}

	if err != nil {
		v.state = StateFailed
		v.err = err
		v.items = nil

		return
	}

	v.state = StateLoaded
	v.err = nil
	v.items = slices.Clone(items)
}

// settled reports whether a fetch for generation already completed.
func (v *View[T]) settled(generation uint64) (bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if generation != v.generation {
		return false, nil
	}

	return v.state == StateLoaded || v.state == StateFailed, v.err
}

// Reset drops the cached collection and any sticky error.
// The next Load fetches again.
func (v *View[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.generation++
	v.state = StateIdle
	v.items = nil
	v.err = nil
}

// State reports the current lifecycle state and sticky error, if any.
func (v *View[T]) State() (State, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.state, v.err
}

// Items returns a copy of the loaded collection; nil unless loaded.
func (v *View[T]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.state != StateLoaded {
		return nil
	}

	return slices.Clone(v.items)
}

// Get looks a record up by ID in the loaded collection.
func (v *View[T]) Get(id string) (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, item := range v.items {
		if v.idOf(item) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Upsert replaces the record with the same ID or appends it.
// It does nothing unless the view is loaded.
func (v *View[T]) Upsert(item T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateLoaded {
		return
	}

	id := v.idOf(item)
	for i := range v.items {
		if v.idOf(v.items[i]) == id {
			v.items[i] = item

			return
		}
	}
	v.items = append(v.items, item)
}

// Replace overwrites the record with the same ID and reports whether one was found.
// Unknown IDs are not added.
func (v *View[T]) Replace(item T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateLoaded {
		return false
	}

	id := v.idOf(item)
	for i := range v.items {
		if v.idOf(v.items[i]) == id {
			v.items[i] = item

			return true
		}
	}

	return false
}

// Remove deletes the record with the given ID and reports whether it was present.
func (v *View[T]) Remove(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateLoaded {
		return false
	}

	n := len(v.items)
	v.items = slices.DeleteFunc(v.items, func(item T) bool {
		return v.idOf(item) == id
	})

	return len(v.items) != n
}
