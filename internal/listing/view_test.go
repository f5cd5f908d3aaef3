package listing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string
	Name string
}

func recordID(r record) string { return r.ID }

func TestView_LoadFetchesOnce(t *testing.T) {
	var calls atomic.Int32
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		calls.Add(1)

		return []record{{ID: "1", Name: "Dala"}}, nil
	})

	state, err := view.State()
	assert.Equal(t, StateIdle, state)
	assert.NoError(t, err)

	items, err := view.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []record{{ID: "1", Name: "Dala"}}, items)

	_, err = view.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	state, _ = view.State()
	assert.Equal(t, StateLoaded, state)
}

func TestView_ConcurrentLoadsShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		calls.Add(1)
		<-release

		return []record{{ID: "1"}}, nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := view.Load(context.Background())
			assert.NoError(t, err)
			assert.Len(t, items, 1)
		}()
	}

	// Let the goroutines pile up on the in-flight fetch.
	for {
		state, _ := view.State()
		if state == StateLoading {
			break
		}
	}
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(2))
}

func TestView_FailureIsStickyUntilReset(t *testing.T) {
	fail := true
	var calls int
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		calls++
		if fail {
			return nil, errors.New("boom")
		}

		return []record{{ID: "1"}}, nil
	})

	_, err := view.Load(context.Background())
	require.EqualError(t, err, "boom")

	fail = false
	_, err = view.Load(context.Background())
	require.EqualError(t, err, "boom")
	assert.Equal(t, 1, calls)

	state, stateErr := view.State()
	assert.Equal(t, StateFailed, state)
	assert.EqualError(t, stateErr, "boom")

	view.Reset()
	items, err := view.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 2, calls)
}

func TestView_LoadIgnoresCallerCancellation(t *testing.T) {
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		return []record{{ID: "1"}}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items, err := view.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestView_UpsertAndRemove(t *testing.T) {
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}, nil
	})

	// Nothing to merge into before the first load.
	view.Upsert(record{ID: "9"})
	assert.False(t, view.Remove("1"))

	_, err := view.Load(context.Background())
	require.NoError(t, err)

	view.Upsert(record{ID: "3", Name: "c"})
	view.Upsert(record{ID: "1", Name: "a2"})

	got, ok := view.Get("1")
	require.True(t, ok)
	assert.Equal(t, "a2", got.Name)
	assert.Len(t, view.Items(), 3)

	assert.True(t, view.Remove("2"))
	assert.False(t, view.Remove("2"))
	assert.Equal(t, []record{{ID: "1", Name: "a2"}, {ID: "3", Name: "c"}}, view.Items())

	_, ok = view.Get("2")
	assert.False(t, ok)
}

func TestView_ItemsIsACopy(t *testing.T) {
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1", Name: "a"}}, nil
	})
	items, err := view.Load(context.Background())
	require.NoError(t, err)

	items[0].Name = "changed"
	got, _ := view.Get("1")
	assert.Equal(t, "a", got.Name)
}

func TestView_Replace(t *testing.T) {
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		return []record{{ID: "1", Name: "a"}}, nil
	})
	assert.False(t, view.Replace(record{ID: "1", Name: "early"}))

	_, err := view.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, view.Replace(record{ID: "1", Name: "b"}))
	assert.False(t, view.Replace(record{ID: "2", Name: "c"}))
	assert.Equal(t, []record{{ID: "1", Name: "b"}}, view.Items())
}

func TestView_ResetDuringFetchRefetches(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release

			return []record{{ID: "stale"}}, nil
		}

		return []record{{ID: "fresh"}}, nil
	})

	type result struct {
		items []record
		err   error
	}
	done := make(chan result, 1)
	go func() {
		items, err := view.Load(context.Background())
		done <- result{items: items, err: err}
	}()

	<-started
	view.Reset()
	close(release)

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, []record{{ID: "fresh"}}, got.items)
	assert.Equal(t, int32(2), calls.Load())

	state, err := view.State()
	assert.Equal(t, StateLoaded, state)
	assert.NoError(t, err)
}

func TestView_ResetDuringFetchHonoursCancellation(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	view := NewView(recordID, func(ctx context.Context) ([]record, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-release
		}

		return []record{{ID: "1"}}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := view.Load(ctx)
		done <- err
	}()

	<-started
	view.Reset()
	cancel()
	close(release)

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, int32(1), calls.Load())
}
