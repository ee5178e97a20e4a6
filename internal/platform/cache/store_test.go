package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var calls atomic.Int32
	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "2024.json", nil
	}

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := Load(context.Background(), store, "season:GWBB", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "2024.json" {
				errCh <- errors.New("unexpected value " + v)
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestLoad_CachesAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var calls atomic.Int32
	loader := func(context.Context) ([]int, error) {
		calls.Add(1)
		return []int{2019, 2020}, nil
	}

	for i := 0; i < 3; i++ {
		if _, err := Load(context.Background(), store, "years", loader); err != nil {
			t.Fatalf("load #%d error: %v", i, err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	if stats := store.Stats(); stats.Hits != 2 || stats.Misses != 1 || stats.Entries != 1 {
		t.Fatalf("stats = %+v, want 2 hits / 1 miss / 1 entry", stats)
	}
}

func TestLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore()
	boom := errors.New("boom")
	if _, err := Load(context.Background(), store, "k", func(context.Context) (int, error) {
		return 0, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	v, err := Load(context.Background(), store, "k", func(context.Context) (int, error) {
		return 42, nil
	})
	if err != nil || v != 42 {
		t.Fatalf("second load = %v, %v", v, err)
	}
}

func TestStore_Invalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore()
	var calls atomic.Int32
	loader := func(context.Context) (int, error) { return int(calls.Add(1)), nil }

	first, _ := Load(ctx, store, "identity:index", loader)
	store.Invalidate("identity:index", "absent")
	second, _ := Load(ctx, store, "identity:index", loader)

	if first != 1 || second != 2 {
		t.Fatalf("expected a reload after invalidate, got %d then %d", first, second)
	}
}
