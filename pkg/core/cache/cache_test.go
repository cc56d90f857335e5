package cache

import (
	"errors"
	"testing"
	"time"
)

func newTestCache(t *testing.T, cfg Config) (*Cache[string], *time.Time) {
	t.Helper()
	c := New[string](cfg)
	t.Cleanup(c.Close)

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }
	return c, &clock
}

func TestCache_GetSet(t *testing.T) {
	c, _ := newTestCache(t, DefaultConfig())

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache should miss")
	}

	c.Set("a", "2017-05-29")
	got, ok := c.Get("a")
	if !ok || got != "2017-05-29" {
		t.Errorf("Get(a) = %q, %v", got, ok)
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v", hits, misses, rate)
	}
}

func TestCache_Expiration(t *testing.T) {
	c, clock := newTestCache(t, Config{TTL: time.Minute})

	c.Set("a", "x")
	c.SetWithTTL("b", "y", 0)

	*clock = clock.Add(2 * time.Minute)

	if _, ok := c.Get("a"); ok {
		t.Error("entry a should have expired")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("entry b should never expire")
	}

	c.Set("c", "z")
	*clock = clock.Add(2 * time.Minute)
	c.cleanup()
	if c.Size() != 1 {
		t.Errorf("Size() after cleanup = %d, want 1", c.Size())
	}
}

func TestCache_Eviction(t *testing.T) {
	c, clock := newTestCache(t, Config{MaxItems: 2})

	c.Set("first", "1")
	*clock = clock.Add(time.Second)
	c.Set("second", "2")
	*clock = clock.Add(time.Second)
	c.Set("third", "3")

	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", c.Size())
	}
	if _, ok := c.Get("first"); ok {
		t.Error("oldest entry should be evicted")
	}

	// overwriting an existing key must not evict
	c.Set("third", "3b")
	if _, ok := c.Get("second"); !ok {
		t.Error("overwrite evicted an unrelated entry")
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c, _ := newTestCache(t, DefaultConfig())

	calls := 0
	fn := func() (string, error) {
		calls++
		return "computed", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrSet("k", fn)
		if err != nil || v != "computed" {
			t.Fatalf("GetOrSet() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}

	_, err := c.GetOrSet("bad", func() (string, error) { return "", errors.New("boom") })
	if err == nil {
		t.Error("GetOrSet() should propagate errors")
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed computation must not be cached")
	}
}

func TestCache_DeleteClear(t *testing.T) {
	c, _ := newTestCache(t, DefaultConfig())
	c.Set("a", "1")
	c.Set("b", "2")

	c.Delete("a")
	if c.Size() != 1 {
		t.Errorf("Size() after Delete = %d", c.Size())
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d", c.Size())
	}
}
