package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	calls := 0
	get := func(k int) int {
		return c.GetOrCreate(k, func() int { calls++; return k * 10 })
	}
	get(1)
	get(2)
	get(3)
	get(1) // 2 is now the oldest
	get(4)
	if calls != 4 {
		t.Fatalf("create called %d times, want 4", calls)
	}

	for _, k := range []int{1, 3, 4} {
		if get(k) != k*10 {
			t.Errorf("key %d has wrong value", k)
		}
	}
	if calls != 4 {
		t.Errorf("a surviving key was recreated (%d creates)", calls)
	}
	get(2)
	if calls != 5 {
		t.Error("key 2 survived eviction")
	}
	if s := c.Stats(); s.Evictions != 2 || s.Len != 3 || s.Capacity != 3 {
		t.Errorf("stats = %+v, want 2 evictions and 3 entries", s)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	create := func() string { calls++; return "v" }

	for range 3 {
		if got := c.GetOrCreate(7, create); got != "v" {
			t.Fatalf("GetOrCreate = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", s.Hits, s.Misses)
	}
	if s.HitRate < 0.66 || s.HitRate > 0.67 {
		t.Errorf("HitRate = %g", s.HitRate)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](8)
	for i := range 5 {
		c.GetOrCreate(i, func() int { return i })
	}
	c.GetOrCreate(0, func() int { return -1 })
	c.Clear()
	if c.Len() != 0 || c.order.len != 0 {
		t.Errorf("Clear left %d entries, list len %d", c.Len(), c.order.len)
	}
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Clear kept counters %+v", s)
	}
	if v := c.GetOrCreate(9, func() int { return 9 }); v != 9 || c.Len() != 1 {
		t.Error("cache unusable after Clear")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				k := (g*31 + i) % 100
				if v := c.GetOrCreate(k, func() int { return k * 2 }); v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d", k, v)
					return
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[string, int](1000)
	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.GetOrCreate(keys[i%100], func() int { return i })
	}
}
