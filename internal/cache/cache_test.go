package cache

import (
	"sync"
	"testing"
	"time"
)

func TestGet_Missing(t *testing.T) {
	c := New()
	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	c := New()
	c.Set("k", "v", time.Minute)

	v, ok := c.Get("k")
	if !ok {
		t.Fatal("expected hit")
	}
	if v != "v" {
		t.Fatalf("expected %q, got %q", "v", v)
	}
}

func TestSet_ZeroTTLExpiresImmediately(t *testing.T) {
	c := New()
	c.Set("k", "v", 0)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected entry with ttl=0 to be expired on first read")
	}
}

func TestGet_LazyEviction(t *testing.T) {
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", "v", time.Second)
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}

	// Advance past expiry; the read should miss and remove the entry.
	now = now.Add(2 * time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to miss")
	}
	if c.Len() != 0 {
		t.Fatalf("expected stale entry removed, got %d entries", c.Len())
	}
}

func TestExists_TracksGet(t *testing.T) {
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("k", "v", time.Second)
	if !c.Exists("k") {
		t.Fatal("expected key to exist")
	}

	now = now.Add(2 * time.Second)
	if c.Exists("k") {
		t.Fatal("expected expired key to not exist")
	}
	if c.Len() != 0 {
		t.Fatal("expected Exists to evict the expired entry")
	}
}

func TestDeleteAndClear(t *testing.T) {
	c := New()
	c.Set("a", "1", time.Minute)
	c.Set("b", "2", time.Minute)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected deleted key to miss")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("expected remaining key to hit")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Clear, got %d entries", c.Len())
	}
}

func TestKey_StableAndPrefixed(t *testing.T) {
	k1 := Key("chat", "payload")
	k2 := Key("chat", "payload")
	if k1 != k2 {
		t.Fatalf("expected identical keys, got %q and %q", k1, k2)
	}
	if Key("chat", "a") == Key("chat", "b") {
		t.Fatal("expected different payloads to produce different keys")
	}
	if Key("chat", "a") == Key("vision", "a") {
		t.Fatal("expected different prefixes to produce different keys")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("shared", "v", time.Minute)
				c.Get("shared")
				c.Exists("shared")
			}
		}()
	}
	wg.Wait()

	if _, ok := c.Get("shared"); !ok {
		t.Fatal("expected key to survive concurrent access")
	}
}
