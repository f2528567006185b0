package driver

import (
	"testing"
)

func testCache(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("codize")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return cache
}

func TestCacheRoundTrip(t *testing.T) {
	cache := testCache(t)
	key := digest([]byte("doc"), Options{})

	var out Payload
	if hit, err := cache.Get(key, &out); err != nil || hit {
		t.Fatalf("unexpected hit before Put: hit=%v err=%v", hit, err)
	}

	in := Payload{Schema: cacheSchemaVersion, Output: "a\nb", Lines: 2}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("put: %v", err)
	}

	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("expected hit after Put: hit=%v err=%v", hit, err)
	}
	if out.Output != in.Output || out.Lines != in.Lines {
		t.Fatalf("payload mismatch: want %+v, got %+v", in, out)
	}
}

func TestCacheStaleSchema(t *testing.T) {
	cache := testCache(t)
	key := digest([]byte("doc"), Options{})

	in := Payload{Schema: cacheSchemaVersion + 1, Output: "x"}
	if err := cache.Put(key, &in); err != nil {
		t.Fatalf("put: %v", err)
	}
	var out Payload
	if hit, err := cache.Get(key, &out); err != nil || hit {
		t.Fatalf("stale schema should miss: hit=%v err=%v", hit, err)
	}
}

func TestCacheDropAll(t *testing.T) {
	cache := testCache(t)
	key := digest([]byte("doc"), Options{})
	if err := cache.Put(key, &Payload{Schema: cacheSchemaVersion, Output: "x"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	var out Payload
	if hit, err := cache.Get(key, &out); err != nil || hit {
		t.Fatalf("expected miss after DropAll: hit=%v err=%v", hit, err)
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var cache *DiskCache
	key := digest([]byte("doc"), Options{})
	if err := cache.Put(key, &Payload{}); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
	var out Payload
	if hit, err := cache.Get(key, &out); err != nil || hit {
		t.Fatalf("nil Get: hit=%v err=%v", hit, err)
	}
}

func TestDigestSensitivity(t *testing.T) {
	base := digest([]byte("doc"), Options{})
	if digest([]byte("doc2"), Options{}) == base {
		t.Errorf("digest ignores content")
	}
	if digest([]byte("doc"), Options{Indent: 2}) == base {
		t.Errorf("digest ignores indent override")
	}
}
