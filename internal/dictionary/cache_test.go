package dictionary

import (
	"path/filepath"
	"testing"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := OpenCache(filepath.Join(t.TempDir(), "dict.db"))
	if err != nil {
		t.Fatalf("OpenCache() error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	return cache
}

func TestCachePutGet(t *testing.T) {
	cache := newTestCache(t)

	entries := map[string]string{
		"Nietzsche": "Nee-cha",
		"Goethe":    "Ger-ta",
	}
	if err := cache.Put("https://example.com/names.csv", entries); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := cache.Get("https://example.com/names.csv")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Get() returned %d entries, want 2", len(got))
	}
	for word, phonetic := range entries {
		if got[word] != phonetic {
			t.Errorf("entry %q = %q, want %q", word, got[word], phonetic)
		}
	}
}

func TestCachePutReplacesPreviousEntries(t *testing.T) {
	cache := newTestCache(t)
	source := "https://example.com/names.csv"

	if err := cache.Put(source, map[string]string{"Old": "oh-ld"}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := cache.Put(source, map[string]string{"New": "noo"}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := cache.Get(source)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if _, ok := got["Old"]; ok {
		t.Error("stale entry survived a Put for the same source")
	}
	if got["New"] != "noo" {
		t.Errorf("entry New = %q, want noo", got["New"])
	}
}

func TestCacheSourcesAreIsolated(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Put("https://a.example/d.csv", map[string]string{"A": "ay"}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := cache.Put("https://b.example/d.csv", map[string]string{"B": "bee"}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := cache.Get("https://a.example/d.csv")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got) != 1 || got["A"] != "ay" {
		t.Errorf("Get() = %v, want only the entries of the requested source", got)
	}
}

func TestCacheGetUnknownSource(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.Get("https://nobody.example/d.csv")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Get() = %v, want empty map for unknown source", got)
	}
}
