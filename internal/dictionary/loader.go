package dictionary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// maxBodyBytes caps how much dictionary data we are willing to read
// from a remote source.
const maxBodyBytes = 10 * 1024 * 1024 // 10MB

// Loader fetches remote pronunciation dictionaries
type Loader struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	cache   *Cache
}

// NewLoader creates a dictionary loader. cache may be nil to disable
// the fallback cache.
func NewLoader(cache *Cache) *Loader {
	settings := gobreaker.Settings{
		Name:    "dictionary-fetch",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &Loader{
		client:  &http.Client{Timeout: 15 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(settings),
		cache:   cache,
	}
}

// Load fetches the dictionary at url and returns its entries. On fetch
// failure it falls back to the cached copy of that url if one exists;
// otherwise the error is returned and the caller decides how to
// degrade. The returned map is never nil on success.
func (l *Loader) Load(ctx context.Context, url string) (map[string]string, error) {
	result, err := l.breaker.Execute(func() (interface{}, error) {
		return l.fetch(ctx, url)
	})
	if err != nil {
		if l.cache != nil {
			if entries, cacheErr := l.cache.Get(url); cacheErr == nil && len(entries) > 0 {
				fmt.Fprintf(os.Stderr, "Warning: dictionary fetch failed (%v), using cached copy (%d entries)\n", err, len(entries))
				return entries, nil
			}
		}
		return nil, fmt.Errorf("failed to load dictionary from %s: %w", url, err)
	}

	entries := ParseEntries(string(result.([]byte)))

	if l.cache != nil && len(entries) > 0 {
		if cacheErr := l.cache.Put(url, entries); cacheErr != nil {
			// Non-fatal, the fetch itself succeeded
			fmt.Fprintf(os.Stderr, "Warning: failed to cache dictionary: %v\n", cacheErr)
		}
	}

	return entries, nil
}

// fetch performs the HTTP GET for the dictionary body
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary URL: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// ParseEntries parses the "word,phonetic" row format. A row contributes
// an entry only when splitting on a single comma yields exactly two
// non-empty trimmed fields; anything else is skipped without comment.
func ParseEntries(body string) map[string]string {
	entries := make(map[string]string)

	for _, line := range strings.Split(body, "\n") {
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			continue
		}

		word := strings.TrimSpace(parts[0])
		phonetic := strings.TrimSpace(parts[1])
		if word == "" || phonetic == "" {
			continue
		}

		entries[word] = phonetic
	}

	return entries
}
