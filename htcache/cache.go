// Package htcache implements a content-addressed, read-through cache for
// HTTP GET responses, grounded in original_source/src/definition/cached_http_loader.rs's
// CachedHttpLoader: a cookie-enabled client backed by a directory tree keyed
// on the request URL's path component.
package htcache

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/renameio"
	"github.com/google/uuid"
)

// Cache is a read-through cache rooted at a directory on disk. A Get miss
// fetches the URL, persists the body under Root, and returns it; a hit
// reads the persisted body back without touching the network.
type Cache struct {
	Root   string
	Client *http.Client
}

// New constructs a Cache rooted at root. If client is nil, a cookie-jar
// enabled client is built, matching the original loader's
// cookie_store(true) client builder.
func New(root string, client *http.Client) *Cache {
	if client == nil {
		jar, _ := cookiejar.New(nil)
		client = &http.Client{Jar: jar}
	}
	return &Cache{Root: root, Client: client}
}

// pathFor derives the on-disk cache location for rawURL from its path
// component only, ignoring any query string — per spec.md's open
// question #4, carried forward unchanged: two URLs that share a path but
// differ in query will shadow one another in the cache.
func (c *Cache) pathFor(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("htcache: parse %q: %w", rawURL, err)
	}
	return filepath.Join(c.Root, filepath.FromSlash(u.Path)), nil
}

// Get returns the cached body for url, fetching and persisting it first
// if no cache entry exists yet. Each network fetch carries a fresh
// correlation ID in the X-Request-Id header; the ID is neither returned to
// the caller nor logged.
func (c *Cache) Get(ctx context.Context, rawURL string) (string, error) {
	loc, err := c.pathFor(rawURL)
	if err != nil {
		return "", err
	}

	if body, err := os.ReadFile(loc); err == nil {
		return string(body), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("htcache: build request for %q: %w", rawURL, err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("htcache: fetch %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("htcache: read body of %q: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("htcache: fetch %q: status %s", rawURL, resp.Status)
	}

	if err := c.persist(loc, body); err != nil {
		return "", err
	}
	return string(body), nil
}

// persist writes body to loc atomically via renameio, creating parent
// directories as needed (the original loader does the equivalent with
// create_dir_all before std::fs::write).
func (c *Cache) persist(loc string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(loc), 0o755); err != nil {
		return fmt.Errorf("htcache: create cache directory for %q: %w", loc, err)
	}
	t, err := renameio.TempFile("", loc)
	if err != nil {
		return fmt.Errorf("htcache: open temp file for %q: %w", loc, err)
	}
	defer t.Cleanup()

	if _, err := t.Write(body); err != nil {
		return fmt.Errorf("htcache: write %q: %w", loc, err)
	}
	return t.CloseAtomicallyReplace()
}
