package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// FileCache implements a file-based cache with TTL
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// cacheEntry represents a cached item with expiration
type cacheEntry struct {
	Data      []byte    `json:"data"`
	StoredAt  time.Time `json:"stored_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewFileCache creates a new file cache
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	// 0750 keeps other users out of the cache directory
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	return &FileCache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// DefaultCacheDir returns the default cache directory
func DefaultCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "bart")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "bart-cache")
	}

	return filepath.Join(home, ".cache", "bart")
}

// normalizeKey drops the API key from request URLs so entries survive a key
// change and the key never takes part in the file name.
func normalizeKey(key string) string {
	u, err := url.Parse(key)
	if err != nil || u.RawQuery == "" {
		return key
	}
	q := u.Query()
	q.Del("key")
	u.RawQuery = q.Encode()
	return u.String()
}

// keyToFilename converts a cache key (URL) to a filename
func (c *FileCache) keyToFilename(key string) string {
	hash := sha256.Sum256([]byte(normalizeKey(key)))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".json")
}

// readEntry loads and decodes an entry, removing it when it is unreadable or expired
func (c *FileCache) readEntry(filename string) (cacheEntry, bool) {
	// #nosec G304 -- filename is a hash inside the cache directory
	data, err := os.ReadFile(filename)
	if err != nil {
		return cacheEntry{}, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(filename)
		return cacheEntry{}, false
	}

	if c.now().After(entry.ExpiresAt) {
		_ = os.Remove(filename)
		return cacheEntry{}, false
	}

	return entry, true
}

// Get retrieves a value from the cache
func (c *FileCache) Get(key string) ([]byte, bool) {
	entry, ok := c.readEntry(c.keyToFilename(key))
	if !ok {
		return nil, false
	}
	return entry.Data, true
}

// Age reports how long ago a live entry was stored
func (c *FileCache) Age(key string) (time.Duration, bool) {
	entry, ok := c.readEntry(c.keyToFilename(key))
	if !ok {
		return 0, false
	}
	return c.now().Sub(entry.StoredAt), true
}

// Set stores a value in the cache
func (c *FileCache) Set(key string, value []byte) error {
	now := c.now()
	entry := cacheEntry{
		Data:      value,
		StoredAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// 0600: owner only
	return os.WriteFile(c.keyToFilename(key), data, 0600)
}

// entryFiles lists the cache files in the cache directory
func (c *FileCache) entryFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			files = append(files, filepath.Join(c.dir, entry.Name()))
		}
	}
	return files, nil
}

// Clear removes all cache entries
func (c *FileCache) Clear() error {
	files, err := c.entryFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		_ = os.Remove(f)
	}
	return nil
}

// Cleanup removes expired or corrupt entries and returns how many were removed
func (c *FileCache) Cleanup() (int, error) {
	files, err := c.entryFiles()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, f := range files {
		if _, ok := c.readEntry(f); !ok {
			removed++
		}
	}
	return removed, nil
}
