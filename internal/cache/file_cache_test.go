package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const stationsURL = "https://api.bart.gov/api/stn.aspx?cmd=stns&key=MW9S-E7SL-26DU-VV8V"

// fakeClock is a settable time source for expiry tests
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(t *testing.T, ttl time.Duration) (*FileCache, *fakeClock) {
	t.Helper()
	c, err := NewFileCache(t.TempDir(), ttl)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	clock := &fakeClock{t: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	c.now = clock.now
	return c, clock
}

func TestFileCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	value := []byte(`<root><stations/></root>`)
	if err := c.Set(stationsURL, value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := c.Get(stationsURL)
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if string(got) != string(value) {
		t.Errorf("Get() = %q, want %q", got, value)
	}
}

func TestFileCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	if _, ok := c.Get("non-existent-key"); ok {
		t.Error("Get() returned true for non-existent key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	c, clock := newTestCache(t, 24*time.Hour)

	if err := c.Set(stationsURL, []byte("stations")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	clock.advance(23 * time.Hour)
	if _, ok := c.Get(stationsURL); !ok {
		t.Error("Get() returned false before the TTL elapsed")
	}

	clock.advance(2 * time.Hour)
	if _, ok := c.Get(stationsURL); ok {
		t.Error("Get() returned true for expired key")
	}
}

func TestFileCache_Age(t *testing.T) {
	c, clock := newTestCache(t, 24*time.Hour)

	if _, ok := c.Age(stationsURL); ok {
		t.Error("Age() returned true for missing key")
	}

	if err := c.Set(stationsURL, []byte("stations")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	clock.advance(90 * time.Minute)

	age, ok := c.Age(stationsURL)
	if !ok {
		t.Fatal("Age() returned false for live key")
	}
	if age != 90*time.Minute {
		t.Errorf("Age() = %v, want %v", age, 90*time.Minute)
	}
}

func TestFileCache_IgnoresAPIKey(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	if err := c.Set(stationsURL, []byte("stations")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	other := "https://api.bart.gov/api/stn.aspx?cmd=stns&key=ZZZZ-ZZZZ-ZZZZ-ZZZZ"
	if _, ok := c.Get(other); !ok {
		t.Error("Get() with a different API key missed the entry")
	}

	fares := "https://api.bart.gov/api/sched.aspx?cmd=fare&dest=EMBR&key=ZZZZ&orig=12TH"
	if _, ok := c.Get(fares); ok {
		t.Error("Get() for a different command hit the stations entry")
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{stationsURL, "https://api.bart.gov/api/stn.aspx?cmd=stns"},
		{"https://api.bart.gov/api/sched.aspx?orig=12TH&key=x&dest=EMBR&cmd=fare", "https://api.bart.gov/api/sched.aspx?cmd=fare&dest=EMBR&orig=12TH"},
		{"plain-key", "plain-key"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := normalizeKey(tt.in); got != tt.want {
				t.Errorf("normalizeKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	filename := c.keyToFilename(stationsURL)
	if err := os.WriteFile(filename, []byte("not json"), 0600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, ok := c.Get(stationsURL); ok {
		t.Error("Get() returned true for corrupt entry")
	}
	if _, err := os.Stat(filename); !os.IsNotExist(err) {
		t.Error("corrupt entry was not removed")
	}
}

func TestFileCache_CreateDirectory(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "cache", "dir")

	c, err := NewFileCache(nestedDir, time.Minute)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if _, err := os.Stat(nestedDir); os.IsNotExist(err) {
		t.Error("Cache directory was not created")
	}

	if err := c.Set("test", []byte("data")); err != nil {
		t.Errorf("Set() error = %v", err)
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	if got := DefaultCacheDir(); got != filepath.Join("/tmp/xdg-cache", "bart") {
		t.Errorf("DefaultCacheDir() = %q, want XDG location", got)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	if DefaultCacheDir() == "" {
		t.Error("DefaultCacheDir() returned empty string")
	}
}

func TestFileCache_Clear(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	keys := []string{
		"https://api.bart.gov/api/stn.aspx?cmd=stns",
		"https://api.bart.gov/api/sched.aspx?cmd=fare&orig=12TH&dest=EMBR",
		"https://api.bart.gov/api/sched.aspx?cmd=fare&orig=MCAR&dest=RICH",
	}
	for _, key := range keys {
		if err := c.Set(key, []byte("data")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	for _, key := range keys {
		if _, ok := c.Get(key); ok {
			t.Errorf("Get(%q) returned true after Clear()", key)
		}
	}

	if _, err := os.Stat(c.dir); os.IsNotExist(err) {
		t.Error("Cache directory was deleted by Clear()")
	}
}

func TestFileCache_Cleanup(t *testing.T) {
	c, clock := newTestCache(t, time.Hour)

	oldKeys := []string{
		"https://api.bart.gov/api/sched.aspx?cmd=fare&orig=12TH&dest=EMBR",
		"https://api.bart.gov/api/sched.aspx?cmd=fare&orig=MCAR&dest=RICH",
	}
	for _, key := range oldKeys {
		if err := c.Set(key, []byte("old data")); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	clock.advance(2 * time.Hour)

	if err := c.Set(stationsURL, []byte("fresh data")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	removed, err := c.Cleanup()
	if err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if removed != len(oldKeys) {
		t.Errorf("Cleanup() removed %d entries, want %d", removed, len(oldKeys))
	}

	for _, key := range oldKeys {
		if _, ok := c.Get(key); ok {
			t.Errorf("Get(%q) returned true after Cleanup()", key)
		}
	}
	if _, ok := c.Get(stationsURL); !ok {
		t.Error("fresh entry was removed by Cleanup()")
	}
}

func TestFileCache_CleanupEmptyCache(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	removed, err := c.Cleanup()
	if err != nil {
		t.Errorf("Cleanup() on empty cache error = %v", err)
	}
	if removed != 0 {
		t.Errorf("Cleanup() removed %d entries from empty cache", removed)
	}
}
