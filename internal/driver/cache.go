package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"tern/internal/names"
)

// Digest keys cached arena snapshots by input content.
type Digest [sha256.Size]byte

// HashShards digests the shard inputs, including shard boundaries, so the
// same identifiers split differently produce a different key.
func HashShards(shards [][]string) Digest {
	h := sha256.New()
	for _, shard := range shards {
		for _, ident := range shard {
			h.Write([]byte(ident))
			h.Write([]byte{0})
		}
		h.Write([]byte{0xff})
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// NameCache stores arena snapshots on disk, keyed by input digest.
// Thread-safe for concurrent access.
type NameCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenNameCache initializes the cache at the standard location.
func OpenNameCache(app string) (*NameCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "names")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &NameCache{dir: dir}, nil
}

// OpenNameCacheAt initializes the cache in an explicit directory; used by
// tests and the --cache-dir flag.
func OpenNameCacheAt(dir string) (*NameCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &NameCache{dir: dir}, nil
}

func (c *NameCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put snapshots the arena and writes it under key atomically.
func (c *NameCache) Put(key Digest, a *names.Arena) error {
	if c == nil {
		return nil
	}
	data, err := Snapshot(a)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic within one filesystem.
	return os.Rename(f.Name(), p)
}

// Get restores a cached arena, reporting false on a miss. Stale or
// foreign-schema entries count as misses rather than errors.
func (c *NameCache) Get(key Digest) (*names.Arena, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	a, err := Restore(data)
	if err != nil {
		return nil, false, nil
	}
	return a, true, nil
}
