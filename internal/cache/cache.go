// Package cache implements cmd/pdejs's `-cache DIR` flag: a SQLite-backed,
// content-addressed store of already-emitted scripts keyed by source hash,
// shaped after the teacher's instance-persistence runtime (an in-memory
// dirty-tracked cache guarded by a RWMutex, backed by a SQLite table opened
// with a busy timeout for concurrent CLI invocations sharing one cache
// directory) but trimmed to exactly what a translation cache needs: no
// Instance/JSON dispatch machinery, no shelling out to another process.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS scripts (
	hash TEXT PRIMARY KEY,
	script TEXT NOT NULL,
	session_id TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

type entry struct {
	script     string
	sessionID  string
	dirty      bool
	loadedAt   time.Time
	accessedAt time.Time
}

// Cache is a content-addressed source-hash -> emitted-script store.
type Cache struct {
	db     *sql.DB
	dbPath string

	mu  sync.RWMutex
	mem map[string]*entry
}

// Config holds cache configuration. DBPath defaults to
// "<dir>/pdejs-cache.db" when empty.
type Config struct {
	Dir    string
	DBPath string
}

// Open opens (creating if necessary) the cache database at cfg.DBPath, or
// "<cfg.Dir>/pdejs-cache.db" when DBPath is unset.
func Open(cfg Config) (*Cache, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(cfg.Dir, "pdejs-cache.db")
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Cache{db: db, dbPath: dbPath, mem: make(map[string]*entry)}, nil
}

// Close flushes dirty entries and closes the database connection.
func (c *Cache) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	return c.db.Close()
}

// HashSource returns the content hash Get/Put key on.
func HashSource(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Get returns a previously cached script for hash, checking the in-memory
// layer before falling back to the database.
func (c *Cache) Get(hash string) (script string, ok bool, err error) {
	c.mu.RLock()
	if e, found := c.mem[hash]; found {
		e.accessedAt = time.Now()
		c.mu.RUnlock()
		return e.script, true, nil
	}
	c.mu.RUnlock()

	var s string
	err = c.db.QueryRow("SELECT script FROM scripts WHERE hash = ?", hash).Scan(&s)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying cache: %w", err)
	}

	c.mu.Lock()
	c.mem[hash] = &entry{script: s, dirty: false, loadedAt: time.Now(), accessedAt: time.Now()}
	c.mu.Unlock()
	return s, true, nil
}

// Put records script under hash, tagging the write with a fresh diagnostic
// session id and persisting it immediately.
func (c *Cache) Put(hash, script string) (sessionID string, err error) {
	sessionID = uuid.New().String()

	c.mu.Lock()
	defer c.mu.Unlock()

	_, err = c.db.Exec(
		"INSERT OR REPLACE INTO scripts (hash, script, session_id, created_at) VALUES (?, ?, ?, ?)",
		hash, script, sessionID, time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("saving script: %w", err)
	}

	c.mem[hash] = &entry{script: script, sessionID: sessionID, dirty: false, loadedAt: time.Now(), accessedAt: time.Now()}
	return sessionID, nil
}

// Stats reports the in-memory cache's size and dirty-entry count.
func (c *Cache) Stats() (size, dirty int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	size = len(c.mem)
	for _, e := range c.mem {
		if e.dirty {
			dirty++
		}
	}
	return
}

// Flush is a no-op today since Put writes through immediately; kept so a
// future write-back policy (batching Puts before touching the database)
// has somewhere to hook in without changing Cache's public shape.
func (c *Cache) Flush() error {
	return nil
}
