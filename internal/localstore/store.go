// internal/localstore/store.go
package localstore

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Store is the local record store: key-namespaced persistence of typed JSON
// records in an embedded SQLite file. Reads never fail: parse errors and
// absence fall back to the caller-supplied default. Writes log and swallow
// their own errors. There is no expiry, no size limit, no encryption.
type Store struct {
	db *sqlx.DB
}

func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS kv(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS counters(
  key TEXT PRIMARY KEY,
  total INTEGER NOT NULL DEFAULT 0
);
`
	_, err := db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Read unmarshals the value stored under key into dest. It returns false
// and leaves dest untouched when the key is absent or the stored JSON is
// corrupt, so callers keep whatever default dest already holds.
func (s *Store) Read(key string, dest interface{}) bool {
	var raw string
	if err := s.db.Get(&raw, `SELECT value FROM kv WHERE key = ?`, key); err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logrus.WithField("key", key).WithError(err).Warn("local store: discarding corrupt value")
		return false
	}
	return true
}

// Write stores value under key as JSON, replacing any previous value.
func (s *Store) Write(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("local store: failed to encode value")
		return
	}

	_, err = s.db.Exec(`
  INSERT INTO kv(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
  ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`, key, string(raw))
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("local store: write failed")
	}
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		logrus.WithField("key", key).WithError(err).Warn("local store: delete failed")
	}
}

// Keys returns all keys under the given namespace prefix, in insertion
// order of their latest write.
func (s *Store) Keys(prefix string) []string {
	var keys []string
	err := s.db.Select(&keys, `SELECT key FROM kv WHERE key LIKE ? ORDER BY rowid`, prefix+"%")
	if err != nil {
		logrus.WithField("prefix", prefix).WithError(err).Warn("local store: key scan failed")
		return nil
	}
	return keys
}

// Add atomically adds delta to the counter stored under key and returns
// the new total. The upsert is a single statement, so two concurrent
// credits to the same key cannot lose an update.
func (s *Store) Add(key string, delta int64) int64 {
	_, err := s.db.Exec(`
  INSERT INTO counters(key, total) VALUES(?, ?)
  ON CONFLICT(key) DO UPDATE SET total = total + excluded.total
`, key, delta)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("local store: counter add failed")
		return s.Total(key)
	}
	return s.Total(key)
}

// Total returns the counter under key, defaulting to zero.
func (s *Store) Total(key string) int64 {
	var total int64
	if err := s.db.Get(&total, `SELECT total FROM counters WHERE key = ?`, key); err != nil {
		return 0
	}
	return total
}

// SetTotal overwrites a counter, used when mirroring a remote total into
// the warm cache.
func (s *Store) SetTotal(key string, total int64) {
	_, err := s.db.Exec(`
  INSERT INTO counters(key, total) VALUES(?, ?)
  ON CONFLICT(key) DO UPDATE SET total = excluded.total
`, key, total)
	if err != nil {
		logrus.WithField("key", key).WithError(err).Warn("local store: counter set failed")
	}
}
