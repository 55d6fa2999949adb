package keyvalue

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/gm2dev/interviewhub-client/internal/model"
)

var _ model.KeyValueStore = (*SQLite)(nil)

const sessionSchema = `CREATE TABLE IF NOT EXISTS session_kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
) STRICT;`

// SQLite is a KeyValueStore backed by a local SQLite database so the
// session survives process restarts. A single connection guarded by a
// mutex is enough: session state is a handful of keys.
type SQLite struct {
	mu   sync.Mutex
	conn *sqlite.Conn
}

// OpenSQLite opens (creating if needed) the session database at path.
// The parent directory is created with owner-only permissions since
// the database holds a bearer token.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate|sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if err := sqlitex.ExecuteScript(conn, sessionSchema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to prepare session schema: %w", err)
	}

	return &SQLite{conn: conn}, nil
}

func (s *SQLite) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	var found bool
	err := sqlitex.Execute(s.conn, `SELECT value FROM session_kv WHERE key = ?`, &sqlitex.ExecOptions{
		Args: []any{key},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			value = stmt.ColumnText(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, found, nil
}

func (s *SQLite) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := sqlitex.Execute(s.conn,
		`INSERT INTO session_kv (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		&sqlitex.ExecOptions{Args: []any{key, value}})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Delete removes the given keys in one savepoint so a multi-key clear
// (logout) is all-or-nothing.
func (s *SQLite) Delete(keys ...string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer sqlitex.Save(s.conn)(&err)
	for _, key := range keys {
		err = sqlitex.Execute(s.conn, `DELETE FROM session_kv WHERE key = ?`,
			&sqlitex.ExecOptions{Args: []any{key}})
		if err != nil {
			return fmt.Errorf("failed to delete key %q: %w", key, err)
		}
	}
	return nil
}

// Close releases the underlying connection.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}
