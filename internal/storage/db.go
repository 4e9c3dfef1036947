// Package storage provides the SQLite-backed report run history.
package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// MemoryPath is the canonical SQLite in-memory database path.
const MemoryPath = ":memory:"

// ResolveSQLitePath resolves a sqlite:// URL to either a filesystem path
// or an in-memory indicator.
//
// Accepted forms: sqlite:///relative.db, sqlite:////absolute/path.db,
// sqlite:///:memory:, and URI-style memory databases such as
// sqlite:///file::memory:?cache=shared (returned as-is for the driver to
// interpret). Percent-encodings in the path are decoded.
func ResolveSQLitePath(rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "sqlite:") {
		return "", fmt.Errorf("not a valid sqlite URL: %s", rawURL)
	}

	rest := strings.TrimPrefix(rawURL, "sqlite:")
	rest = strings.TrimPrefix(rest, "//")

	// sqlite://:memory: puts :memory: in the authority position
	if rest == MemoryPath || rest == "/"+MemoryPath {
		return MemoryPath, nil
	}

	query := ""
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, query = rest[:i], rest[i+1:]
	}

	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("invalid sqlite URL path %q: %w", rest, err)
	}

	// URI-style memory databases keep their query string intact
	if strings.HasPrefix(strings.TrimLeft(path, "/"), "file:") && strings.Contains(path, MemoryPath) {
		result := strings.TrimLeft(path, "/")
		if query != "" {
			result += "?" + query
		}
		return result, nil
	}

	switch {
	case strings.HasPrefix(path, "//"):
		// sqlite:////abs/path.db keeps one leading slash
		path = path[1:]
	case strings.HasPrefix(path, "/"):
		// sqlite:///rel.db is a repo-relative path
		path = path[1:]
	}

	if path == "" {
		return "", fmt.Errorf("sqlite URL has no path: %s", rawURL)
	}

	if strings.HasPrefix(rawURL, "sqlite:////") {
		return "/" + strings.TrimPrefix(path, "/"), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return abs, nil
}

// IsMemoryPath reports whether a resolved database path names an
// in-memory SQLite database. The :memory: token must be the entire path
// component; paths that merely contain it (such as /tmp/:memory:) are
// treated as files.
func IsMemoryPath(path string) bool {
	if path == MemoryPath {
		return true
	}
	if !strings.HasPrefix(path, "file:") {
		return false
	}

	rest := strings.TrimPrefix(path, "file:")
	query := ""
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rest, query = rest[:i], rest[i+1:]
	}
	return rest == MemoryPath || strings.Contains(query, MemoryPath)
}

// ConnManager owns SQLite connections for a resolved database path. An
// in-memory database gets one shared connection handle guarded by a
// mutex, because a fresh connection would see a brand new empty
// database. File-backed databases get a fresh handle per Connect call.
// Close releases the shared handle; callers close file-backed handles
// themselves.
type ConnManager struct {
	path string

	mu      sync.Mutex
	memConn *sql.DB
}

// NewConnManager resolves databaseURL and returns a manager for it.
func NewConnManager(databaseURL string) (*ConnManager, error) {
	path, err := ResolveSQLitePath(databaseURL)
	if err != nil {
		return nil, err
	}
	return &ConnManager{path: path}, nil
}

// Path returns the resolved database path.
func (m *ConnManager) Path() string {
	return m.path
}

// IsMemory reports whether the managed database lives in memory.
func (m *ConnManager) IsMemory() bool {
	return IsMemoryPath(m.path)
}

// Connect opens a database handle for the managed path. In-memory
// databases share a single handle limited to one underlying connection;
// file-backed databases get a new handle each call.
func (m *ConnManager) Connect() (*sql.DB, error) {
	if m.IsMemory() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.memConn == nil {
			db, err := sql.Open("sqlite", m.path)
			if err != nil {
				return nil, fmt.Errorf("open in-memory database: %w", err)
			}
			// One pooled connection, or each pool entry would get its
			// own private memory database
			db.SetMaxOpenConns(1)
			m.memConn = db
		}
		return m.memConn, nil
	}

	db, err := sql.Open("sqlite", m.path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", m.path, err)
	}
	return db, nil
}

// Close releases the shared in-memory connection if one was opened. Safe
// to call multiple times.
func (m *ConnManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.memConn == nil {
		return nil
	}
	err := m.memConn.Close()
	m.memConn = nil
	return err
}
