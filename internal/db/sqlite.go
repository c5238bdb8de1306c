package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"courseadvisor/internal/pkg/apperrors"
	"courseadvisor/internal/pkg/logger"
)

// Store owns the single read-only handle to the ratings SQLite file. The
// handle is opened lazily on first use; a failed open is returned to the
// caller but not cached, so a later call retries and can recover once the
// file appears.
type Store struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// NewStore creates a Store for the SQLite file at path. The file is not
// touched until the first query.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DB returns the shared read-only handle, opening it on first call.
// Concurrent first calls open at most one handle.
func (s *Store) DB(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	// mode=ro would create nothing, but a missing file surfaces as an opaque
	// driver error; stat first for a clean failure.
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: sqlite file not found at %s", apperrors.ErrStoreUnavailable, s.path)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_query_only=true", s.path)
	handle, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	// sql.Open is lazy itself; ping to force the actual file open.
	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	logger.Info().Str("path", s.path).Msg("Ratings store opened read-only")
	s.db = handle
	return s.db, nil
}

// Close closes the underlying handle if it was ever opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
