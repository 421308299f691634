package credentialstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const lookupQuery = `
SELECT password, token
FROM credentials
WHERE username = ?;
`

// SQLiteStore reads a credentials(username, password, token) table. The
// database is opened read-only per lookup and closed before returning.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore returns a store backed by the SQLite file at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: filepath.Clean(path)}
}

// Lookup implements Store.
func (s *SQLiteStore) Lookup(ctx context.Context, username, password string) (Record, error) {
	if _, err := os.Stat(s.path); err != nil {
		return Record{}, fmt.Errorf("%w: stat %s: %v", ErrUnavailable, s.path, err)
	}
	sqlDB, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro")
	if err != nil {
		return Record{}, fmt.Errorf("%w: open sqlite db: %v", ErrUnavailable, err)
	}
	defer sqlDB.Close()

	record := Record{Username: username}
	err = sqlDB.QueryRowContext(ctx, lookupQuery, username).Scan(&record.Password, &record.Token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return match(Record{}, false, password)
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Record{}, ctxErr
		}
		return Record{}, fmt.Errorf("%w: query credentials: %v", ErrUnavailable, err)
	}
	return match(record, true, password)
}
