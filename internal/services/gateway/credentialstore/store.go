// Package credentialstore reads the local fallback credential table.
//
// The table is read from disk on every lookup and never cached, so edits to
// the file take effect on the next login attempt. Each lookup performs
// blocking file I/O on the calling goroutine.
package credentialstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound reports an unknown username or a password mismatch.
	ErrNotFound = errors.New("credential not found")
	// ErrUnavailable reports that the table could not be read or parsed.
	ErrUnavailable = errors.New("credential table unavailable")
)

// Record is one entry of the fallback table.
type Record struct {
	Username string
	Password string
	// Token is the stored issuance token used to build fallback sessions.
	Token string
}

// Store looks up fallback credentials.
type Store interface {
	// Lookup returns the record for username when password matches it
	// exactly. Passwords are stored and compared in plaintext.
	Lookup(ctx context.Context, username, password string) (Record, error)
}

// Open returns the store for path, choosing SQLite for .db, .sqlite and
// .sqlite3 files and JSON otherwise. The file is not touched until Lookup.
func Open(path string) (Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", ErrUnavailable)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path), nil
	default:
		return NewFileStore(path), nil
	}
}

func match(record Record, found bool, password string) (Record, error) {
	if !found || record.Password != password {
		return Record{}, ErrNotFound
	}
	return record, nil
}
