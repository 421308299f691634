package credentialstore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "users.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write table: %v", err)
	}
	return path
}

func TestFileStoreLookup(t *testing.T) {
	t.Parallel()

	path := writeTable(t, t.TempDir(), `{"alice": {"password": "pw1", "token": "T1"}}`)
	store := NewFileStore(path)

	record, err := store.Lookup(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if record.Username != "alice" || record.Token != "T1" {
		t.Fatalf("Lookup() = %+v, want alice/T1", record)
	}

	if _, err := store.Lookup(context.Background(), "alice", "wrong"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong password error = %v, want ErrNotFound", err)
	}
	if _, err := store.Lookup(context.Background(), "bob", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreComparesPasswordsExactly(t *testing.T) {
	t.Parallel()

	path := writeTable(t, t.TempDir(), `{"alice": {"password": "pw1", "token": "T1"}}`)
	store := NewFileStore(path)

	for _, candidate := range []string{"PW1", "pw1 ", " pw1", ""} {
		if _, err := store.Lookup(context.Background(), "alice", candidate); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Lookup(%q) error = %v, want ErrNotFound", candidate, err)
		}
	}
}

func TestFileStoreNullEntryIsNotFound(t *testing.T) {
	t.Parallel()

	path := writeTable(t, t.TempDir(), `{"alice": null, "bob": {"password": "", "token": "T2"}}`)
	store := NewFileStore(path)

	if _, err := store.Lookup(context.Background(), "alice", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("null entry error = %v, want ErrNotFound", err)
	}
	record, err := store.Lookup(context.Background(), "bob", "")
	if err != nil {
		t.Fatalf("empty password entry error = %v", err)
	}
	if record.Token != "T2" {
		t.Fatalf("Lookup() = %+v, want token T2", record)
	}
}

func TestFileStoreReadsFreshOnEveryLookup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTable(t, dir, `{"alice": {"password": "pw1", "token": "T1"}}`)
	store := NewFileStore(path)

	if _, err := store.Lookup(context.Background(), "alice", "pw1"); err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	writeTable(t, dir, `{"alice": {"password": "pw2", "token": "T2"}}`)

	if _, err := store.Lookup(context.Background(), "alice", "pw1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stale password error = %v, want ErrNotFound", err)
	}
	record, err := store.Lookup(context.Background(), "alice", "pw2")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if record.Token != "T2" {
		t.Fatalf("Token = %q, want T2", record.Token)
	}
}

func TestFileStoreUnavailable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := NewFileStore(filepath.Join(dir, "missing.json"))
	if _, err := missing.Lookup(context.Background(), "alice", "pw1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("missing file error = %v, want ErrUnavailable", err)
	}

	malformed := NewFileStore(writeTable(t, dir, `[not json`))
	if _, err := malformed.Lookup(context.Background(), "alice", "pw1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("malformed file error = %v, want ErrUnavailable", err)
	}
}

func createSQLiteTable(t *testing.T, path string, rows map[string][2]string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`CREATE TABLE credentials (username TEXT PRIMARY KEY, password TEXT NOT NULL, token TEXT NOT NULL)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for username, values := range rows {
		if _, err := db.Exec(`INSERT INTO credentials (username, password, token) VALUES (?, ?, ?)`, username, values[0], values[1]); err != nil {
			t.Fatalf("insert %s: %v", username, err)
		}
	}
}

func TestSQLiteStoreLookup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.db")
	createSQLiteTable(t, path, map[string][2]string{"alice": {"pw1", "T1"}})
	store := NewSQLiteStore(path)

	record, err := store.Lookup(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if record.Username != "alice" || record.Token != "T1" {
		t.Fatalf("Lookup() = %+v, want alice/T1", record)
	}
	if _, err := store.Lookup(context.Background(), "alice", "wrong"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong password error = %v, want ErrNotFound", err)
	}
	if _, err := store.Lookup(context.Background(), "bob", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStoreUnavailable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if _, err := NewSQLiteStore(filepath.Join(dir, "missing.db")).Lookup(context.Background(), "alice", "pw1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("missing db error = %v, want ErrUnavailable", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.db")); !os.IsNotExist(err) {
		t.Fatalf("lookup created the database file: %v", err)
	}

	empty := filepath.Join(dir, "empty.db")
	db, err := sql.Open("sqlite", empty)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE other (id INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	_ = db.Close()
	if _, err := NewSQLiteStore(empty).Lookup(context.Background(), "alice", "pw1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("missing table error = %v, want ErrUnavailable", err)
	}
}

func TestOpenSelectsBackendByExtension(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]string{
		"users.json":      "*credentialstore.FileStore",
		"users.db":        "*credentialstore.SQLiteStore",
		"creds.SQLITE":    "*credentialstore.SQLiteStore",
		"creds.sqlite3":   "*credentialstore.SQLiteStore",
		"credentials.txt": "*credentialstore.FileStore",
	} {
		store, err := Open(path)
		if err != nil {
			t.Fatalf("Open(%q) error = %v", path, err)
		}
		if got := typeName(store); got != want {
			t.Fatalf("Open(%q) = %s, want %s", path, got, want)
		}
	}
	if _, err := Open("  "); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Open(blank) error = %v, want ErrUnavailable", err)
	}
}

func typeName(store Store) string {
	switch store.(type) {
	case *FileStore:
		return "*credentialstore.FileStore"
	case *SQLiteStore:
		return "*credentialstore.SQLiteStore"
	default:
		return "unknown"
	}
}
