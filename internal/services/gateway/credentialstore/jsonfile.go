package credentialstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

type fileEntry struct {
	Password string `json:"password"`
	Token    string `json:"token"`
}

// FileStore reads a JSON object keyed by username:
//
//	{"alice": {"password": "pw1", "token": "T1"}}
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the JSON file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Lookup implements Store.
func (s *FileStore) Lookup(ctx context.Context, username, password string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Record{}, fmt.Errorf("%w: read %s: %v", ErrUnavailable, s.path, err)
	}
	var table map[string]*fileEntry
	if err := json.Unmarshal(data, &table); err != nil {
		return Record{}, fmt.Errorf("%w: parse %s: %v", ErrUnavailable, s.path, err)
	}
	entry, found := table[username]
	if !found || entry == nil {
		return Record{}, ErrNotFound
	}
	return match(Record{Username: username, Password: entry.Password, Token: entry.Token}, true, password)
}
