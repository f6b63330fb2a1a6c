// Package session keeps the signed-in state between command runs and
// gates the operations that need it.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/storemate/storemate-cli/internal/api"
	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

// State is the persisted session: the signed-in user and the cookie
// the remote service issued.
type State struct {
	User       *api.User `json:"user"`
	Token      string    `json:"token"`
	SignedInAt time.Time `json:"signedInAt"`
}

// Store persists session state between runs.
type Store interface {
	Load() (*State, error)
	Save(state *State) error
	Clear() error
}

// FileStore keeps the session in a JSON file readable only by the
// owner.
type FileStore struct {
	path string
}

// NewFileStore builds a store over the given path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session file path is required")
	}
	return &FileStore{path: path}, nil
}

// Load reads the persisted session. A missing file means no session,
// not an error.
func (s *FileStore) Load() (*State, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read session file")
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		// A corrupt session file is the same as no session.
		return nil, nil
	}
	if state.Token == "" {
		return nil, nil
	}
	return &state, nil
}

// Save writes the session with owner-only permissions.
func (s *FileStore) Save(state *State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create session dir")
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write session file")
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a
// no-op.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove session file")
	}
	return nil
}
