package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dev-9820/eventease-frontend/internal/domain"
)

// Blob is the single durable artifact the client keeps across restarts:
// the bearer token and the user it belongs to. Absence means anonymous.
type Blob struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// File is the typed accessor for the session blob. Reads never fail: a
// missing or malformed file is reported as "no session". Only the Store
// writes through it.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load() (*Blob, bool) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, false
	}

	var b Blob
	if err := json.Unmarshal(raw, &b); err != nil {
		// Corrupt blob is treated as anonymous, deterministically.
		return nil, false
	}
	if b.Token == "" || b.User == nil {
		return nil, false
	}

	return &b, true
}

func (f *File) Save(b *Blob) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	return os.WriteFile(f.path, raw, 0o600)
}

// Clear removes the blob. Removing an absent blob is not an error.
func (f *File) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Token is the snapshot read the API client performs on every outbound
// request.
func (f *File) Token() (string, bool) {
	b, ok := f.Load()
	if !ok {
		return "", false
	}
	return b.Token, true
}
