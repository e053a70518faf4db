package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileKV stores each key as one file under a data directory.  It is the
// default backend: no external service needed, and the blobs on disk are
// plain JSON a user can inspect or back up by hand.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed and returns a store
// rooted at it.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// GetItem reads the blob for key.  A missing file means the key was never
// written and is reported as absent, not as an error.
func (s *FileKV) GetItem(_ context.Context, key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

// SetItem overwrites the blob for key.  The write goes through a temp file
// and rename so a crash mid-write cannot leave a truncated snapshot.
func (s *FileKV) SetItem(_ context.Context, key, value string) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}
