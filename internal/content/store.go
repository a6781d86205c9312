package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

var ErrNotFound = errors.New("content not found")

// Store reads article bodies from a directory of {slug}.md files.
type Store struct {
	fsys fs.FS
}

func NewStore(dir string) *Store {
	return &Store{fsys: os.DirFS(dir)}
}

func NewStoreFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Open returns the body for a file name as it appears in the content URL,
// e.g. "a-guide-to-modern-css-layouts.md".
func (s *Store) Open(name string) ([]byte, error) {
	if !strings.HasSuffix(name, Ext) || !fs.ValidPath(name) || path.Base(name) != name {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	b, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	} else if err != nil {
		return nil, fmt.Errorf("read content %q: %w", name, err)
	}

	return b, nil
}

// Article implements Source without going through HTTP.
func (s *Store) Article(_ context.Context, slug string) (string, error) {
	b, err := s.Open(slug + Ext)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
