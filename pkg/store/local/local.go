// Package local is a template store backend over a directory of JSON files.
package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeblew999/plat-respond/pkg/log"
	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/natefinch/atomic"
)

// Backend stores each template as <dir>/<filename>.
type Backend struct {
	dir string
}

var _ store.Backend = (*Backend)(nil)

// New returns a backend rooted at dir, creating it if needed.
func New(dir string) (*Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create template directory: %w", err)
	}
	log.Debug("Local template store ready", "dir", dir)
	return &Backend{dir: dir}, nil
}

// Dir returns the backing directory.
func (b *Backend) Dir() string {
	return b.dir
}

func (b *Backend) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("read template directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, ctx.Err()
}

func (b *Backend) Get(ctx context.Context, filename string) ([]byte, error) {
	path, err := b.path(filename)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, store.ErrNotFound
	}
	return data, err
}

func (b *Backend) Put(ctx context.Context, filename string, content []byte) error {
	path, err := b.path(filename)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// path rejects filenames that would escape the directory.
func (b *Backend) path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("%w: %q", store.ErrInvalidFilename, filename)
	}
	return filepath.Join(b.dir, filename), nil
}
