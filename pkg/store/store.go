// Package store reads and writes template documents by filename through a
// pluggable Backend, with a short-lived read cache in front.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joeblew999/plat-respond/pkg/cache"
	"github.com/joeblew999/plat-respond/pkg/log"
	"github.com/joeblew999/plat-respond/pkg/template"
)

var (
	// ErrNotFound is returned when no document has the requested filename.
	ErrNotFound = errors.New("template not found")
	// ErrInvalidDocument is returned when a stored document does not parse.
	ErrInvalidDocument = errors.New("invalid template document")
	// ErrInvalidFilename is returned for filenames that cannot name a template.
	ErrInvalidFilename = errors.New("invalid template filename")
)

// Backend is a flat folder of documents keyed by filename.
type Backend interface {
	// List returns the filenames of all JSON documents, in no particular order.
	List(ctx context.Context) ([]string, error)
	// Get returns a document's content, or ErrNotFound.
	Get(ctx context.Context, filename string) ([]byte, error)
	// Put creates or overwrites a document.
	Put(ctx context.Context, filename string, content []byte) error
}

// Store is the template store client. It owns the read cache: List and Load
// are served from the cache for up to its TTL, and Save invalidates it.
type Store struct {
	backend Backend
	cache   *cache.Cache
}

// Option configures a Store.
type Option func(*Store)

// WithCache replaces the default cache.
func WithCache(c *cache.Cache) Option {
	return func(s *Store) {
		s.cache = c
	}
}

// New creates a store over backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.New(cache.DefaultTTL)
	}
	return s
}

// Cache exposes the store's cache.
func (s *Store) Cache() *cache.Cache {
	return s.cache
}

const listKey = "list"

func docKey(filename string) string {
	return "doc:" + filename
}

// List returns the filenames of all stored templates.
func (s *Store) List(ctx context.Context) ([]string, error) {
	v, err := s.cache.Take(listKey, func() (any, error) {
		start := time.Now()
		// the fetch is shared by concurrent callers, so one of them going
		// away must not cancel it for the rest
		names, err := s.backend.List(context.WithoutCancel(ctx))
		observe("list", start, err)
		if err != nil {
			return nil, err
		}

		out := make([]string, 0, len(names))
		for _, name := range names {
			if template.IsTemplateFile(name) {
				out = append(out, name)
			}
		}
		return out, nil
	})
	if err != nil {
		log.Warn("List templates failed", "error", err)
		return nil, fmt.Errorf("list templates: %w", err)
	}

	names := v.([]string)
	return append([]string(nil), names...), nil
}

// Load returns the template stored under filename. It fails with
// ErrNotFound for missing documents and ErrInvalidDocument for documents
// that do not parse.
func (s *Store) Load(ctx context.Context, filename string) (*template.Template, error) {
	v, err := s.cache.Take(docKey(filename), func() (any, error) {
		start := time.Now()
		data, err := s.backend.Get(context.WithoutCancel(ctx), filename)
		observe("get", start, err)
		if err != nil {
			return nil, err
		}

		t, err := template.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return t, nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn("Load template failed", "filename", filename, "error", err)
		}
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}

	t := *v.(*template.Template)
	t.Variables = append([]string{}, t.Variables...)
	return &t, nil
}

// Save creates or overwrites the document under filename and invalidates
// the whole cache.
func (s *Store) Save(ctx context.Context, filename string, t *template.Template) error {
	if !template.IsTemplateFile(filename) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	data, err := template.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}

	start := time.Now()
	err = s.backend.Put(ctx, filename, data)
	observe("put", start, err)
	s.cache.InvalidateAll()
	if err != nil {
		log.Error("Save template failed", "filename", filename, "error", err)
		return fmt.Errorf("save %s: %w", filename, err)
	}

	log.Info("Template saved", "filename", filename, "size", len(data))
	return nil
}
