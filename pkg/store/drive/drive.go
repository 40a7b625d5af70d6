// Package drive is a template store backend over one Google Drive folder.
//
// Templates are JSON files whose parent is the configured folder. Lookups go
// by file name, so two files with the same name in the folder resolve to
// whichever Drive returns first.
package drive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joeblew999/plat-respond/pkg/log"
	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/zeromicro/go-zero/core/breaker"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// MimeType is the content type of every template document.
const MimeType = "application/json"

// Config configures the Drive backend.
type Config struct {
	// FolderID is the Drive folder holding the templates.
	FolderID string
	// CredentialsFile is a service-account JSON key. When empty, application
	// default credentials are used.
	CredentialsFile string
	// RateLimit caps Drive calls per second; zero disables throttling.
	RateLimit float64
	// Burst is the limiter burst size (default 1).
	Burst int
	// TokenSource overrides credential discovery.
	TokenSource oauth2.TokenSource
	// ClientOptions are appended to the Drive client options.
	ClientOptions []option.ClientOption
}

// Backend talks to the Drive v3 files API.
type Backend struct {
	folderID string
	files    filesAPI
	limiter  *rate.Limiter
	brk      breaker.Breaker
}

var _ store.Backend = (*Backend)(nil)

// New builds a Drive client from cfg.
func New(ctx context.Context, cfg Config) (*Backend, error) {
	if strings.TrimSpace(cfg.FolderID) == "" {
		return nil, errors.New("drive: folder id is required")
	}

	ts, err := tokenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := append([]option.ClientOption{option.WithTokenSource(ts)}, cfg.ClientOptions...)
	svc, err := gdrive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("drive: create service: %w", err)
	}

	log.Info("Drive template store ready", "folder", cfg.FolderID)
	return newBackend(cfg, &serviceFiles{svc: svc}), nil
}

func newBackend(cfg Config, files filesAPI) *Backend {
	b := &Backend{
		folderID: cfg.FolderID,
		files:    files,
		brk:      breaker.NewBreaker(breaker.WithName("drive:" + cfg.FolderID)),
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		b.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return b
}

func tokenSource(ctx context.Context, cfg Config) (oauth2.TokenSource, error) {
	if cfg.TokenSource != nil {
		return cfg.TokenSource, nil
	}

	if cfg.CredentialsFile == "" {
		ts, err := google.DefaultTokenSource(ctx, gdrive.DriveScope)
		if err != nil {
			return nil, fmt.Errorf("drive: default credentials: %w", err)
		}
		return ts, nil
	}

	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("drive: read credentials: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, gdrive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("drive: parse credentials: %w", err)
	}
	return creds.TokenSource, nil
}

func (b *Backend) List(ctx context.Context) ([]string, error) {
	var names []string
	err := b.call(ctx, func() error {
		files, err := b.files.find(ctx, b.listQuery())
		if err != nil {
			return err
		}
		names = make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("drive: list: %w", err)
	}
	return names, nil
}

func (b *Backend) Get(ctx context.Context, filename string) ([]byte, error) {
	var data []byte
	err := b.call(ctx, func() error {
		files, err := b.files.find(ctx, b.nameQuery(filename))
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return store.ErrNotFound
		}
		data, err = b.files.download(ctx, files[0].Id)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("drive: get %s: %w", filename, err)
	}
	return data, nil
}

// Put updates the content of the first file named filename, or creates it.
func (b *Backend) Put(ctx context.Context, filename string, content []byte) error {
	err := b.call(ctx, func() error {
		files, err := b.files.find(ctx, b.nameQuery(filename))
		if err != nil {
			return err
		}
		if len(files) > 0 {
			log.Debug("Updating Drive file", "filename", filename, "id", files[0].Id)
			return b.files.update(ctx, files[0].Id, content)
		}

		log.Debug("Creating Drive file", "filename", filename)
		return b.files.create(ctx, &gdrive.File{
			Name:     filename,
			Parents:  []string{b.folderID},
			MimeType: MimeType,
		}, content)
	})
	if err != nil {
		return fmt.Errorf("drive: put %s: %w", filename, err)
	}
	return nil
}

// call throttles fn and runs it through the circuit breaker. A missing file
// is an answer, not a failure, so it does not count against the breaker.
func (b *Backend) call(ctx context.Context, fn func() error) error {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return b.brk.DoWithAcceptable(fn, func(err error) bool {
		return err == nil || errors.Is(err, store.ErrNotFound)
	})
}

func (b *Backend) listQuery() string {
	return fmt.Sprintf("'%s' in parents and mimeType='%s' and trashed=false", quote(b.folderID), MimeType)
}

func (b *Backend) nameQuery(filename string) string {
	return fmt.Sprintf("'%s' in parents and name='%s' and trashed=false", quote(b.folderID), quote(filename))
}

// quote escapes a value for a single-quoted Drive query string.
func quote(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
