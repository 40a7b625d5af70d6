package svc

import (
	"context"
	"fmt"

	"github.com/joeblew999/plat-respond/internal/config"
	"github.com/joeblew999/plat-respond/internal/model"
	"github.com/joeblew999/plat-respond/pkg/cache"
	"github.com/joeblew999/plat-respond/pkg/db"
	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/joeblew999/plat-respond/pkg/store/drive"
	"github.com/joeblew999/plat-respond/pkg/store/local"
	"github.com/zeromicro/go-zero/core/logx"
)

// NewStore opens the configured backend and wraps it in a cached store.
// The returned cleanup releases backend resources and is never nil.
func NewStore(ctx context.Context, c config.StoreConfig) (*store.Store, func(), error) {
	backend, cleanup, err := newBackend(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	st := store.New(backend, store.WithCache(cache.New(c.CacheTTL, cache.WithName(c.Backend))))
	logx.Infow("Template store configured",
		logx.Field("backend", c.Backend),
		logx.Field("cacheTTL", st.Cache().TTL().String()),
	)
	return st, cleanup, nil
}

func newBackend(ctx context.Context, c config.StoreConfig) (store.Backend, func(), error) {
	noop := func() {}

	switch c.Backend {
	case config.BackendDrive:
		b, err := drive.New(ctx, drive.Config{
			FolderID:        c.Drive.FolderID,
			CredentialsFile: c.Drive.CredentialsFile,
			RateLimit:       c.Drive.RateLimit,
			Burst:           c.Drive.Burst,
		})
		if err != nil {
			return nil, nil, err
		}
		return b, noop, nil

	case config.BackendSQLite:
		database, err := db.Open(c.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		b := model.NewDocumentsBackend(model.NewDocumentsModel(database.SqlConn()))
		return b, func() {
			logx.Info("Closing database")
			database.Close()
		}, nil

	case config.BackendLocal, "":
		b, err := local.New(c.Local.Dir)
		if err != nil {
			return nil, nil, err
		}
		return b, noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", c.Backend)
	}
}
