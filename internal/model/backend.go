package model

import (
	"context"
	"errors"

	"github.com/joeblew999/plat-respond/pkg/store"
)

// DocumentsBackend serves the template store from the documents table.
type DocumentsBackend struct {
	model DocumentsModel
}

var _ store.Backend = (*DocumentsBackend)(nil)

func NewDocumentsBackend(m DocumentsModel) *DocumentsBackend {
	return &DocumentsBackend{model: m}
}

func (b *DocumentsBackend) List(ctx context.Context) ([]string, error) {
	return b.model.ListFilenames(ctx)
}

func (b *DocumentsBackend) Get(ctx context.Context, filename string) ([]byte, error) {
	doc, err := b.model.FindOne(ctx, filename)
	if errors.Is(err, ErrNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Content), nil
}

func (b *DocumentsBackend) Put(ctx context.Context, filename string, content []byte) error {
	return b.model.Upsert(ctx, filename, string(content))
}
