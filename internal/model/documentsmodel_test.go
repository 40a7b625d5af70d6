package model

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/joeblew999/plat-respond/pkg/db"
	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/joeblew999/plat-respond/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) DocumentsModel {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "respond.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return NewDocumentsModel(d.SqlConn())
}

func TestDocumentsCRUD(t *testing.T) {
	ctx := context.Background()
	m := newTestModel(t)

	_, err := m.Insert(ctx, &Documents{Filename: "b.json", Content: "{}"})
	require.NoError(t, err)

	doc, err := m.FindOne(ctx, "b.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", doc.Content)
	assert.NotEmpty(t, doc.UpdatedAt)

	require.NoError(t, m.Update(ctx, &Documents{Filename: "b.json", Content: `{"name":"b"}`}))
	doc, err = m.FindOne(ctx, "b.json")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"b"}`, doc.Content)

	require.NoError(t, m.Delete(ctx, "b.json"))
	_, err = m.FindOne(ctx, "b.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertAndList(t *testing.T) {
	ctx := context.Background()
	m := newTestModel(t)

	require.NoError(t, m.Upsert(ctx, "z.json", "1"))
	require.NoError(t, m.Upsert(ctx, "a.json", "2"))
	require.NoError(t, m.Upsert(ctx, "z.json", "3"))

	names, err := m.ListFilenames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "z.json"}, names)

	doc, err := m.FindOne(ctx, "z.json")
	require.NoError(t, err)
	assert.Equal(t, "3", doc.Content)
}

func TestBackendThroughStore(t *testing.T) {
	ctx := context.Background()
	s := store.New(NewDocumentsBackend(newTestModel(t)))

	_, err := s.Load(ctx, "missing.json")
	assert.ErrorIs(t, err, store.ErrNotFound)

	tpl := &template.Template{Name: "sam_billing_late", Body: "Dear {name}", Variables: []string{"name"}, Description: "Late payment"}
	require.NoError(t, s.Save(ctx, "sam_billing_late.json", tpl))

	got, err := s.Load(ctx, "sam_billing_late.json")
	require.NoError(t, err)
	assert.Equal(t, tpl, got)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sam_billing_late.json"}, names)
}
