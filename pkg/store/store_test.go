package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joeblew999/plat-respond/pkg/cache"
	"github.com/joeblew999/plat-respond/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTemplate() *template.Template {
	return &template.Template{
		Name:        "sam_billing_late",
		Body:        "Hi {name}, invoice {invoice} is late.",
		Variables:   []string{"name", "invoice"},
		Description: "Late invoice nudge",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemory())

	orig := sampleTemplate()
	require.NoError(t, s.Save(ctx, "sam_billing_late.json", orig))

	got, err := s.Load(ctx, "sam_billing_late.json")
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemory())

	require.NoError(t, s.Save(ctx, "a_b_c.json", sampleTemplate()))
	updated := sampleTemplate()
	updated.Body = "New body {name}"
	require.NoError(t, s.Save(ctx, "a_b_c.json", updated))

	got, err := s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)
	assert.Equal(t, "New body {name}", got.Body)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b_c.json"}, names)
}

func TestSaveRejectsNonJSONFilename(t *testing.T) {
	err := New(NewMemory()).Save(context.Background(), "notes.txt", sampleTemplate())
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestLoadMissing(t *testing.T) {
	_, err := New(NewMemory()).Load(context.Background(), "nope.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadInvalidDocument(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Put(ctx, "broken.json", []byte("{not json")))

	_, err := New(mem).Load(ctx, "broken.json")
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestListSkipsNonTemplateFiles(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	require.NoError(t, mem.Put(ctx, "a_b_c.json", []byte("{}")))
	require.NoError(t, mem.Put(ctx, "readme.txt", []byte("hi")))

	names, err := New(mem).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b_c.json"}, names)
}

func TestListBackendFailure(t *testing.T) {
	mem := NewMemory()
	boom := errors.New("connection refused")
	mem.FailWith(boom)

	names, err := New(mem).List(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, names)
}

func TestReadsWithinTTLHitCache(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := New(mem, WithCache(cache.New(time.Minute)))
	require.NoError(t, s.Save(ctx, "a_b_c.json", sampleTemplate()))

	first, err := s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)
	second, err := s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	l1, err := s.List(ctx)
	require.NoError(t, err)
	l2, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, l1, l2)

	lists, gets, _ := mem.Calls()
	assert.Equal(t, 1, gets)
	assert.Equal(t, 1, lists)
}

func TestReadsAfterTTLHitBackend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mem := NewMemory()
	s := New(mem, WithCache(cache.New(time.Second, cache.WithClock(func() time.Time { return now }))))
	require.NoError(t, s.Save(ctx, "a_b_c.json", sampleTemplate()))

	_, err := s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)
	now = now.Add(2 * time.Second)
	_, err = s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)

	_, gets, _ := mem.Calls()
	assert.Equal(t, 2, gets)
}

func TestWriteInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := New(mem, WithCache(cache.New(time.Hour)))
	require.NoError(t, s.Save(ctx, "a_b_c.json", sampleTemplate()))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 1)
	_, err = s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)

	updated := sampleTemplate()
	updated.Description = "changed"
	require.NoError(t, s.Save(ctx, "x_y_z.json", updated))

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a_b_c.json", "x_y_z.json"}, names)

	// Writing another file still drops cached documents.
	_, err = s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)

	lists, gets, _ := mem.Calls()
	assert.Equal(t, 2, lists)
	assert.Equal(t, 2, gets)
}

func TestLoadReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemory())
	require.NoError(t, s.Save(ctx, "a_b_c.json", sampleTemplate()))

	got, err := s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)
	got.Variables[0] = "mutated"
	got.Body = "mutated"

	again, err := s.Load(ctx, "a_b_c.json")
	require.NoError(t, err)
	assert.Equal(t, sampleTemplate(), again)
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	s := New(mem)

	for _, name := range []string{"sam_billing_late.json", "lin_billing_refund.json", "lin_support_hello.json"} {
		tmpl := sampleTemplate()
		tmpl.Name = template.Stem(name)
		require.NoError(t, s.Save(ctx, name, tmpl))
	}
	require.NoError(t, mem.Put(ctx, "lin_billing_broken.json", []byte("nope")))
	s.Cache().InvalidateAll()

	listing, err := s.Browse(ctx, template.Filter{Skills: []string{"billing"}})
	require.NoError(t, err)

	assert.Equal(t, 4, listing.Total)
	assert.Equal(t, []string{"lin", "sam"}, listing.Facets.Users)
	assert.Equal(t, []string{"billing", "support"}, listing.Facets.Skills)

	require.Len(t, listing.Entries, 2)
	assert.Equal(t, "lin_billing_refund.json", listing.Entries[0].Filename)
	assert.Equal(t, "sam_billing_late.json", listing.Entries[1].Filename)
	assert.Equal(t, "sam", listing.Entries[1].User)
	assert.Equal(t, "sam_billing_late (Late invoice nudge)", listing.Entries[1].Label())

	require.Len(t, listing.Warnings, 1)
	assert.Contains(t, listing.Warnings[0], "lin_billing_broken.json")
}

func TestBrowseListFailure(t *testing.T) {
	mem := NewMemory()
	mem.FailWith(errors.New("offline"))

	listing, err := New(mem).Browse(context.Background(), template.Filter{})
	assert.Error(t, err)
	assert.Nil(t, listing)
}

// ctxBackend fails calls whose context is already done.
type ctxBackend struct {
	Backend
}

func (b ctxBackend) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.Backend.List(ctx)
}

func (b ctxBackend) Get(ctx context.Context, filename string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.Backend.Get(ctx, filename)
}

func TestReadsSurviveCallerCancellation(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, New(mem).Save(context.Background(), "sam_billing_late.json", sampleTemplate()))

	s := New(ctxBackend{Backend: mem})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sam_billing_late.json"}, names)

	got, err := s.Load(ctx, "sam_billing_late.json")
	require.NoError(t, err)
	assert.Equal(t, "sam_billing_late", got.Name)
}
