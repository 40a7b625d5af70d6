package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/joeblew999/plat-respond/pkg/template"
	"github.com/zeromicro/go-zero/core/mr"
)

// Entry is one listed template with its parsed filename.
type Entry struct {
	template.Info
	Template *template.Template
}

// Label is the picker label of the entry.
func (e Entry) Label() string {
	return e.Template.Label()
}

// Listing is the result of Browse.
type Listing struct {
	// Total is the number of templates in the store before filtering.
	Total int
	// Facets are computed over the whole store, so filters can be widened.
	Facets template.Facets
	// Entries are the loadable matches, sorted by filename.
	Entries []Entry
	// Warnings name matches that could not be loaded.
	Warnings []string
}

// Browse lists the store, applies f and loads every match. Matches that
// fail to load are skipped and reported in Warnings. Only a failure to list
// is returned as an error.
func (s *Store) Browse(ctx context.Context, f template.Filter) (*Listing, error) {
	names, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := f.Apply(names)
	loaded := make([]*template.Template, len(matches))
	failures := make([]error, len(matches))

	fns := make([]func() error, 0, len(matches))
	for i, info := range matches {
		fns = append(fns, func() error {
			loaded[i], failures[i] = s.Load(ctx, info.Filename)
			return nil
		})
	}
	_ = mr.Finish(fns...)

	listing := &Listing{
		Total:  len(names),
		Facets: template.FacetsOf(names),
	}
	for i, info := range matches {
		if failures[i] != nil {
			listing.Warnings = append(listing.Warnings, loadWarning(info.Filename, failures[i]))
			continue
		}
		listing.Entries = append(listing.Entries, Entry{Info: info, Template: loaded[i]})
	}
	sort.Slice(listing.Entries, func(a, b int) bool {
		return listing.Entries[a].Filename < listing.Entries[b].Filename
	})

	return listing, nil
}

func loadWarning(filename string, err error) string {
	switch {
	case errors.Is(err, ErrInvalidDocument):
		return fmt.Sprintf("%s could not be parsed and was skipped", filename)
	case errors.Is(err, ErrNotFound):
		return fmt.Sprintf("%s disappeared from the store and was skipped", filename)
	default:
		return fmt.Sprintf("%s could not be loaded: %v", filename, err)
	}
}
