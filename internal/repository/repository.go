package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/matheuskafuri/aidash/internal/article"
	"github.com/matheuskafuri/aidash/internal/feed"
	"github.com/matheuskafuri/aidash/internal/logging"
)

// ErrLoad wraps every failed Load.
var ErrLoad = errors.New("loading articles")

// Filter is the grid view mode.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterSaved Filter = "saved"
)

// ParseFilter maps a flag or config value to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case FilterAll, "":
		return FilterAll, nil
	case FilterSaved:
		return FilterSaved, nil
	}
	return "", fmt.Errorf("unknown filter %q (valid: all, saved)", s)
}

// Membership is the subset of the saved store the repository needs.
type Membership interface {
	Has(id string) bool
}

// Result is what a successful load hands back to the caller.
type Result struct {
	Snapshot    article.Snapshot
	Sources     map[article.Source]article.SourceStatus
	LastUpdated string
}

// Repository holds the current snapshot. A new load replaces it in a single
// assignment; readers never see a partially applied load.
type Repository struct {
	mu       sync.RWMutex
	snapshot article.Snapshot
	index    map[string]int
}

func New() *Repository {
	return &Repository{snapshot: article.Snapshot{}, index: map[string]int{}}
}

// Load fetches the feed from src and installs it. On failure the current
// snapshot is kept.
func (r *Repository) Load(ctx context.Context, src feed.Source) (Result, error) {
	res, err := Fetch(ctx, src)
	if err != nil {
		return Result{}, err
	}
	r.Apply(res.Snapshot)
	return res, nil
}

// Fetch reads the feed without touching any repository. The TUI runs it off
// the event loop and applies the result when it comes back.
func Fetch(ctx context.Context, src feed.Source) (Result, error) {
	doc, err := src.Fetch(ctx)
	if err != nil {
		logging.Error("loading articles", "source", src.Location(), "err", err)
		return Result{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	logging.Info("loaded articles", "count", len(doc.Articles), "source", src.Location())
	return Result{
		Snapshot:    doc.Snapshot(),
		Sources:     doc.Sources,
		LastUpdated: doc.LastUpdated,
	}, nil
}

// Apply installs snap as the current snapshot.
func (r *Repository) Apply(snap article.Snapshot) {
	index := make(map[string]int, len(snap))
	for i, a := range snap {
		if _, dup := index[a.ID]; !dup {
			index[a.ID] = i
		}
	}
	r.mu.Lock()
	r.snapshot, r.index = snap, index
	r.mu.Unlock()
}

// All returns the current snapshot in feed order.
func (r *Repository) All() article.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Find looks an article up by id in the current snapshot.
func (r *Repository) Find(id string) (article.Article, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return article.Article{}, false
	}
	return r.snapshot[i], true
}

func (r *Repository) Filtered(f Filter, saved Membership) article.Snapshot {
	return Filtered(r.All(), f, saved)
}

// Filtered returns the part of snap visible under f, in snapshot order.
func Filtered(snap article.Snapshot, f Filter, saved Membership) article.Snapshot {
	if f != FilterSaved {
		return snap
	}
	out := article.Snapshot{}
	for _, a := range snap {
		if saved.Has(a.ID) {
			out = append(out, a)
		}
	}
	return out
}
