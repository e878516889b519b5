// Package render derives what the dashboard shows from the current snapshot,
// filter and saved set. Every function here is pure: the same inputs always
// give the same descriptors.
package render

import (
	"fmt"
	"time"

	"github.com/matheuskafuri/aidash/internal/article"
	"github.com/matheuskafuri/aidash/internal/repository"
)

const MaxTags = 3

const (
	EmptySavedMessage = "No saved articles yet. Press s on an article to save it!"
	EmptyAllMessage   = "No articles found. Try refreshing!"
	LoadFailedMessage = "Failed to load articles. Please try refreshing."
)

const (
	IconSaved   = "★"
	IconUnsaved = "☆"
)

// Saved is the read side of the saved store.
type Saved interface {
	Has(id string) bool
	Size() int
}

// Card describes one article as the sink should draw it.
type Card struct {
	ID          string
	Title       string
	Description string
	URL         string
	Source      article.Source
	SourceName  string
	Tags        []string
	ImageURL    string
	// Placeholder is set when the article has no image to show.
	Placeholder bool
	Saved       bool
}

func (c Card) SaveIcon() string {
	if c.Saved {
		return IconSaved
	}
	return IconUnsaved
}

type Counts struct {
	All   int
	Saved int
}

type Grid struct {
	Filter       repository.Filter
	Cards        []Card
	Empty        bool
	EmptyMessage string
	Counts       Counts
}

// Render builds the grid for filter. Counts cover the whole snapshot and the
// whole saved set whatever the filter is.
func Render(snap article.Snapshot, filter repository.Filter, saved Saved, names article.Names) Grid {
	g := Grid{
		Filter: filter,
		Counts: Counts{All: len(snap), Saved: saved.Size()},
	}

	visible := repository.Filtered(snap, filter, saved)
	if len(visible) == 0 {
		g.Empty = true
		g.EmptyMessage = EmptyMessage(filter)
		return g
	}

	g.Cards = make([]Card, len(visible))
	for i, a := range visible {
		g.Cards[i] = NewCard(a, saved.Has(a.ID), names)
	}
	return g
}

func EmptyMessage(filter repository.Filter) string {
	if filter == repository.FilterSaved {
		return EmptySavedMessage
	}
	return EmptyAllMessage
}

func NewCard(a article.Article, saved bool, names article.Names) Card {
	tags := a.Tags
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return Card{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		Source:      a.Source,
		SourceName:  names.Label(a.Source),
		Tags:        append([]string(nil), tags...),
		ImageURL:    a.ImageURL,
		Placeholder: !a.HasImage(),
		Saved:       saved,
	}
}

// Slide is a carousel entry.
type Slide struct {
	Card
	Index  int
	Active bool
}

// Slides resolves the featured ids against snap. Ids no longer in the
// snapshot are skipped.
func Slides(snap article.Snapshot, featured []string, current int, saved Saved, names article.Names) []Slide {
	if len(featured) == 0 {
		return nil
	}
	byID := make(map[string]article.Article, len(snap))
	for _, a := range snap {
		if _, ok := byID[a.ID]; !ok {
			byID[a.ID] = a
		}
	}

	slides := make([]Slide, 0, len(featured))
	for i, id := range featured {
		a, ok := byID[id]
		if !ok {
			continue
		}
		slides = append(slides, Slide{
			Card:   NewCard(a, saved.Has(id), names),
			Index:  i,
			Active: i == current,
		})
	}
	return slides
}

// BadgeState is the ingestion status shown for a source.
type BadgeState int

const (
	BadgePending BadgeState = iota
	BadgeSuccess
	BadgeError
)

func (s BadgeState) String() string {
	switch s {
	case BadgeSuccess:
		return "success"
	case BadgeError:
		return "error"
	}
	return "pending"
}

type Badge struct {
	Source article.Source
	Name   string
	State  BadgeState
	// CountText is empty until the source has been reported.
	CountText string
}

// Badges returns one badge per known source. Sources the document does not
// report on, or that the aggregator skipped this run, stay pending.
func Badges(statuses map[article.Source]article.SourceStatus, names article.Names) []Badge {
	badges := make([]Badge, len(article.KnownSources))
	for i, src := range article.KnownSources {
		b := Badge{Source: src, Name: names.Label(src)}
		if st, ok := statuses[src]; ok {
			b.CountText = fmt.Sprintf("%d articles", st.ArticleCount)
			switch {
			case st.OK():
				b.State = BadgeSuccess
			case st.Status == article.StatusNotRun:
				b.State = BadgePending
			default:
				b.State = BadgeError
			}
		}
		badges[i] = b
	}
	return badges
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// LastUpdated formats the aggregator timestamp for the header. Anything it
// cannot parse renders as "".
func LastUpdated(ts string) string {
	if ts == "" {
		return ""
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return "Last updated: " + t.Format("Jan 2, 03:04 PM")
		}
	}
	return ""
}
