package article

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Source identifies which newsletter an article was aggregated from.
type Source string

const (
	SourceBenBites  Source = "ben_bites"
	SourceAIRundown Source = "ai_rundown"
)

// KnownSources lists the sources the aggregator reports on, in badge order.
var KnownSources = []Source{SourceBenBites, SourceAIRundown}

var displayNames = map[Source]string{
	SourceBenBites:  "Ben's Bites",
	SourceAIRundown: "AI Rundown",
}

// DisplayName returns the human label for a source. Unknown sources fall
// back to the AI Rundown label, matching how the aggregator's consumers have
// always rendered them.
func (s Source) DisplayName() string {
	if name, ok := displayNames[s]; ok {
		return name
	}
	return displayNames[SourceAIRundown]
}

// Known reports whether s is one of KnownSources.
func (s Source) Known() bool {
	_, ok := displayNames[s]
	return ok
}

// Names overrides source display names, usually from the config file.
type Names map[Source]string

// Label returns the configured name for s, or s.DisplayName() when none is
// set.
func (n Names) Label(s Source) string {
	if name := strings.TrimSpace(n[s]); name != "" {
		return name
	}
	return s.DisplayName()
}

type Article struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	URL           string   `json:"url"`
	ImageURL      string   `json:"image_url,omitempty"`
	Source        Source   `json:"source"`
	Tags          []string `json:"tags,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
}

// HasImage reports whether the article can be featured in the carousel.
func (a Article) HasImage() bool {
	return a.ImageURL != ""
}

// Snapshot is the ordered article list from one successful load. It is
// replaced wholesale, never mutated.
type Snapshot []Article

// IDs returns the article ids in snapshot order.
func (s Snapshot) IDs() []string {
	ids := make([]string, len(s))
	for i, a := range s {
		ids[i] = a.ID
	}
	return ids
}

// Status values reported per source by the aggregator.
// Anything else, "error" included, is a failed run.
const (
	StatusSuccess = "success"
	StatusNotRun  = "not_run"
)

type SourceStatus struct {
	Status       string `json:"status"`
	ArticleCount int    `json:"article_count"`
	LastScraped  string `json:"last_scraped,omitempty"`
}

// OK reports whether the source was ingested successfully.
func (s SourceStatus) OK() bool {
	return s.Status == StatusSuccess
}

// Document is the aggregated feed as produced by the aggregator.
type Document struct {
	Articles      []Article               `json:"articles"`
	Sources       map[Source]SourceStatus `json:"sources"`
	LastUpdated   string                  `json:"last_updated"`
	TotalArticles int                     `json:"total_articles,omitempty"`
}

// Snapshot returns the document's articles. A missing articles field is an
// empty snapshot.
func (d Document) Snapshot() Snapshot {
	if d.Articles == nil {
		return Snapshot{}
	}
	return Snapshot(d.Articles)
}

// Decode reads a feed document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decoding feed document: %w", err)
	}
	return doc, nil
}
