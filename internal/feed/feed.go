package feed

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/matheuskafuri/aidash/internal/article"
)

// Source produces the aggregated feed document.
type Source interface {
	Fetch(ctx context.Context) (article.Document, error)
	// Location is the URL or path the source reads, for display and logs.
	Location() string
}

// StatusError is returned when the feed endpoint answers with a non-2xx
// status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// ErrStatus matches any *StatusError with errors.Is.
var ErrStatus = errors.New("unexpected feed status")

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

type HTTPSource struct {
	url    string
	client *http.Client
}

func NewHTTPSource(rawURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: rawURL, client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Location() string { return s.url }

func (s *HTTPSource) Fetch(ctx context.Context) (article.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return article.Document{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return article.Document{}, fmt.Errorf("fetching %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return article.Document{}, &StatusError{Code: resp.StatusCode}
	}

	doc, err := article.Decode(resp.Body)
	if err != nil {
		return article.Document{}, err
	}
	return normalize(doc), nil
}

// FileSource reads the document the aggregator writes to disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Location() string { return s.path }

func (s *FileSource) Fetch(ctx context.Context) (article.Document, error) {
	if err := ctx.Err(); err != nil {
		return article.Document{}, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return article.Document{}, fmt.Errorf("opening feed file: %w", err)
	}
	defer f.Close()

	doc, err := article.Decode(f)
	if err != nil {
		return article.Document{}, err
	}
	return normalize(doc), nil
}

// New picks an HTTP source for http(s) locations and a file source for
// everything else.
func New(location string, timeout time.Duration) Source {
	if u, err := url.Parse(location); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return NewHTTPSource(location, timeout)
	}
	return NewFileSource(strings.TrimPrefix(location, "file://"))
}

const maxDescription = 300

// normalize cleans scraper output: descriptions are stripped of markup and
// capped, tags are trimmed and articles without an id get one derived from
// their URL.
func normalize(doc article.Document) article.Document {
	if doc.Articles == nil {
		return doc
	}
	out := make([]article.Article, 0, len(doc.Articles))
	for _, a := range doc.Articles {
		if a.ID == "" {
			if a.URL == "" {
				continue
			}
			a.ID = articleID(a.URL)
		}
		a.Title = strings.TrimSpace(a.Title)
		a.Description = truncate(stripHTML(a.Description), maxDescription)
		a.ImageURL = strings.TrimSpace(a.ImageURL)

		var tags []string
		for _, t := range a.Tags {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		a.Tags = tags
		out = append(out, a)
	}
	doc.Articles = out
	return doc
}

func articleID(link string) string {
	h := sha256.Sum256([]byte(link))
	return fmt.Sprintf("%x", h[:16])
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
