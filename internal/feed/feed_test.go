package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matheuskafuri/aidash/internal/article"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleDoc = `{
	"last_updated": "2026-01-05T09:30:00",
	"articles": [
		{"id": "a1", "title": " One ", "url": "https://a.test/1", "source": "ben_bites", "description": "<p>Hello <b>world</b></p>", "tags": ["llm", " ", "agents "]},
		{"title": "No id", "url": "https://a.test/2", "source": "ai_rundown"},
		{"title": "No id or url", "source": "ai_rundown"}
	],
	"sources": {"ben_bites": {"status": "success", "article_count": 1}}
}`

func TestHTTPSourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	doc, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	src.client.CloseIdleConnections()

	if len(doc.Articles) != 2 {
		t.Fatalf("expected 2 articles after normalize, got %d", len(doc.Articles))
	}
	a := doc.Articles[0]
	if a.Title != "One" {
		t.Errorf("title not trimmed: %q", a.Title)
	}
	if a.Description != "Hello world" {
		t.Errorf("description not stripped: %q", a.Description)
	}
	if len(a.Tags) != 2 || a.Tags[1] != "agents" {
		t.Errorf("tags not cleaned: %v", a.Tags)
	}
	if doc.Articles[1].ID != articleID("https://a.test/2") {
		t.Errorf("expected derived id, got %q", doc.Articles[1].ID)
	}
}

func TestHTTPSourceNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	_, err := src.Fetch(context.Background())
	src.client.CloseIdleConnections()

	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Errorf("expected StatusError 404, got %v", err)
	}
}

func TestHTTPSourceCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewHTTPSource(srv.URL, 5*time.Second)
	if _, err := src.Fetch(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
	src.client.CloseIdleConnections()
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregated_articles.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := NewFileSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(doc.Articles) != 2 {
		t.Errorf("expected 2 articles, got %d", len(doc.Articles))
	}
	if !doc.Sources[article.SourceBenBites].OK() {
		t.Error("expected ben_bites status success")
	}
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).Fetch(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNewPicksSource(t *testing.T) {
	tests := []struct {
		location string
		wantHTTP bool
		wantLoc  string
	}{
		{"https://example.com/aggregated_articles.json", true, "https://example.com/aggregated_articles.json"},
		{"http://localhost:8000/feed.json", true, "http://localhost:8000/feed.json"},
		{".tmp/aggregated_articles.json", false, ".tmp/aggregated_articles.json"},
		{"file:///var/data/feed.json", false, "/var/data/feed.json"},
	}
	for _, tt := range tests {
		src := New(tt.location, time.Second)
		_, isHTTP := src.(*HTTPSource)
		if isHTTP != tt.wantHTTP {
			t.Errorf("New(%q): http=%v, want %v", tt.location, isHTTP, tt.wantHTTP)
		}
		if src.Location() != tt.wantLoc {
			t.Errorf("New(%q).Location() = %q, want %q", tt.location, src.Location(), tt.wantLoc)
		}
	}
}

func TestArticleID(t *testing.T) {
	id1 := articleID("https://example.com/post-1")
	id2 := articleID("https://example.com/post-2")
	id1again := articleID("https://example.com/post-1")

	if id1 == id2 {
		t.Error("different URLs should produce different IDs")
	}
	if id1 != id1again {
		t.Error("same URL should produce same ID")
	}
	if len(id1) != 32 {
		t.Errorf("expected 32-char hex string, got %d chars: %s", len(id1), id1)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"this is a long string", 10, "this is..."},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		got := stripHTML(tt.input)
		if got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
