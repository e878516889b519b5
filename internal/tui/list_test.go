package tui

import (
	"strings"
	"testing"

	"github.com/matheuskafuri/aidash/internal/render"
	"github.com/matheuskafuri/aidash/internal/repository"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps", 10)
	want := "the quick\nbrown fox\njumps"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
	if got := wrapText("   ", 10); got != "" {
		t.Errorf("wrapText(blank) = %q, want empty", got)
	}
}

func TestNextFilter(t *testing.T) {
	if got := nextFilter(repository.FilterAll); got != repository.FilterSaved {
		t.Errorf("nextFilter(all) = %q, want saved", got)
	}
	if got := nextFilter(repository.FilterSaved); got != repository.FilterAll {
		t.Errorf("nextFilter(saved) = %q, want all", got)
	}
}

func TestRenderListEmpty(t *testing.T) {
	grid := render.Grid{Empty: true, EmptyMessage: render.EmptySavedMessage}
	got := renderList(grid, 0, 10, 120)
	if !strings.Contains(got, render.EmptySavedMessage) {
		t.Errorf("renderList(empty) = %q, want it to contain %q", got, render.EmptySavedMessage)
	}
}

func TestRenderListItemShowsSaveIcon(t *testing.T) {
	card := render.Card{ID: "a1", Title: "GPT news", SourceName: "Ben's Bites", Tags: []string{"llm"}, Saved: true}
	got := renderListItem(card, true, 60)
	for _, want := range []string{"GPT news", render.IconSaved, "Ben's Bites", "llm"} {
		if !strings.Contains(got, want) {
			t.Errorf("renderListItem missing %q in %q", want, got)
		}
	}

	card.Saved = false
	if got := renderListItem(card, false, 60); !strings.Contains(got, render.IconUnsaved) {
		t.Errorf("unsaved item missing %q in %q", render.IconUnsaved, got)
	}
}

func TestRenderListScrollsToCursor(t *testing.T) {
	grid := render.Grid{Cards: []render.Card{
		{ID: "a1", Title: "first"},
		{ID: "a2", Title: "second"},
		{ID: "a3", Title: "third"},
	}}
	// Room for a single item.
	got := renderList(grid, 2, 3, 60)
	if strings.Contains(got, "first") || !strings.Contains(got, "third") {
		t.Errorf("renderList did not scroll to cursor: %q", got)
	}
}
