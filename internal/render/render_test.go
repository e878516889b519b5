package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matheuskafuri/aidash/internal/article"
	"github.com/matheuskafuri/aidash/internal/repository"
)

type set map[string]bool

func (s set) Has(id string) bool { return s[id] }
func (s set) Size() int          { return len(s) }

func ids(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestSavedFilterScenario(t *testing.T) {
	snap := article.Snapshot{
		{ID: "a1", ImageURL: "x"},
		{ID: "a2"},
	}
	g := Render(snap, repository.FilterSaved, set{"a1": true}, nil)

	if diff := cmp.Diff([]string{"a1"}, ids(g.Cards)); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
	if g.Counts != (Counts{All: 2, Saved: 1}) {
		t.Errorf("counts = %+v, want all=2 saved=1", g.Counts)
	}
	if g.Empty {
		t.Error("grid should not be empty")
	}
}

func TestCountsIgnoreFilter(t *testing.T) {
	snap := article.Snapshot{{ID: "a1"}, {ID: "a2"}, {ID: "a3"}}
	saved := set{"a2": true, "gone": true}

	all := Render(snap, repository.FilterAll, saved, nil)
	onlySaved := Render(snap, repository.FilterSaved, saved, nil)

	want := Counts{All: 3, Saved: 2}
	if all.Counts != want || onlySaved.Counts != want {
		t.Errorf("counts differ by filter: all=%+v saved=%+v", all.Counts, onlySaved.Counts)
	}
}

func TestEmptyMessages(t *testing.T) {
	tests := []struct {
		name   string
		snap   article.Snapshot
		filter repository.Filter
		want   string
	}{
		{"no articles", article.Snapshot{}, repository.FilterAll, EmptyAllMessage},
		{"nothing saved", article.Snapshot{{ID: "a1"}}, repository.FilterSaved, EmptySavedMessage},
	}
	for _, tt := range tests {
		g := Render(tt.snap, tt.filter, set{}, nil)
		if !g.Empty || g.EmptyMessage != tt.want || len(g.Cards) != 0 {
			t.Errorf("%s: got empty=%v msg=%q cards=%d", tt.name, g.Empty, g.EmptyMessage, len(g.Cards))
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	snap := article.Snapshot{
		{ID: "a1", Title: "One", Tags: []string{"a", "b", "c", "d"}, Source: article.SourceBenBites},
		{ID: "a2", Title: "Two", ImageURL: "img", Source: article.SourceAIRundown},
	}
	saved := set{"a2": true}
	first := Render(snap, repository.FilterAll, saved, nil)
	second := Render(snap, repository.FilterAll, saved, nil)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("render not deterministic (-first +second):\n%s", diff)
	}
}

func TestNewCard(t *testing.T) {
	a := article.Article{
		ID:          "a1",
		Title:       "Agents everywhere",
		Description: "desc",
		URL:         "https://a.test/1",
		Source:      article.SourceBenBites,
		Tags:        []string{"agents", "llm", "tools", "evals"},
	}
	c := NewCard(a, true, nil)

	want := Card{
		ID:          "a1",
		Title:       "Agents everywhere",
		Description: "desc",
		URL:         "https://a.test/1",
		Source:      article.SourceBenBites,
		SourceName:  "Ben's Bites",
		Tags:        []string{"agents", "llm", "tools"},
		Placeholder: true,
		Saved:       true,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("card mismatch (-want +got):\n%s", diff)
	}
	if c.SaveIcon() != IconSaved {
		t.Errorf("icon = %q, want %q", c.SaveIcon(), IconSaved)
	}

	// Truncation must not alias the article's tag slice.
	c.Tags[0] = "changed"
	if a.Tags[0] != "agents" {
		t.Error("card tags alias article tags")
	}
}

func TestSlides(t *testing.T) {
	snap := article.Snapshot{
		{ID: "a1", ImageURL: "1"},
		{ID: "a2"},
		{ID: "a3", ImageURL: "3"},
	}
	slides := Slides(snap, []string{"a1", "a3"}, 1, set{"a3": true}, nil)

	if len(slides) != 2 {
		t.Fatalf("expected 2 slides, got %d", len(slides))
	}
	if slides[0].Active || !slides[1].Active {
		t.Error("wrong active slide")
	}
	if slides[0].Saved || !slides[1].Saved {
		t.Error("wrong saved icon state")
	}
	if slides[1].Index != 1 {
		t.Errorf("index = %d, want 1", slides[1].Index)
	}

	if Slides(snap, nil, 0, set{}, nil) != nil {
		t.Error("expected nil slides for an empty carousel")
	}
}

func TestBadges(t *testing.T) {
	badges := Badges(map[article.Source]article.SourceStatus{
		article.SourceBenBites:  {Status: "success", ArticleCount: 12},
		article.SourceAIRundown: {Status: "error"},
	}, nil)

	want := []Badge{
		{Source: article.SourceBenBites, Name: "Ben's Bites", State: BadgeSuccess, CountText: "12 articles"},
		{Source: article.SourceAIRundown, Name: "AI Rundown", State: BadgeError, CountText: "0 articles"},
	}
	if diff := cmp.Diff(want, badges); diff != "" {
		t.Errorf("badges mismatch (-want +got):\n%s", diff)
	}

	pending := Badges(nil, nil)
	for _, b := range pending {
		if b.State != BadgePending || b.CountText != "" {
			t.Errorf("expected pending badge, got %+v", b)
		}
	}
}

func TestBadgesNotRunStaysPending(t *testing.T) {
	badges := Badges(map[article.Source]article.SourceStatus{
		article.SourceBenBites: {Status: article.StatusNotRun},
	}, nil)

	if badges[0].State != BadgePending {
		t.Errorf("not_run badge state = %v, want pending", badges[0].State)
	}
	if badges[0].CountText != "0 articles" {
		t.Errorf("count text = %q, want reported count", badges[0].CountText)
	}
}

func TestConfiguredSourceNames(t *testing.T) {
	names := article.Names{article.SourceBenBites: "Bites"}
	snap := article.Snapshot{
		{ID: "a1", Source: article.SourceBenBites, ImageURL: "x"},
		{ID: "a2", Source: article.SourceAIRundown},
	}

	g := Render(snap, repository.FilterAll, set{}, names)
	if g.Cards[0].SourceName != "Bites" || g.Cards[1].SourceName != "AI Rundown" {
		t.Errorf("card names = %q, %q", g.Cards[0].SourceName, g.Cards[1].SourceName)
	}

	slides := Slides(snap, []string{"a1"}, 0, set{}, names)
	if slides[0].SourceName != "Bites" {
		t.Errorf("slide name = %q, want Bites", slides[0].SourceName)
	}

	badges := Badges(nil, names)
	if badges[0].Name != "Bites" || badges[1].Name != "AI Rundown" {
		t.Errorf("badge names = %q, %q", badges[0].Name, badges[1].Name)
	}
}

func TestLastUpdated(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-05T09:30:00.123456", "Last updated: Jan 5, 09:30 AM"},
		{"2026-01-05T21:07:00", "Last updated: Jan 5, 09:07 PM"},
		{"2026-03-14T15:04:05Z", "Last updated: Mar 14, 03:04 PM"},
		{"", ""},
		{"yesterday", ""},
	}
	for _, tt := range tests {
		if got := LastUpdated(tt.in); got != tt.want {
			t.Errorf("LastUpdated(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
