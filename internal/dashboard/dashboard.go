// Package dashboard owns the application state and maps user and system
// events onto it. Hosts feed events through Dispatch and carry out the
// effects it returns; nothing in here blocks or starts goroutines.
package dashboard

import (
	"time"

	"github.com/matheuskafuri/aidash/internal/article"
	"github.com/matheuskafuri/aidash/internal/carousel"
	"github.com/matheuskafuri/aidash/internal/logging"
	"github.com/matheuskafuri/aidash/internal/render"
	"github.com/matheuskafuri/aidash/internal/repository"
	"github.com/matheuskafuri/aidash/internal/saved"
)

type Options struct {
	Storage       saved.Storage
	FeaturedLimit int
	Autoplay      time.Duration
	Filter        repository.Filter
	// Names overrides source display names.
	Names article.Names
}

// Dashboard is the single owner of all mutable state: snapshot, saved set,
// filter, carousel and load status.
type Dashboard struct {
	repo     *repository.Repository
	saved    *saved.Store
	carousel *carousel.Controller
	filter   repository.Filter
	names    article.Names

	sources     map[article.Source]article.SourceStatus
	lastUpdated string

	loading bool
	loadErr error
	loaded  bool
	closed  bool
}

// New restores the saved set and starts with an empty snapshot.
func New(opts Options) *Dashboard {
	filter := opts.Filter
	if filter == "" {
		filter = repository.FilterAll
	}
	return &Dashboard{
		repo:     repository.New(),
		saved:    saved.Load(opts.Storage),
		carousel: carousel.New(opts.FeaturedLimit, opts.Autoplay),
		filter:   filter,
		names:    opts.Names,
	}
}

// Init returns the effects that start the first load.
func (d *Dashboard) Init() []Effect {
	return d.Dispatch(RefreshRequested{})
}

// Close cancels autoplay. Events dispatched afterwards are ignored.
func (d *Dashboard) Close() {
	d.carousel.Stop()
	d.closed = true
}

// Dispatch applies ev and returns what the host must do next.
func (d *Dashboard) Dispatch(ev Event) []Effect {
	if d.closed {
		return nil
	}
	switch ev := ev.(type) {
	case FilterSelected:
		d.filter = ev.Filter
		return nil

	case RefreshRequested:
		if d.loading {
			logging.Debug("refresh ignored, load in flight")
			return nil
		}
		d.loading = true
		return []Effect{StartLoad{}}

	case LoadSucceeded:
		d.loading = false
		d.loadErr = nil
		d.loaded = true
		d.repo.Apply(ev.Result.Snapshot)
		d.sources = ev.Result.Sources
		d.lastUpdated = ev.Result.LastUpdated
		return scheduleIf(d.carousel.Seed(d.repo.All()))

	case LoadFailed:
		d.loading = false
		d.loadErr = ev.Err
		return nil

	case SaveToggled:
		d.saved.Toggle(ev.ID)
		d.carousel.RefreshIcons()
		return nil

	case SlideSaveToggled:
		if id, ok := d.carousel.Current(); ok {
			d.saved.Toggle(id)
			d.carousel.RefreshIcons()
		}
		return nil

	case NavNext:
		return scheduleIf(d.carousel.Next())

	case NavPrev:
		return scheduleIf(d.carousel.Prev())

	case IndicatorSelected:
		return scheduleIf(d.carousel.GoTo(ev.Index))

	case AutoplayTick:
		return scheduleIf(d.carousel.OnTick(ev.Gen))

	case ArticleOpened:
		if a, ok := d.repo.Find(ev.ID); ok && a.URL != "" {
			return []Effect{OpenURL{URL: a.URL}}
		}
		return nil

	case SlideOpened:
		if id, ok := d.carousel.Current(); ok {
			return d.Dispatch(ArticleOpened{ID: id})
		}
		return nil
	}
	return nil
}

func scheduleIf(t carousel.Tick, ok bool) []Effect {
	if !ok {
		return nil
	}
	return []Effect{ScheduleTick{Gen: t.Gen, After: t.After}}
}

// Frame is everything the sink needs to draw one screen.
type Frame struct {
	Grid           render.Grid
	Slides         []render.Slide
	SlideIndex     int
	CarouselHidden bool
	Badges         []render.Badge
	LastUpdated    string
	Loading        bool
	RefreshEnabled bool
	Err            error
	// LoadError is the status line for a failed load. It is set whenever the
	// grid itself is not already showing the load failure, whatever the
	// filter.
	LoadError string
}

// View derives the current frame. It does not mutate anything.
func (d *Dashboard) View() Frame {
	snap := d.repo.All()
	f := Frame{
		Grid:           render.Render(snap, d.filter, d.saved, d.names),
		CarouselHidden: d.carousel.Hidden(),
		SlideIndex:     d.carousel.Index(),
		Badges:         render.Badges(d.sources, d.names),
		LastUpdated:    render.LastUpdated(d.lastUpdated),
		Loading:        d.loading,
		RefreshEnabled: !d.loading,
		Err:            d.loadErr,
	}
	if !f.CarouselHidden {
		f.Slides = render.Slides(snap, d.carousel.IDs(), d.carousel.Index(), d.saved, d.names)
	}
	// A failed first load has nothing to fall back on.
	switch {
	case d.loadErr != nil && len(snap) == 0:
		f.Grid.Empty = true
		f.Grid.EmptyMessage = render.LoadFailedMessage
	case d.loadErr != nil:
		f.LoadError = "Refresh failed: " + d.loadErr.Error()
	}
	return f
}

func (d *Dashboard) Filter() repository.Filter { return d.filter }

func (d *Dashboard) Loading() bool { return d.loading }

// Loaded reports whether any load has succeeded yet.
func (d *Dashboard) Loaded() bool { return d.loaded }

func (d *Dashboard) Saved() *saved.Store { return d.saved }

func (d *Dashboard) Carousel() *carousel.Controller { return d.carousel }
