package dashboard

import (
	"time"

	"github.com/matheuskafuri/aidash/internal/repository"
)

// Event is the closed set of inputs Dispatch understands.
type Event interface {
	event()
}

type (
	FilterSelected struct {
		Filter repository.Filter
	}

	// RefreshRequested is ignored while a load is in flight.
	RefreshRequested struct{}

	LoadSucceeded struct {
		Result repository.Result
	}

	LoadFailed struct {
		Err error
	}

	SaveToggled struct {
		ID string
	}

	// SlideSaveToggled toggles the slide currently shown in the carousel.
	SlideSaveToggled struct{}

	NavNext struct{}

	NavPrev struct{}

	IndicatorSelected struct {
		Index int
	}

	AutoplayTick struct {
		Gen uint64
	}

	ArticleOpened struct {
		ID string
	}

	SlideOpened struct{}
)

func (FilterSelected) event()    {}
func (RefreshRequested) event()  {}
func (LoadSucceeded) event()     {}
func (LoadFailed) event()        {}
func (SaveToggled) event()       {}
func (SlideSaveToggled) event()  {}
func (NavNext) event()           {}
func (NavPrev) event()           {}
func (IndicatorSelected) event() {}
func (AutoplayTick) event()      {}
func (ArticleOpened) event()     {}
func (SlideOpened) event()       {}

// Effect is work Dispatch hands back to the host.
type Effect interface {
	effect()
}

type (
	// StartLoad asks the host to fetch the feed and dispatch LoadSucceeded
	// or LoadFailed with the outcome.
	StartLoad struct{}

	// ScheduleTick asks the host to dispatch AutoplayTick{Gen} after After.
	ScheduleTick struct {
		Gen   uint64
		After time.Duration
	}

	OpenURL struct {
		URL string
	}
)

func (StartLoad) effect()    {}
func (ScheduleTick) effect() {}
func (OpenURL) effect()      {}
