// Package carousel keeps the featured-article rotation: which articles are
// featured, which one is showing, and the autoplay timer.
//
// The controller never owns a real timer. Whenever autoplay has to be
// (re)started it returns a Tick naming a generation; the host schedules it
// and feeds it back through OnTick. Restarting bumps the generation, so a
// tick that was scheduled before the restart is ignored when it fires. That
// gives exactly one live timer per carousel without a cancel handle.
package carousel

import (
	"time"

	"github.com/matheuskafuri/aidash/internal/article"
)

const (
	DefaultLimit    = 5
	DefaultInterval = 5 * time.Second
)

// Tick asks the host to call OnTick(Gen) after After has elapsed.
type Tick struct {
	Gen   uint64
	After time.Duration
}

type Controller struct {
	limit    int
	interval time.Duration

	ids     []string
	index   int
	gen     uint64
	running bool

	// revision changes whenever the rendered slides must be redrawn without
	// the rotation itself changing.
	revision int
}

func New(limit int, interval time.Duration) *Controller {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{limit: limit, interval: interval}
}

// Seed rebuilds the rotation from snap: up to limit articles with an image,
// in snapshot order. With nothing to feature the carousel is hidden and
// autoplay stops; otherwise the index resets to 0 and autoplay restarts.
func (c *Controller) Seed(snap article.Snapshot) (Tick, bool) {
	c.ids = c.ids[:0]
	for _, a := range snap {
		if len(c.ids) == c.limit {
			break
		}
		if a.HasImage() {
			c.ids = append(c.ids, a.ID)
		}
	}
	c.index = 0
	c.revision++

	if len(c.ids) == 0 {
		c.Stop()
		return Tick{}, false
	}
	return c.restart(), true
}

func (c *Controller) Next() (Tick, bool) {
	if c.Hidden() {
		return Tick{}, false
	}
	c.advance()
	return c.restart(), true
}

func (c *Controller) Prev() (Tick, bool) {
	if c.Hidden() {
		return Tick{}, false
	}
	n := len(c.ids)
	c.index = (c.index - 1 + n) % n
	return c.restart(), true
}

// GoTo jumps to slide i. Out-of-range values are clamped.
func (c *Controller) GoTo(i int) (Tick, bool) {
	if c.Hidden() {
		return Tick{}, false
	}
	switch {
	case i < 0:
		i = 0
	case i >= len(c.ids):
		i = len(c.ids) - 1
	}
	c.index = i
	return c.restart(), true
}

// OnTick advances the rotation if gen belongs to the live timer and returns
// the follow-up tick. Stale generations are dropped.
func (c *Controller) OnTick(gen uint64) (Tick, bool) {
	if !c.running || gen != c.gen || c.Hidden() {
		return Tick{}, false
	}
	c.advance()
	return Tick{Gen: c.gen, After: c.interval}, true
}

// RefreshIcons marks the slides for redraw after a saved-state change. The
// index and the autoplay timer are left alone.
func (c *Controller) RefreshIcons() {
	c.revision++
}

// Stop cancels autoplay. Any tick already scheduled becomes stale.
func (c *Controller) Stop() {
	c.gen++
	c.running = false
}

func (c *Controller) Hidden() bool { return len(c.ids) == 0 }

func (c *Controller) Index() int { return c.index }

func (c *Controller) Len() int { return len(c.ids) }

// Running reports whether an autoplay timer is live.
func (c *Controller) Running() bool { return c.running }

// Generation is the id of the live timer.
func (c *Controller) Generation() uint64 { return c.gen }

func (c *Controller) Revision() int { return c.revision }

// IDs returns the featured article ids in rotation order.
func (c *Controller) IDs() []string {
	out := make([]string, len(c.ids))
	copy(out, c.ids)
	return out
}

// Current returns the id of the slide being shown.
func (c *Controller) Current() (string, bool) {
	if c.Hidden() {
		return "", false
	}
	return c.ids[c.index], true
}

func (c *Controller) advance() {
	c.index = (c.index + 1) % len(c.ids)
}

func (c *Controller) restart() Tick {
	c.gen++
	c.running = true
	return Tick{Gen: c.gen, After: c.interval}
}
