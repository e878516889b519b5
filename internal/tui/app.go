package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/aidash/internal/browser"
	"github.com/matheuskafuri/aidash/internal/dashboard"
	"github.com/matheuskafuri/aidash/internal/feed"
	"github.com/matheuskafuri/aidash/internal/logging"
	"github.com/matheuskafuri/aidash/internal/render"
	"github.com/matheuskafuri/aidash/internal/repository"
)

type mode int

const (
	modeNormal mode = iota
	modeHelp
)

// App is the bubbletea host for a dashboard. It turns key presses and timer
// messages into dashboard events and carries out the effects that come back.
type App struct {
	dash    *dashboard.Dashboard
	source  feed.Source
	timeout time.Duration
	open    func(string) error
	changes <-chan struct{}

	cursor int
	mode   mode

	width  int
	height int

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	currentDate string
	err         error

	// The carousel is redrawn only when its slides, index or width change.
	carouselKey  carouselKey
	carouselView string
}

type carouselKey struct {
	revision int
	index    int
	width    int
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Dashboard *dashboard.Dashboard
	Source    feed.Source
	Timeout   time.Duration
	// Opener defaults to browser.Open.
	Opener func(string) error
	// Changes, when set, triggers a refresh every time it fires.
	Changes <-chan struct{}
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	opener := opts.Opener
	if opener == nil {
		opener = browser.Open
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &App{
		dash:        opts.Dashboard,
		source:      opts.Source,
		timeout:     timeout,
		open:        opener,
		changes:     opts.Changes,
		spinner:     sp,
		help:        help.New(),
		keys:        defaultKeyMap(),
		currentDate: time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.perform(a.dash.Init()), a.waitForChange())
}

// dispatch feeds ev to the dashboard and returns the commands for whatever
// effects it asked for.
func (a *App) dispatch(ev dashboard.Event) tea.Cmd {
	effects := a.dash.Dispatch(ev)
	a.clampCursor()
	return a.perform(effects)
}

func (a *App) perform(effects []dashboard.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch e := eff.(type) {
		case dashboard.StartLoad:
			cmds = append(cmds, a.loadCmd(), a.spinner.Tick)
		case dashboard.ScheduleTick:
			gen := e.Gen
			cmds = append(cmds, tea.Tick(e.After, func(time.Time) tea.Msg {
				return autoplayMsg{gen: gen}
			}))
		case dashboard.OpenURL:
			cmds = append(cmds, a.openCmd(e.URL))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// loadCmd captures the source into the closure; the snapshot swap happens
// later on the event loop when loadDoneMsg arrives.
func (a *App) loadCmd() tea.Cmd {
	src := a.source
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res, err := repository.Fetch(ctx, src)
		return loadDoneMsg{result: res, err: err}
	}
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) waitForChange() tea.Cmd {
	ch := a.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return feedChangedMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case loadDoneMsg:
		if msg.err != nil {
			return a, a.dispatch(dashboard.LoadFailed{Err: msg.err})
		}
		return a, a.dispatch(dashboard.LoadSucceeded{Result: msg.result})

	case autoplayMsg:
		return a, a.dispatch(dashboard.AutoplayTick{Gen: msg.gen})

	case feedChangedMsg:
		logging.Debug("feed file changed", "source", a.source.Location())
		return a, tea.Batch(a.dispatch(dashboard.RefreshRequested{}), a.waitForChange())

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.dash.Loading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.mode == modeHelp {
		if key.Matches(msg, a.keys.Help) || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.dash.Close()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.dash.View().Grid.Cards)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.PrevSlide):
		return a, a.dispatch(dashboard.NavPrev{})

	case key.Matches(msg, a.keys.NextSlide):
		return a, a.dispatch(dashboard.NavNext{})

	case key.Matches(msg, a.keys.Indicator):
		idx := int(msg.String()[0] - '1')
		return a, a.dispatch(dashboard.IndicatorSelected{Index: idx})

	case key.Matches(msg, a.keys.Filter):
		return a, a.selectFilter(nextFilter(a.dash.Filter()))

	case key.Matches(msg, a.keys.All):
		return a, a.selectFilter(repository.FilterAll)

	case key.Matches(msg, a.keys.SavedOnly):
		return a, a.selectFilter(repository.FilterSaved)

	case key.Matches(msg, a.keys.Save):
		if c := a.selected(); c != nil {
			return a, a.dispatch(dashboard.SaveToggled{ID: c.ID})
		}
		return a, nil

	case key.Matches(msg, a.keys.SaveSlide):
		return a, a.dispatch(dashboard.SlideSaveToggled{})

	case key.Matches(msg, a.keys.Open):
		if c := a.selected(); c != nil {
			return a, a.dispatch(dashboard.ArticleOpened{ID: c.ID})
		}
		return a, nil

	case key.Matches(msg, a.keys.OpenSlide):
		return a, a.dispatch(dashboard.SlideOpened{})

	case key.Matches(msg, a.keys.Refresh):
		return a, a.dispatch(dashboard.RefreshRequested{})

	case key.Matches(msg, a.keys.Help):
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

func (a *App) selectFilter(f repository.Filter) tea.Cmd {
	if f == a.dash.Filter() {
		return nil
	}
	a.cursor = 0
	return a.dispatch(dashboard.FilterSelected{Filter: f})
}

// selected returns the card under the cursor, or nil when the grid is empty.
func (a *App) selected() *render.Card {
	cards := a.dash.View().Grid.Cards
	if a.cursor < 0 || a.cursor >= len(cards) {
		return nil
	}
	c := cards[a.cursor]
	return &c
}

// clampCursor keeps the cursor inside the grid after unsaving shrinks the
// saved view or a reload shortens the snapshot.
func (a *App) clampCursor() {
	n := len(a.dash.View().Grid.Cards)
	if a.cursor >= n {
		a.cursor = max(0, n-1)
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  aidash")
	}
	if a.mode == modeHelp {
		return a.renderHelp()
	}

	frame := a.dash.View()

	// Header
	headerLeft := headerStyle.Render("AI Dashboard")
	right := a.currentDate
	if frame.LastUpdated != "" {
		right = frame.LastUpdated
	}
	headerRight := headerDateStyle.Render(right)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	badges := renderBadges(frame.Badges)
	sections := []string{header, badges}

	if !frame.CarouselHidden {
		sections = append(sections, a.carousel(frame))
	}

	filter := renderFilterBar(frame.Grid, a.width)
	sections = append(sections, filter)

	status := renderStatusBar(frame.Grid, a.width, frame.Loading && a.dash.Loaded(), a.help.ShortHelpView(a.keys.ShortHelp()))
	if frame.Loading {
		status = a.spinner.View() + " " + status
	}
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	} else if frame.LoadError != "" {
		status = errorStyle.Render(frame.LoadError)
	}

	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	contentHeight := a.height - used - lipgloss.Height(status) - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1

	var listContent string
	if frame.Loading && !a.dash.Loaded() {
		listContent = a.spinner.View() + " Loading articles..."
	} else {
		listContent = renderList(frame.Grid, a.cursor, contentHeight, listWidth-4)
	}
	listPane := listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	var selected *render.Card
	if !frame.Grid.Empty && a.cursor < len(frame.Grid.Cards) {
		selected = &frame.Grid.Cards[a.cursor]
	}
	previewPane := previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).
		Render(renderPreview(selected, previewWidth-4, contentHeight))

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
	sections = append(sections, content, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) carousel(frame dashboard.Frame) string {
	c := a.dash.Carousel()
	k := carouselKey{revision: c.Revision(), index: frame.SlideIndex, width: a.width}
	if k != a.carouselKey || a.carouselView == "" {
		a.carouselKey = k
		a.carouselView = renderCarousel(frame.Slides, a.width)
	}
	return a.carouselView
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("aidash")
	dim := helpDimStyle

	var b strings.Builder
	b.WriteString(title + dim.Render("  Keyboard Shortcuts") + "\n\n")
	h := a.help
	h.ShowAll = true
	b.WriteString(h.View(a.keys))
	b.WriteString("\n\n" + dim.Render("? or esc to close"))

	card := helpCardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application and blocks until the user quits.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	defer app.dash.Close()
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
