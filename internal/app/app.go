// internal/app/app.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/app/popupctl"
	"github.com/llehouerou/picsearch/internal/config"
	"github.com/llehouerou/picsearch/internal/fetcher"
	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/keymap"
	"github.com/llehouerou/picsearch/internal/logging"
	"github.com/llehouerou/picsearch/internal/notify"
	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/thumbs"
	"github.com/llehouerou/picsearch/internal/ui/gridview"
	"github.com/llehouerou/picsearch/internal/ui/headerbar"
	"github.com/llehouerou/picsearch/internal/ui/imgrender"
	"github.com/llehouerou/picsearch/internal/ui/pagenav"
	"github.com/llehouerou/picsearch/internal/ui/searchbar"
	"github.com/llehouerou/picsearch/internal/ui/viewer"
)

// fullMaxEdge bounds the decoded size of viewer images.
const fullMaxEdge = 2048

// Deps holds what the model needs from the outside world.
type Deps struct {
	Config   *config.Config
	Source   fetcher.Source      // search API
	Images   thumbs.Downloader   // image bytes
	History  state.Interface     // nil disables search history
	Notifier notify.Notifier     // nil disables desktop notifications
	Logger   *logging.Logger     // nil discards
	Renderer *imgrender.Renderer // nil draws half-block art
}

// searchRun tracks the in-flight search.
type searchRun struct {
	cancel  context.CancelFunc
	updates <-chan fetchUpdate
}

// thumbScope owns the thumbnail loads of one result set.
type thumbScope struct {
	ctx       context.Context //nolint:containedctx // cancelled as a unit when results change
	cancel    context.CancelFunc
	requested map[string]bool
}

// Model is the root bubbletea model.
type Model struct {
	// Shared search state, read by the grid and the nav bar.
	Gallery *gallery.State

	// UI components
	Search searchbar.Model
	Grid   gridview.Model
	Nav    pagenav.Model
	Viewer viewer.Model
	Popups *popupctl.Manager
	Keys   *keymap.Resolver

	// Services
	fetcher  *fetcher.Fetcher
	thumbs   *thumbs.Loader
	full     *thumbs.Loader
	history  state.Interface
	notifier notify.Notifier
	logger   *logging.Logger
	renderer *imgrender.Renderer
	initial  string

	// Search lifecycle
	gen    int
	run    *searchRun
	scope  *thumbScope
	status headerbar.Status

	// Viewer download
	fullCancel context.CancelFunc

	// Graphics commands emitted before the next frames.
	pendingTransmit string
	transmitSeq     int
	flushSeq        int

	width  int
	height int
}

// New creates the root model.
func New(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	sc := cfg.GetSearchConfig()

	logger   := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = imgrender.New(imgrender.ModeHalfBlock)
	}
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}

	g := gallery.New(sc.WindowSize, sc.ResultCap)
	return Model{
		Gallery:  g,
		Search:   searchbar.New(cfg.InitialQuery, sc.Debounce()),
		Grid:     gridview.New(g, renderer),
		Nav:      pagenav.New(g),
		Viewer:   viewer.New(renderer),
		Popups:   popupctl.New(),
		Keys:     keymap.Default(),
		fetcher:  fetcher.New(deps.Source, sc.ResultCap, logger),
		thumbs:   thumbs.NewLoader(deps.Images, logger),
		full:     thumbs.NewLoader(deps.Images, logger, thumbs.WithConcurrency(1), thumbs.WithMaxEdge(fullMaxEdge)),
		history:  deps.History,
		notifier: notifier,
		logger:   logger,
		renderer: renderer,
		initial:  cfg.InitialQuery,
	}
}

// Init starts the search for the initial query.
func (m Model) Init() tea.Cmd {
	q := m.initial
	return func() tea.Msg {
		return searchbar.ActionMsg(searchbar.Submit{Query: q, Immediate: true})
	}
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Status returns the header status line state.
func (m Model) Status() headerbar.Status { return m.status }

// Generation returns the number of the current search.
func (m Model) Generation() int { return m.gen }

// Shutdown cancels every background operation.
func (m *Model) Shutdown() {
	m.cancelSearch()
	m.cancelThumbs()
	m.cancelFull()
}
