package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/config"
	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/notify"
	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/ui/imgrender"
)

// cmdTimeout bounds how long a command may run in tests. Timers (debounce,
// cursor blink) outlive it and are dropped.
const cmdTimeout = 200 * time.Millisecond

// fakeSource serves canned pages per query.
type fakeSource struct {
	mu     sync.Mutex
	pages  map[string][][]gallery.Image
	failAt  map[string]int   // 1-based page that fails
	failErr map[string]error // error for failAt, a 503 when unset
	calls   []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		pages:   make(map[string][][]gallery.Image),
		failAt:  make(map[string]int),
		failErr: make(map[string]error),
	}
}

// add registers query with pages of the given sizes.
func (s *fakeSource) add(query string, sizes ...int) {
	n := 0
	pages := make([][]gallery.Image, len(sizes))
	for i, size := range sizes {
		for range size {
			pages[i] = append(pages[i], testImage(query, n))
			n++
		}
	}
	s.pages[query] = pages
}

func (s *fakeSource) SearchImages(ctx context.Context, query string, page int) ([]gallery.Image, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, fmt.Sprintf("%s#%d", query, page))
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if s.failAt[query] == page {
		if err := s.failErr[query]; err != nil {
			return nil, 0, err
		}
		return nil, 0, errors.New("unexpected status: 503 Service Unavailable")
	}
	pages := s.pages[query]
	if page > len(pages) {
		return nil, len(pages), nil
	}
	return pages[page-1], len(pages), nil
}

func (s *fakeSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// blockingSource never answers until its context is cancelled, then
// reports the cancelled query.
type blockingSource struct {
	canceled chan string
}

func newBlockingSource() blockingSource {
	return blockingSource{canceled: make(chan string, 8)}
}

func (s blockingSource) SearchImages(ctx context.Context, query string, _ int) ([]gallery.Image, int, error) {
	<-ctx.Done()
	s.canceled <- query
	return nil, 0, ctx.Err()
}

// waitCanceled returns the next cancelled query, or "" after cmdTimeout.
func (s blockingSource) waitCanceled() string {
	select {
	case q := <-s.canceled:
		return q
	case <-time.After(cmdTimeout):
		return ""
	}
}

func testImage(query string, i int) gallery.Image {
	return gallery.Image{
		ID:       fmt.Sprintf("%s-%d", query, i),
		ThumbURL: fmt.Sprintf("https://img.test/%s/%d/thumb", query, i),
		FullURL:  fmt.Sprintf("https://img.test/%s/%d/full", query, i),
		Author:   fmt.Sprintf("Author %d", i),
		Width:    400,
		Height:   300,
		Color:    "#336699",
	}
}

// fakeDownloader returns a small PNG for every URL.
type fakeDownloader struct {
	mu   sync.Mutex
	urls []string
}

func (d *fakeDownloader) Download(_ context.Context, url string) ([]byte, error) {
	d.mu.Lock()
	d.urls = append(d.urls, url)
	d.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{R: 200, G: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fakeNotifier records desktop notifications.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (n *fakeNotifier) Notify(notif notify.Notification) (uint32, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notif)
	return uint32(len(n.sent)), nil //nolint:gosec // test counter
}

func (n *fakeNotifier) Close(uint32) error { return nil }

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type testEnv struct {
	source   *fakeSource
	images   *fakeDownloader
	history  *state.Mock
	notifier *fakeNotifier
}

// newTestModel creates a sized model over fakes, drawing half-block art.
func newTestModel(t *testing.T) (Model, *testEnv) {
	t.Helper()
	env := &testEnv{
		source:   newFakeSource(),
		images:   &fakeDownloader{},
		history:  state.NewMock(),
		notifier: &fakeNotifier{},
	}
	m := New(Deps{
		Config:   &config.Config{Search: config.SearchConfig{WindowSize: 10, ResultCap: 55}},
		Source:   env.source,
		Images:   env.images,
		History:  env.history,
		Notifier: env.notifier,
		Renderer: imgrender.New(imgrender.ModeHalfBlock),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), env
}

// runCmds runs cmds concurrently and returns the messages produced within
// cmdTimeout, batches expanded.
func runCmds(cmds []tea.Cmd) []tea.Msg {
	results := make(chan tea.Msg, len(cmds))
	var wg sync.WaitGroup
	for _, c := range cmds {
		if c == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- c()
		}()
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(cmdTimeout):
	}

	var msgs []tea.Msg
	for {
		select {
		case msg := <-results:
			if msg != nil {
				msgs = append(msgs, msg)
			}
		default:
			return msgs
		}
	}
}

// settle feeds cmd and everything it leads to through Update until no
// command produces a message.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for range 200 {
		if len(pending) == 0 {
			return m
		}
		msgs := runCmds(pending)
		pending = nil
		for _, msg := range msgs {
			if batch, ok := msg.(tea.BatchMsg); ok {
				pending = append(pending, batch...)
				continue
			}
			next, c := m.Update(msg)
			m = next.(Model)
			pending = append(pending, c)
		}
	}
	t.Fatal("commands did not settle")
	return m
}

// send delivers msg and settles the resulting commands.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return settle(t, next.(Model), cmd)
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}
