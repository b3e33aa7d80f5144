// internal/app/search.go
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/config"
	"github.com/llehouerou/picsearch/internal/errmsg"
	"github.com/llehouerou/picsearch/internal/fetcher"
	"github.com/llehouerou/picsearch/internal/notify"
	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/ui/gridview"
	"github.com/llehouerou/picsearch/internal/ui/headerbar"
	"github.com/llehouerou/picsearch/internal/unsplash"
)

// startSearch supersedes any running search and fetches query. An empty
// query clears the gallery without a request.
func (m *Model) startSearch(query string) tea.Cmd {
	q := strings.TrimSpace(query)
	m.cancelSearch()
	m.gen++

	if q == "" {
		m.Gallery.Clear()
		m.resetResults()
		m.Grid.SetEmptyMessage("Type a query to search")
		m.status = headerbar.Status{}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	updates := startFetch(ctx, m.fetcher, q)
	m.run = &searchRun{cancel: cancel, updates: updates}
	m.status = headerbar.Status{Query: q, Loading: true}
	m.logger.WithGeneration(m.gen).Info("search started", "query", q)
	return waitForFetch(m.gen, updates)
}

func (m *Model) cancelSearch() {
	if m.run != nil {
		m.run.cancel()
		m.run = nil
	}
}

// handleFetchProgress updates the status line and keeps listening.
func (m Model) handleFetchProgress(msg FetchProgressMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.run == nil {
		return m, nil
	}
	m.status.Page = msg.Progress.Page
	m.status.TotalPages = msg.Progress.TotalPages
	m.status.Results = min(msg.Progress.Received, m.fetcher.Cap())
	return m, waitForFetch(msg.Gen, m.run.updates)
}

// handleFetchDone replaces the results with the outcome of the current
// search. A failure keeps the partial results and raises one notice.
func (m Model) handleFetchDone(msg FetchDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		m.logger.WithGeneration(msg.Gen).Debug("dropped stale search result", "query", msg.Result.Query)
		return m, nil
	}
	m.cancelSearch()
	res := msg.Result
	if res.Canceled {
		m.status.Loading = false
		return m, nil
	}

	m.Gallery.Replace(res.Query, res.Images)
	m.resetResults()
	m.Grid.SetEmptyMessage(fmt.Sprintf("No results for %q", res.Query))
	m.status = headerbar.Status{
		Query:   res.Query,
		Results: m.Gallery.Len(),
		Failed:  res.Err != nil,
	}

	cmds := []tea.Cmd{m.loadVisibleThumbs()}
	if res.Err != nil {
		cmds = append(cmds, m.reportFetchFailure(res))
	}
	if m.history != nil {
		cmds = append(cmds, recordSearchCmd(m.history, state.SearchRecord{
			Query:      res.Query,
			Results:    m.Gallery.Len(),
			TotalPages: res.TotalPages,
			Failed:     res.Err != nil,
			SearchedAt: time.Now(),
		}))
	}
	return m, tea.Batch(cmds...)
}

// reportFetchFailure shows the blocking notice and, when enabled, the
// desktop notification for a search that stopped early.
func (m *Model) reportFetchFailure(res fetcher.Result) tea.Cmd {
	m.logger.WithGeneration(m.gen).Error("search failed",
		"query", res.Query, "kept", len(res.Images), "error", res.Err)

	msg := errmsg.Format(errmsg.OpFetchImages, res.Err)
	if n := len(res.Images); n > 0 {
		msg += fmt.Sprintf("\n\nShowing the %d results received before the error.", n)
	}
	if errors.Is(res.Err, unsplash.ErrUnauthorized) {
		msg += fmt.Sprintf("\n\nSet access_key in config.toml or the %s environment variable.", config.AccessKeyEnv)
	}

	return tea.Batch(
		m.Popups.ShowAlert("Search failed", msg, res.Query),
		notifyCmd(m.notifier, m.logger, notify.FetchFailure(res.Query, len(res.Images), res.Err)),
	)
}

// resetResults drops everything derived from the previous result set.
func (m *Model) resetResults() {
	m.cancelThumbs()
	m.scope = &thumbScope{requested: make(map[string]bool)}
	m.scope.ctx, m.scope.cancel = context.WithCancel(context.Background())
	m.Grid.ResetThumbs()
	m.Grid.ResetCursor()
	m.queueTransmit(m.renderer.Reset())
}

func (m *Model) cancelThumbs() {
	if m.scope != nil {
		m.scope.cancel()
		m.scope = nil
	}
}

// loadVisibleThumbs requests the thumbnails of the current window not yet
// requested for this result set.
func (m *Model) loadVisibleThumbs() tea.Cmd {
	if m.scope == nil {
		return nil
	}
	var urls []string
	for _, u := range m.Grid.MissingThumbs() {
		if !m.scope.requested[u] {
			m.scope.requested[u] = true
			urls = append(urls, u)
		}
	}
	return loadThumbsCmd(m.scope.ctx, m.thumbs, m.logger, m.gen, urls)
}

// handleThumbLoaded stores a thumbnail of the current result set.
func (m Model) handleThumbLoaded(msg ThumbLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	m.Grid.SetThumb(msg.Loaded.URL, gridview.Thumb{Image: msg.Loaded.Image, Err: msg.Loaded.Err})
	return m, waitForThumb(msg.Gen, msg.ch)
}

// onPageChanged follows a window move from the nav bar, the keyboard or
// the grid cursor.
func (m *Model) onPageChanged() tea.Cmd {
	m.Grid.ClampCursor()
	return m.loadVisibleThumbs()
}
