// Package app contains the root bubbletea model wiring the search, the
// gallery and the popups together.
package app

import (
	"github.com/llehouerou/picsearch/internal/errmsg"
	"github.com/llehouerou/picsearch/internal/fetcher"
	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/thumbs"
)

// Messages produced by background work carry the generation of the search
// that started it. Update drops any message whose generation is no longer
// current.

// FetchProgressMsg reports a page received by a running search.
type FetchProgressMsg struct {
	Gen      int
	Progress fetcher.Progress
}

// FetchDoneMsg carries the outcome of a search.
type FetchDoneMsg struct {
	Gen    int
	Result fetcher.Result
}

// ThumbLoadedMsg carries one thumbnail of the current result set.
type ThumbLoadedMsg struct {
	Gen    int
	Loaded thumbs.Loaded

	ch <-chan thumbs.Loaded // remaining loads of the same batch
}

// FullLoadedMsg carries the full-size image requested by the viewer.
type FullLoadedMsg struct {
	Loaded thumbs.Loaded
}

// HistoryLoadedMsg carries recent searches for the history popup.
type HistoryLoadedMsg struct {
	Records []state.SearchRecord
	Err     error
}

// HistoryChangedMsg reports the outcome of a history write.
type HistoryChangedMsg struct {
	Op  errmsg.Op
	Err error
}

// transmitFlushedMsg acknowledges that pending graphics commands with
// sequence Seq were part of a rendered frame.
type transmitFlushedMsg struct {
	Seq int
}

// clearHistoryContext identifies the "clear history" question.
type clearHistoryContext struct{}
