// internal/app/commands.go
package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/errmsg"
	"github.com/llehouerou/picsearch/internal/fetcher"
	"github.com/llehouerou/picsearch/internal/logging"
	"github.com/llehouerou/picsearch/internal/notify"
	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/thumbs"
)

// flushDelay is how long pending graphics commands stay in the view. It
// spans several frames of the renderer.
const flushDelay = 150 * time.Millisecond

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// fetchUpdate is either a progress report or, last, the final result.
type fetchUpdate struct {
	progress fetcher.Progress
	result   *fetcher.Result
}

// startFetch runs one fetch cycle in the background. Progress and the final
// result are sent on the returned channel, which is closed afterwards.
// Sends are abandoned once ctx is done so a superseded search never blocks.
func startFetch(ctx context.Context, f *fetcher.Fetcher, query string) <-chan fetchUpdate {
	ch := make(chan fetchUpdate)
	go func() {
		defer close(ch)
		send := func(u fetchUpdate) {
			select {
			case ch <- u:
			case <-ctx.Done():
			}
		}
		res := f.Fetch(ctx, query, func(p fetcher.Progress) {
			send(fetchUpdate{progress: p})
		})
		send(fetchUpdate{result: &res})
	}()
	return ch
}

// waitForFetch returns a command delivering the next update of search gen.
func waitForFetch(gen int, ch <-chan fetchUpdate) tea.Cmd {
	return waitForChannel(ch, func(u fetchUpdate, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		if u.result != nil {
			return FetchDoneMsg{Gen: gen, Result: *u.result}
		}
		return FetchProgressMsg{Gen: gen, Progress: u.progress}
	})
}

// loadThumbsCmd downloads urls in the background and delivers them one by
// one as ThumbLoadedMsg.
func loadThumbsCmd(ctx context.Context, loader *thumbs.Loader, logger *logging.Logger, gen int, urls []string) tea.Cmd {
	if len(urls) == 0 {
		return nil
	}
	return func() tea.Msg {
		ch := make(chan thumbs.Loaded)
		go func() {
			defer close(ch)
			if err := loader.LoadAll(ctx, urls, ch); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("thumbnail batch stopped", "generation", gen, "error", err)
			}
		}()
		return waitForThumb(gen, ch)()
	}
}

func waitForThumb(gen int, ch <-chan thumbs.Loaded) tea.Cmd {
	return waitForChannel(ch, func(l thumbs.Loaded, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return ThumbLoadedMsg{Gen: gen, Loaded: l, ch: ch}
	})
}

// loadFullCmd downloads the image shown by the viewer.
func loadFullCmd(ctx context.Context, loader *thumbs.Loader, url string) tea.Cmd {
	return func() tea.Msg {
		return FullLoadedMsg{Loaded: loader.Load(ctx, url)}
	}
}

// loadHistoryCmd reads recent searches.
func loadHistoryCmd(h state.Interface) tea.Cmd {
	return func() tea.Msg {
		records, err := h.RecentSearches(0)
		return HistoryLoadedMsg{Records: records, Err: err}
	}
}

// recordSearchCmd stores the outcome of a finished search.
func recordSearchCmd(h state.Interface, rec state.SearchRecord) tea.Cmd {
	return func() tea.Msg {
		return HistoryChangedMsg{Op: errmsg.OpRecordHistory, Err: h.RecordSearch(rec)}
	}
}

// forgetSearchCmd removes one query from history.
func forgetSearchCmd(h state.Interface, query string) tea.Cmd {
	return func() tea.Msg {
		return HistoryChangedMsg{Op: errmsg.OpForgetSearch, Err: h.DeleteSearch(query)}
	}
}

// clearHistoryCmd removes every recorded query.
func clearHistoryCmd(h state.Interface) tea.Cmd {
	return func() tea.Msg {
		return HistoryChangedMsg{Op: errmsg.OpClearHistory, Err: h.ClearHistory()}
	}
}

// notifyCmd sends a desktop notification; failures are only logged.
func notifyCmd(n notify.Notifier, logger *logging.Logger, notif notify.Notification) tea.Cmd {
	return func() tea.Msg {
		if _, err := n.Notify(notif); err != nil {
			logger.Warn("desktop notification failed", "error", err)
		}
		return nil
	}
}

// flushTransmitCmd schedules the acknowledgement for pending graphics
// commands with sequence seq.
func flushTransmitCmd(seq int) tea.Cmd {
	return tea.Tick(flushDelay, func(time.Time) tea.Msg {
		return transmitFlushedMsg{Seq: seq}
	})
}
