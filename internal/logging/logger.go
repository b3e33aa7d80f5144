// Package logging provides the structured diagnostic log.
// The TUI owns the terminal, so entries go to a file under the XDG state dir.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName     = "picsearch"
	logFileName = "picsearch.log"
)

// Logger wraps slog.Logger with picsearch-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler writing to stderr.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewWriter creates a text Logger writing to w at the given level.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return NewWriter(io.Discard, slog.LevelError)
}

// OpenFile opens (appending) the log file in the XDG state directory and
// returns a Logger writing to it along with the file to close on exit.
func OpenFile(level slog.Level) (*Logger, io.Closer, error) {
	path, err := xdg.StateFile(filepath.Join(appName, logFileName))
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewWriter(f, level), f, nil
}

// WithQuery adds a query field to the logger.
func (l *Logger) WithQuery(query string) *Logger {
	return &Logger{Logger: l.With("query", query)}
}

// WithGeneration adds a search generation field to the logger.
func (l *Logger) WithGeneration(gen int) *Logger {
	return &Logger{Logger: l.With("generation", gen)}
}

// LogFetchPage logs a single search page request.
func (l *Logger) LogFetchPage(ctx context.Context, page, received, totalPages int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fetch page failed",
			"page", page,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "fetch page completed",
		"page", page,
		"received", received,
		"total_pages", totalPages,
	)
}

// LogFetchDone logs the end of a pagination cycle.
func (l *Logger) LogFetchDone(ctx context.Context, images, pages int, canceled bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "error fetching images",
			"images", images,
			"pages", pages,
			"error", err,
		)
	case canceled:
		l.InfoContext(ctx, "fetch canceled",
			"images", images,
			"pages", pages,
		)
	default:
		l.InfoContext(ctx, "fetch completed",
			"images", images,
			"pages", pages,
		)
	}
}

// LogImageLoad logs an image download and decode.
func (l *Logger) LogImageLoad(ctx context.Context, url string, bytes int, err error) {
	if err != nil {
		l.WarnContext(ctx, "image load failed",
			"url", url,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "image loaded",
		"url", url,
		"bytes", bytes,
	)
}
