// Package fetcher aggregates paginated search results up to a cap.
package fetcher

import (
	"context"

	"github.com/llehouerou/picsearch/internal/gallery"
	"github.com/llehouerou/picsearch/internal/logging"
)

// Source returns one page of normalized results and the total page count
// reported for the query. Pages are 1-based.
type Source interface {
	SearchImages(ctx context.Context, query string, page int) ([]gallery.Image, int, error)
}

// Progress is reported after every successful page.
type Progress struct {
	Page       int // page just received
	TotalPages int // as reported by that page
	Received   int // results accumulated so far
}

// Result is the outcome of one fetch cycle.
type Result struct {
	Query      string
	Images     []gallery.Image // never longer than the cap
	Pages      int             // pages successfully received
	TotalPages int             // last value reported by the source
	Err        error           // first page failure, if any
	Canceled   bool
}

// Fetcher runs fetch cycles against a Source.
type Fetcher struct {
	source Source
	cap    int
	logger *logging.Logger
}

// New creates a fetcher that stops once resultCap results are collected.
func New(source Source, resultCap int, logger *logging.Logger) *Fetcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Fetcher{
		source: source,
		cap:    max(resultCap, 1),
		logger: logger,
	}
}

// Cap returns the result cap.
func (f *Fetcher) Cap() int { return f.cap }

// Fetch requests pages sequentially starting at 1, until the cap is reached,
// the reported page count is exhausted, a page fails, or ctx is done.
// Results gathered before a failure are kept. onPage may be nil.
func (f *Fetcher) Fetch(ctx context.Context, query string, onPage func(Progress)) Result {
	res := Result{Query: query}
	log := f.logger.WithQuery(query)

	page := 0
	for {
		if err := ctx.Err(); err != nil {
			res.Canceled = true
			break
		}

		page++
		images, totalPages, err := f.source.SearchImages(ctx, query, page)
		if err != nil {
			// Only the caller's context cancels; client timeouts also match
			// context.DeadlineExceeded and are failures.
			if ctx.Err() != nil {
				res.Canceled = true
				break
			}
			log.LogFetchPage(ctx, page, 0, res.TotalPages, err)
			res.Err = err
			break
		}

		res.Images = append(res.Images, images...)
		res.TotalPages = totalPages
		res.Pages = page
		log.LogFetchPage(ctx, page, len(images), totalPages, nil)

		if onPage != nil {
			onPage(Progress{Page: page, TotalPages: totalPages, Received: len(res.Images)})
		}

		if len(res.Images) >= f.cap || page >= totalPages {
			break
		}
	}

	if len(res.Images) > f.cap {
		res.Images = res.Images[:f.cap]
	}

	log.LogFetchDone(ctx, len(res.Images), res.Pages, res.Canceled, res.Err)
	return res
}
