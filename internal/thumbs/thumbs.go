// Package thumbs downloads and decodes result images.
package thumbs

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/picsearch/internal/logging"
)

// DefaultConcurrency bounds parallel downloads for one window.
const DefaultConcurrency = 4

// MaxEdge is the longest side kept in memory after decoding. Tiles never
// need more, and the viewer downloads its own full-size copy.
const MaxEdge = 640

// Downloader fetches raw image bytes.
type Downloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

// Loaded is the outcome of one image load.
type Loaded struct {
	URL   string
	Image image.Image
	Bytes int // downloaded size
	Err   error
}

// Loader downloads images with bounded parallelism.
type Loader struct {
	dl          Downloader
	concurrency int
	maxEdge     int
	logger      *logging.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithConcurrency sets the number of parallel downloads.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithMaxEdge sets the longest kept side; 0 keeps the decoded size.
func WithMaxEdge(n int) Option {
	return func(l *Loader) { l.maxEdge = max(n, 0) }
}

// NewLoader creates a loader.
func NewLoader(dl Downloader, logger *logging.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	l := &Loader{
		dl:          dl,
		concurrency: DefaultConcurrency,
		maxEdge:     MaxEdge,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadAll downloads every URL and sends one Loaded per URL on out, in
// completion order. A failed image does not stop the others. It returns
// when all loads finished or ctx is done, and never closes out.
func (l *Loader) LoadAll(ctx context.Context, urls []string, out chan<- Loaded) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for _, u := range urls {
		g.Go(func() error {
			res := l.Load(ctx, u)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			select {
			case out <- res:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	return g.Wait()
}

// Load downloads and decodes a single image.
func (l *Loader) Load(ctx context.Context, url string) Loaded {
	data, err := l.dl.Download(ctx, url)
	if err != nil {
		l.logger.LogImageLoad(ctx, url, 0, err)
		return Loaded{URL: url, Err: err}
	}

	img, err := Decode(data)
	if err != nil {
		l.logger.LogImageLoad(ctx, url, len(data), err)
		return Loaded{URL: url, Bytes: len(data), Err: err}
	}

	l.logger.LogImageLoad(ctx, url, len(data), nil)
	return Loaded{URL: url, Image: Shrink(img, l.maxEdge), Bytes: len(data)}
}

// Decode decodes JPEG, PNG, GIF or WebP data.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Shrink scales img down so its longest side is at most maxEdge.
// Smaller images and maxEdge <= 0 return img unchanged.
func Shrink(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxEdge <= 0 || (w <= maxEdge && h <= maxEdge) {
		return img
	}
	var nw, nh int
	if w >= h {
		nw, nh = maxEdge, max(1, h*maxEdge/w)
	} else {
		nw, nh = max(1, w*maxEdge/h), maxEdge
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
