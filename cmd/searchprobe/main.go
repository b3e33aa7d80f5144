// Command searchprobe runs one fetch cycle against the Unsplash API and
// prints what came back, without starting the TUI.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/picsearch/internal/config"
	"github.com/llehouerou/picsearch/internal/fetcher"
	"github.com/llehouerou/picsearch/internal/logging"
	"github.com/llehouerou/picsearch/internal/unsplash"
)

func main() {
	query := flag.String("q", "", "search query (default: initial_query from config)")
	thumb := flag.Bool("thumb", false, "also download the first thumbnail")
	verbose := flag.Bool("v", false, "log every page to stderr")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.HasAccessKey() {
		log.Fatalf("No access key: set access_key in config.toml or %s", config.AccessKeyEnv)
	}
	q := *query
	if q == "" {
		q = cfg.InitialQuery
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewWriter(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	sc := cfg.GetSearchConfig()
	client := unsplash.New(cfg.AccessKey,
		unsplash.WithBaseURL(sc.BaseURL),
		unsplash.WithPerPage(sc.PerPage),
	)
	f := fetcher.New(client, sc.ResultCap, logger)

	log.Printf("Searching %q (cap %d, %d per page)...", q, f.Cap(), sc.PerPage)
	start := time.Now()
	res := f.Fetch(ctx, q, func(p fetcher.Progress) {
		log.Printf("  page %d/%d: %d results so far", p.Page, p.TotalPages, p.Received)
	})
	log.Printf("Fetched %d results from %d of %d pages in %s",
		len(res.Images), res.Pages, res.TotalPages, time.Since(start).Round(time.Millisecond))

	for i, img := range res.Images {
		log.Printf("  [%2d] %s by %s (%dx%d)", i+1, img.ID, img.Author, img.Width, img.Height)
	}

	switch {
	case res.Canceled:
		log.Println("Search canceled")
	case res.Err != nil:
		log.Printf("Search stopped early: %v", res.Err)
	}

	if *thumb && len(res.Images) > 0 {
		url := res.Images[0].ThumbURL
		data, err := client.Download(ctx, url)
		if err != nil {
			log.Fatalf("Failed to download thumbnail: %v", err)
		}
		log.Printf("Thumbnail %s: %s", res.Images[0].ID, humanize.Bytes(uint64(len(data))))
	}

	if res.Err != nil {
		os.Exit(1)
	}
}
