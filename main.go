package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/app"
	"github.com/llehouerou/picsearch/internal/config"
	"github.com/llehouerou/picsearch/internal/icons"
	"github.com/llehouerou/picsearch/internal/logging"
	"github.com/llehouerou/picsearch/internal/notify"
	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/stderr"
	"github.com/llehouerou/picsearch/internal/ui/imgrender"
	"github.com/llehouerou/picsearch/internal/unsplash"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.OpenFile(slog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logFile.Close()
	}

	if !cfg.HasAccessKey() {
		fmt.Fprintf(os.Stderr,
			"Warning: no Unsplash access key; set access_key in config.toml or %s\n",
			config.AccessKeyEnv)
	}

	// History is optional; the gallery works without it.
	var history state.Interface
	stateMgr, err := state.Open()
	if err != nil {
		logger.Warn("search history disabled", "error", err)
	} else {
		defer stateMgr.Close()
		history = stateMgr
	}

	notifier := notify.Disabled()
	if cfg.Notifications.Desktop {
		if n, nerr := notify.New(); nerr != nil {
			logger.Warn("desktop notifications disabled", "error", nerr)
		} else {
			notifier = n
		}
	}

	icons.Init(cfg.Icons)

	sc := cfg.GetSearchConfig()
	client := unsplash.New(cfg.AccessKey,
		unsplash.WithBaseURL(sc.BaseURL),
		unsplash.WithPerPage(sc.PerPage),
	)

	m := app.New(app.Deps{
		Config:   cfg,
		Source:   client,
		Images:   client,
		History:  history,
		Notifier: notifier,
		Logger:   logger,
		Renderer: imgrender.New(imgrender.Detect(cfg.Display.ImageProtocol)),
	})

	capture, err := stderr.Start(func(line string) {
		logger.Warn("stderr", "line", line)
	})
	if err != nil {
		logger.Warn("stderr capture disabled", "error", err)
	} else {
		defer capture.Stop()
	}

	// All-motion reporting delivers pointer moves with no button held,
	// which the grid's hover dimming depends on.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Shutdown()
	}
	return err
}
