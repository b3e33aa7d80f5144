// internal/app/viewer.go
package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/errmsg"
	"github.com/llehouerou/picsearch/internal/gallery"
)

var errNoFullURL = errors.New("no full-size URL")

// openViewer shows img in the modal and downloads its full-size version.
func (m *Model) openViewer(img gallery.Image) tea.Cmd {
	m.cancelFull()
	m.Grid.SetHover(false)
	m.Viewer.Open(img)
	if img.FullURL == "" {
		m.Viewer.SetLoaded(img.FullURL, nil, 0, errNoFullURL)
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.fullCancel = cancel
	return loadFullCmd(ctx, m.full, img.FullURL)
}

func (m *Model) cancelFull() {
	if m.fullCancel != nil {
		m.fullCancel()
		m.fullCancel = nil
	}
}

// closeViewer stops the download and frees the encoded image.
func (m *Model) closeViewer() {
	m.cancelFull()
	m.Viewer.Close()
}

func (m Model) handleFullLoaded(msg FullLoadedMsg) (tea.Model, tea.Cmd) {
	l := msg.Loaded
	// A cancelled download belongs to an earlier opening of the viewer.
	if errors.Is(l.Err, context.Canceled) {
		return m, nil
	}
	if !m.Viewer.SetLoaded(l.URL, l.Image, l.Bytes, l.Err) {
		return m, nil
	}
	m.fullCancel = nil
	if l.Err != nil {
		m.logger.Warn(errmsg.FormatWith(errmsg.OpLoadFull, l.URL, l.Err))
	}
	return m, nil
}
