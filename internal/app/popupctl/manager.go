// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/ui/helpbindings"
	"github.com/llehouerou/picsearch/internal/ui/history"
	"github.com/llehouerou/picsearch/internal/ui/notice"
	"github.com/llehouerou/picsearch/internal/ui/popup"
)

// Manager manages all modal popups.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.SizeConfig
	width  int
	height int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			History: {WidthPct: 60, HeightPct: 60},
			// Help and Notice fit their content.
		},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		pop.SetSize(p.sizes[t].Content(width, height))
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	if t == None {
		return false
	}
	return p.popups[t] != nil
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// AnyVisible reports whether some popup is shown.
func (p *Manager) AnyVisible() bool {
	return p.ActivePopup() != None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	pop.SetSize(p.sizes[t].Content(p.width, p.height))
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowAlert displays a notice acknowledged with enter or esc.
func (p *Manager) ShowAlert(title, message string, context any) tea.Cmd {
	n := notice.New()
	n.Alert(title, message, context, p.width, p.height)
	return p.Show(Notice, &n)
}

// ShowQuestion displays a yes/no notice.
func (p *Manager) ShowQuestion(title, message string, context any) tea.Cmd {
	n := notice.New()
	n.Ask(title, message, context, p.width, p.height)
	return p.Show(Notice, &n)
}

// ShowHistory displays the search history popup.
func (p *Manager) ShowHistory(records []state.SearchRecord) tea.Cmd {
	h := history.New()
	h.SetRecords(records)
	return p.Show(History, &h)
}

// --- Accessors ---

// Notice returns the notice popup model, or nil when hidden.
func (p *Manager) Notice() *notice.Model {
	if pop := p.popups[Notice]; pop != nil {
		if n, ok := pop.(*notice.Model); ok {
			return n
		}
	}
	return nil
}

// History returns the history popup model, or nil when hidden.
func (p *Manager) History() *history.Model {
	if pop := p.popups[History]; pop != nil {
		if h, ok := pop.(*history.Model); ok {
			return h
		}
	}
	return nil
}

// --- Key Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	pop := p.popups[active]
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		content := pop.View()
		if content == "" {
			continue
		}
		rendered := popup.RenderBordered(content, p.width, p.height, p.sizes[t])
		base = popup.Compose(base, rendered, p.width)
	}
	return base
}
