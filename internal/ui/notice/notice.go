// Package notice provides a blocking alert popup and a yes/no question
// popup.
package notice

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/picsearch/internal/ui"
	"github.com/llehouerou/picsearch/internal/ui/popup"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

type kind int

const (
	kindAlert kind = iota
	kindQuestion
)

// Model is a modal notice. It stays on screen until the user answers it.
type Model struct {
	ui.Base
	kind    kind
	title   string
	message string
	context any
	active  bool
}

// New creates a hidden notice.
func New() Model {
	return Model{}
}

// Alert shows a message that is acknowledged with enter or esc.
func (m *Model) Alert(title, message string, context any, width, height int) {
	m.show(kindAlert, title, message, context, width, height)
}

// Ask shows a yes/no question.
func (m *Model) Ask(title, message string, context any, width, height int) {
	m.show(kindQuestion, title, message, context, width, height)
}

func (m *Model) show(k kind, title, message string, context any, width, height int) {
	m.kind = k
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset hides the notice.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the notice is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Message returns the text being shown.
func (m Model) Message() string {
	return m.message
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.kind == kindAlert {
		return m.handleAlertKey(keyMsg)
	}
	return m.handleQuestionKey(keyMsg)
}

func (m *Model) handleAlertKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		ctx := m.context
		m.Reset()
		return m, actionCmd(Dismissed{Context: ctx})
	}
	return m, nil
}

func (m *Model) handleQuestionKey(msg tea.KeyMsg) (popup.Popup, tea.Cmd) {
	var yes bool
	switch msg.String() {
	case "enter", "y", "Y":
		yes = true
	case "esc", "n", "N":
	default:
		return m, nil
	}
	ctx := m.context
	m.Reset()
	return m, actionCmd(Answered{Yes: yes, Context: ctx})
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	title := t.S().Title.Render(m.title)
	if m.kind == kindAlert {
		title = t.S().Warning.Bold(true).Render(m.title)
	}
	message := t.S().Base.Render(m.message)

	hint := "Enter/Esc: dismiss"
	if m.kind == kindQuestion {
		hint = "Enter/Y: confirm, Esc/N: cancel"
	}
	return title + "\n\n" + message + "\n\n" + t.S().Subtle.Render(hint)
}
