package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/picsearch/internal/ui/action"
	"github.com/llehouerou/picsearch/internal/ui/popup"
)

type picked struct{ key string }

func (picked) ActionType() string { return "test.picked" }

// keyPopup reports every key it receives as a picked action.
type keyPopup struct {
	content       string
	width, height int
}

var _ popup.Popup = (*keyPopup)(nil)

func (p *keyPopup) Init() tea.Cmd { return nil }

func (p *keyPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return p, action.Cmd(action.History, picked{key: key.String()})
	}
	return p, nil
}

func (p *keyPopup) View() string { return "\x1b[1m" + p.content + "\x1b[0m" }

func (p *keyPopup) SetSize(width, height int) { p.width, p.height = width, height }

func TestPopupHarness_RecordsActions(t *testing.T) {
	p := &keyPopup{content: "Recent searches"}
	h := NewPopupHarness(p)
	assert.Nil(t, h.LastAction())

	h.SendKey("d")
	h.SendEnter()

	require.Len(t, h.Commands(), 2)
	assert.Equal(t, picked{key: "enter"}, h.LastAction())
}

func TestPopupHarness_SetSizeAndView(t *testing.T) {
	p := &keyPopup{content: "Recent searches"}
	h := NewPopupHarness(p)

	h.SetSize(40, 12)

	assert.Equal(t, 40, p.width)
	assert.Equal(t, 12, p.height)
	assert.Empty(t, h.AssertViewContains("Recent"))
	assert.NotEmpty(t, h.AssertViewContains("Help"))
}
