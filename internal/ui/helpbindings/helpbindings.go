// Package helpbindings provides a scrollable popup listing the key bindings
// of the contexts currently reachable.
package helpbindings

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/picsearch/internal/keymap"
	"github.com/llehouerou/picsearch/internal/ui"
	"github.com/llehouerou/picsearch/internal/ui/popup"
	"github.com/llehouerou/picsearch/internal/ui/render"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// minVisible is the smallest number of binding lines shown.
const minVisible = 5

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	lines        []string // rendered once per SetContexts
	contentWidth int
	scrollOffset int
}

// New creates a new help bindings model.
func New() Model {
	return Model{}
}

// SetContexts selects the binding contexts to list, in keymap.Sections
// order regardless of the order given.
func (m *Model) SetContexts(contexts []string) {
	var sections []keymap.Section
	for _, s := range keymap.Sections {
		if slices.Contains(contexts, s.Context) {
			sections = append(sections, s)
		}
	}
	m.lines, m.contentWidth = renderSections(sections)
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, actionCmd(Close{})
	case "j", "down":
		m.scrollTo(m.scrollOffset + 1)
	case "k", "up":
		m.scrollTo(m.scrollOffset - 1)
	case "g", "home":
		m.scrollTo(0)
	case "G", "end":
		m.scrollTo(m.maxScroll())
	}
	return m, nil
}

func (m *Model) scrollTo(offset int) {
	m.scrollOffset = max(min(offset, m.maxScroll()), 0)
}

// View implements popup.Popup. The popup manager adds the border.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()

	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	visible := make([]string, 0, end-m.scrollOffset)
	for _, line := range m.lines[m.scrollOffset:end] {
		visible = append(visible, render.Pad(line, m.contentWidth))
	}

	return strings.Join([]string{
		t.S().Title.Render("Help"),
		"",
		strings.Join(visible, "\n"),
		"",
		t.S().Subtle.Render(m.footer()),
	}, "\n")
}

func (m Model) footer() string {
	if m.maxScroll() == 0 {
		return "?/esc close"
	}
	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	return fmt.Sprintf("%d-%d of %d · j/k scroll · ?/esc close", m.scrollOffset+1, end, len(m.lines))
}

func (m Model) visibleHeight() int {
	return max(m.Height()-ui.PopupChrome, minVisible)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

// renderSections renders a heading, a rule and one line per binding for
// each section, separated by blank lines. It also returns the widest line.
func renderSections(sections []keymap.Section) (lines []string, width int) {
	t := styles.T()
	heading := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, s := range sections {
		for _, b := range keymap.ByContext(s.Context) {
			keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
		}
	}

	for i, s := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			heading.Render(s.Label),
			t.S().Subtle.Render(strings.Repeat("─", keyWidth+15)),
		)
		for _, b := range keymap.ByContext(s.Context) {
			keys := render.Pad(strings.Join(b.Keys, ", "), keyWidth)
			lines = append(lines, t.S().Accent.Render(keys)+"  "+t.S().Base.Render(b.Description))
		}
	}

	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	return lines, width
}
