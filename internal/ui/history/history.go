// Package history provides the popup listing recent searches.
package history

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/picsearch/internal/icons"
	"github.com/llehouerou/picsearch/internal/state"
	"github.com/llehouerou/picsearch/internal/ui"
	"github.com/llehouerou/picsearch/internal/ui/cursor"
	"github.com/llehouerou/picsearch/internal/ui/popup"
	"github.com/llehouerou/picsearch/internal/ui/render"
	"github.com/llehouerou/picsearch/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Rows taken by the title, blank lines and footer.
const chromeRows = 4

// Model holds the state for the search history popup.
type Model struct {
	ui.Base
	records []state.SearchRecord
	cursor  cursor.Cursor
	now     func() time.Time
}

// New creates an empty history popup.
func New() Model {
	return Model{
		cursor: cursor.New(ui.ScrollMargin),
		now:    time.Now,
	}
}

// SetRecords replaces the listed searches, most recent first.
func (m *Model) SetRecords(records []state.SearchRecord) {
	m.records = records
	m.cursor.Reset()
}

// Records returns the listed searches.
func (m Model) Records() []state.SearchRecord {
	return m.records
}

// Selected returns the record under the cursor.
func (m Model) Selected() (state.SearchRecord, bool) {
	pos := m.cursor.Pos()
	if pos < 0 || pos >= len(m.records) {
		return state.SearchRecord{}, false
	}
	return m.records[pos], true
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

	key := keyMsg.String()
	if m.cursor.HandleKey(key, len(m.records), m.listHeight()) {
		return m, nil
	}

	switch key {
	case "esc", "q", "ctrl+r", "H":
		return m, actionCmd(Close{})
	case "enter":
		rec, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, actionCmd(Rerun{Query: rec.Query})
	case "d", "delete":
		rec, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.records = append(m.records[:m.cursor.Pos():m.cursor.Pos()], m.records[m.cursor.Pos()+1:]...)
		m.cursor.Clamp(len(m.records))
		return m, actionCmd(Forget{Query: rec.Query})
	case "D":
		if len(m.records) == 0 {
			return m, nil
		}
		return m, actionCmd(ClearAll{})
	}
	return m, nil
}

func (m Model) listHeight() int {
	return max(m.Height()-chromeRows, 1)
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	width := max(m.Width(), 20)

	var lines []string
	if len(m.records) == 0 {
		lines = append(lines, t.S().Muted.Render("No searches yet"))
	} else {
		start, end := m.cursor.Window(len(m.records), m.listHeight())
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRecord(m.records[i], i == m.cursor.Pos(), width))
		}
	}

	var sb strings.Builder
	sb.WriteString(t.S().Title.Render(icons.History() + "Recent searches"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(t.S().Subtle.Render("enter search · d forget · D clear all · esc close"))
	return sb.String()
}

func (m Model) renderRecord(rec state.SearchRecord, selected bool, width int) string {
	t := styles.T()

	detail := resultsLabel(rec) + " · " + humanize.RelTime(rec.SearchedAt, m.now(), "ago", "from now")
	query := render.Truncate(rec.Query, max(width-lipgloss.Width(detail)-5, 8))

	prefix := "  "
	queryStyle := t.S().Base
	if selected {
		prefix = "> "
		queryStyle = t.S().Accent
	}
	detailStyle := t.S().Muted
	if rec.Failed {
		detailStyle = t.S().Warning
	}
	return prefix + queryStyle.Render(query) + t.S().Subtle.Render(" — ") + detailStyle.Render(detail)
}

func resultsLabel(rec state.SearchRecord) string {
	label := fmt.Sprintf("%d results", rec.Results)
	if rec.Results == 1 {
		label = "1 result"
	}
	if rec.Failed {
		label += " (incomplete)"
	}
	return label
}
