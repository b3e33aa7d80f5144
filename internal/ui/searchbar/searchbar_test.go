package searchbar

import (
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/picsearch/internal/ui/action"
	"github.com/llehouerou/picsearch/internal/ui/testutil"
)

const quiet = 1200 * time.Millisecond

func newFocused(initial string) Model {
	m := New(initial, quiet)
	m.SetSize(60, Height)
	m.Focus()
	return m
}

func typeText(m Model, s string) (Model, []tea.Cmd) {
	var cmds []tea.Cmd
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return m, cmds
}

// debounceMsgs runs cmd (possibly a batch) and collects DebounceMsgs.
func debounceMsgs(cmd tea.Cmd) []DebounceMsg {
	var out []DebounceMsg
	msg := testutil.ExecuteCmd(cmd)
	switch msg := msg.(type) {
	case DebounceMsg:
		out = append(out, msg)
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, debounceMsgs(c)...)
		}
	}
	return out
}

func submitOf(t *testing.T, cmd tea.Cmd) (Submit, bool) {
	t.Helper()
	if cmd == nil {
		return Submit{}, false
	}
	msg, ok := cmd().(action.Msg)
	if !ok {
		return Submit{}, false
	}
	s, ok := msg.Action.(Submit)
	return s, ok
}

func TestSearchbar_TwoKeystrokesCommitOnceWithLatestText(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m := newFocused("")

		m, cmds := typeText(m, "ca")
		require.Len(t, cmds, 2)

		var submits []Submit
		for _, c := range cmds {
			for _, d := range debounceMsgs(c) {
				var cmd tea.Cmd
				m, cmd = m.Update(d)
				if s, ok := submitOf(t, cmd); ok {
					submits = append(submits, s)
				}
			}
		}

		require.Len(t, submits, 1)
		assert.Equal(t, "ca", submits[0].Query)
		assert.False(t, submits[0].Immediate)
		assert.Equal(t, "ca", m.Committed())
	})
}

func TestSearchbar_TimerWaitsForQuietPeriod(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m := newFocused("")
		_, cmds := typeText(m, "x")

		start := time.Now()
		msgs := debounceMsgs(cmds[0])
		elapsed := time.Since(start)

		require.Len(t, msgs, 1)
		assert.GreaterOrEqual(t, elapsed, quiet)
	})
}

func TestSearchbar_StaleVersionIgnored(t *testing.T) {
	m := newFocused("")
	m, _ = typeText(m, "dog")

	m, cmd := m.Update(DebounceMsg{Version: m.Version() - 1})
	assert.Nil(t, cmd)
	assert.Empty(t, m.Committed())
}

func TestSearchbar_UnchangedQueryNotRecommitted(t *testing.T) {
	m := newFocused("dog")
	m, _ = typeText(m, "s")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	_, cmd := m.Update(DebounceMsg{Version: m.Version()})
	assert.Nil(t, cmd)
}

func TestSearchbar_EnterCommitsImmediately(t *testing.T) {
	m := newFocused("")
	m, _ = typeText(m, "fox")
	pending := m.Version()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s, ok := submitOf(t, cmd)
	require.True(t, ok)
	assert.Equal(t, "fox", s.Query)
	assert.True(t, s.Immediate)

	// The timer started before enter no longer commits.
	_, cmd = m.Update(DebounceMsg{Version: pending})
	assert.Nil(t, cmd)
}

func TestSearchbar_EnterResubmitsSameQuery(t *testing.T) {
	m := newFocused("dog")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s, ok := submitOf(t, cmd)
	require.True(t, ok)
	assert.Equal(t, "dog", s.Query)
}

func TestSearchbar_EscAndTabLeave(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEscape, tea.KeyTab} {
		m := newFocused("dog")

		m, cmd := m.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		msg, ok := cmd().(action.Msg)
		require.True(t, ok)
		assert.IsType(t, Leave{}, msg.Action)
		assert.False(t, m.IsFocused())
	}
}

func TestSearchbar_IgnoresKeysWhenBlurred(t *testing.T) {
	m := New("dog", quiet)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.Equal(t, "dog", m.Value())
}

func TestSearchbar_SetQueryCancelsPending(t *testing.T) {
	m := newFocused("")
	m, _ = typeText(m, "ca")
	pending := m.Version()

	m.SetQuery("bird")
	assert.Equal(t, "bird", m.Value())
	assert.Equal(t, "bird", m.Committed())

	_, cmd := m.Update(DebounceMsg{Version: pending})
	assert.Nil(t, cmd)
}

func TestSearchbar_View(t *testing.T) {
	m := New("", quiet)
	m.SetSize(40, Height)
	assert.Contains(t, testutil.StripANSI(m.View()), "Press / to search")

	m.Focus()
	m, _ = typeText(m, "owl")
	assert.Contains(t, testutil.StripANSI(m.View()), "owl")
}
