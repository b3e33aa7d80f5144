package helpbindings

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/picsearch/internal/ui/testutil"
)

var allContexts = []string{"global", "gallery", "search", "viewer", "history"}

func newTestHelp(contexts []string, height int) (*Model, *testutil.PopupHarness) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return &m, testutil.NewPopupHarness(&m)
}

func TestHelpBindings_CloseKeys(t *testing.T) {
	for _, key := range []string{"?", "q", "esc"} {
		t.Run(key, func(t *testing.T) {
			_, h := newTestHelp([]string{"global"}, 24)

			if key == "esc" {
				h.SendEscape()
			} else {
				h.SendKey(key)
			}

			assert.Equal(t, Close{}, h.LastAction())
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelp(allContexts, 20)
	require.Positive(t, m.maxScroll(), "content should overflow a 20-row popup")

	h.SendKey("j")
	h.SendDown()
	assert.Equal(t, 2, m.scrollOffset)

	h.SendKey("k")
	assert.Equal(t, 1, m.scrollOffset)

	h.SendKey("G")
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	h.SendDown()
	assert.Equal(t, m.maxScroll(), m.scrollOffset, "cannot scroll past the end")

	h.SendKey("g")
	h.SendUp()
	assert.Equal(t, 0, m.scrollOffset, "cannot scroll above the top")
}

func TestHelpBindings_View(t *testing.T) {
	_, h := newTestHelp([]string{"gallery", "global"}, 100)

	view := testutil.StripANSI(h.View())

	for _, want := range []string{"Help", "Global", "Gallery", "Next page", "?/esc close"} {
		assert.Contains(t, view, want)
	}
	assert.Less(t, strings.Index(view, "Global"), strings.Index(view, "Gallery"),
		"sections follow keymap order, not the order given")
	assert.NotContains(t, view, "Image Viewer")
}

func TestHelpBindings_FooterShowsPosition(t *testing.T) {
	m, h := newTestHelp(allContexts, 20)

	h.SendDown()

	want := fmt.Sprintf("2-%d of %d", 1+m.visibleHeight(), len(m.lines))
	assert.Contains(t, testutil.StripANSI(h.View()), want)
}

func TestHelpBindings_SetContextsResetsScroll(t *testing.T) {
	m, h := newTestHelp(allContexts, 20)
	h.SendDown()

	m.SetContexts([]string{"global"})

	assert.Equal(t, 0, m.scrollOffset)
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New()
	m.SetContexts([]string{"global"})

	assert.Empty(t, m.View())
}
