// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Kitty graphics (APC) and Sixel (DCS) payloads, then CSI sequences.
	graphicsRe = regexp.MustCompile(`\x1b_G[^\x1b]*\x1b\\|\x1bP[^\x1b]*\x1b\\`)
	csiRe      = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
)

// StripANSI removes styling, cursor movement and image escape sequences,
// leaving the text a user would read.
func StripANSI(s string) string {
	return csiRe.ReplaceAllString(graphicsRe.ReplaceAllString(s, ""), "")
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters (CJK, emoji) and stripping ANSI codes.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// Lines returns the stripped lines of a rendered view.
func Lines(view string) []string {
	return strings.Split(StripANSI(view), "\n")
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
