package imgrender

import (
	"os"
	"strings"
)

const (
	defaultCellW = 8
	defaultCellH = 16
)

// Detect returns the drawing mode to use. A non-empty override ("kitty",
// "sixel", "halfblock" or "none") wins over terminal detection. Terminals
// without a graphics protocol fall back to half-block art.
func Detect(override string) Mode {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "kitty":
		return ModeKitty
	case "sixel":
		return ModeSixel
	case "halfblock":
		return ModeHalfBlock
	case "none":
		return ModeNone
	}

	if IsKittySupported() {
		return ModeKitty
	}
	if IsSixelSupported() {
		return ModeSixel
	}
	return ModeHalfBlock
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour leaks parent terminal variables but has no Kitty support.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	// KONSOLE_VERSION is like "220401"; supported from 22.04.
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal is known to render Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")

	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	if term == "foot" || term == "foot-extra" {
		return true
	}
	return strings.Contains(term, "sixel") || term == "mlterm"
}
