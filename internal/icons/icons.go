// Package icons holds the glyphs decorating queries, authors and errors,
// in the style chosen by the icons config key.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Search  string
	Author  string
	Warning string
	History string
}

var (
	nerdIcons = Icons{
		Search:  "\uf002 ", // nf-fa-search
		Author:  "\uf030 ", // nf-fa-camera
		Warning: "\uf071 ", // nf-fa-warning
		History: "\uf1da ", // nf-fa-history
	}

	unicodeIcons = Icons{
		Search:  "🔍 ",
		Author:  "📷 ",
		Warning: "⚠ ",
		History: "🕘 ",
	}

	noneIcons = Icons{
		Search:  "",
		Author:  "by ",
		Warning: "! ",
		History: "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Active returns the active style.
func Active() Style {
	switch current {
	case nerdIcons:
		return StyleNerd
	case unicodeIcons:
		return StyleUnicode
	default:
		return StyleNone
	}
}

// FormatQuery prefixes a search query with the search icon.
func FormatQuery(q string) string {
	return current.Search + q
}

// FormatAuthor formats a photographer credit. The "none" style reads
// "by <name>".
func FormatAuthor(name string) string {
	if name == "" {
		return ""
	}
	return current.Author + name
}

// Warning returns the prefix for inline errors.
func Warning() string {
	return current.Warning
}

// History returns the recent searches icon.
func History() string {
	return current.History
}
