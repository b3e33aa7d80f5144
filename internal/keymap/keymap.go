package keymap

// Binding describes a key binding. Bindings with an empty Action are
// documentation only: the owning component handles those keys itself.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "gallery", "search", "viewer", "history"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionFocusSearch, []string{"/"}, "Edit search query", "global"},
	{ActionHistory, []string{"ctrl+r", "H"}, "Search history", "global"},
	{ActionRefresh, []string{"r"}, "Run current search again", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Gallery
	{ActionNextPage, []string{"n", "pgdown", "]"}, "Next page", "gallery"},
	{ActionPrevPage, []string{"p", "pgup", "["}, "Previous page", "gallery"},
	{ActionFirstPage, []string{"home", "g"}, "First page", "gallery"},
	{ActionLastPage, []string{"end", "G"}, "Last page", "gallery"},
	{ActionMoveLeft, []string{"h", "left"}, "Previous tile", "gallery"},
	{ActionMoveRight, []string{"l", "right"}, "Next tile", "gallery"},
	{ActionMoveUp, []string{"k", "up"}, "Tile above", "gallery"},
	{ActionMoveDown, []string{"j", "down"}, "Tile below", "gallery"},
	{ActionOpen, []string{"enter"}, "Open image", "gallery"},

	// Search box
	{"", []string{"enter"}, "Search now", "search"},
	{"", []string{"esc", "tab"}, "Back to gallery", "search"},

	// Viewer
	{"", []string{"esc", "q", "enter"}, "Close image", "viewer"},
	{"", []string{"click outside"}, "Close image", "viewer"},

	// History popup
	{"", []string{"enter"}, "Search again", "history"},
	{"", []string{"d"}, "Forget query", "history"},
	{"", []string{"D"}, "Clear history", "history"},
	{"", []string{"esc"}, "Close", "history"},
}

// Section is a help heading for one binding context.
type Section struct {
	Context string
	Label   string
}

// Sections lists the binding contexts in help order.
var Sections = []Section{
	{"global", "Global"},
	{"gallery", "Gallery"},
	{"search", "Search Box"},
	{"viewer", "Image Viewer"},
	{"history", "Search History"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Dispatchable returns the bindings the resolver should map, i.e. those
// with an action.
func Dispatchable() []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Action != "" {
			result = append(result, kb)
		}
	}
	return result
}
