package ui

// Base holds the size and focus state shared by the gallery components
// and popups. Components embed it and read Width and Height when
// laying out their View.
type Base struct {
	width   int
	height  int
	focused bool
}

// SetSize records the cells the component may draw in.
func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Width() int  { return b.width }
func (b Base) Height() int { return b.height }

// SetFocused marks whether key presses go to the component.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

func (b Base) IsFocused() bool { return b.focused }
