package recyclerview

import "github.com/gdamore/tcell/v3"

// Box is the base of every primitive. It draws a background, optional
// borders and a title and footer, and reserves an inner rect for the content
// of the primitive that embeds it.
type Box struct {
	x, y, width, height int

	// Cached inner rect; innerX < 0 means it must be recomputed.
	innerX, innerY, innerWidth, innerHeight int

	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color
	dontClear       bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style
	// focusBorderStyle replaces borderStyle while the box has focus.
	focusBorderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	footer          string
	footerStyle     tcell.Style
	footerAlignment Alignment

	hasFocus    bool
	focus, blur func()
}

// NewBox returns a borderless box.
func NewBox() *Box {
	border := tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor)
	return &Box{
		width:            15,
		height:           10,
		innerX:           -1,
		backgroundColor:  Styles.PrimitiveBackgroundColor,
		borderSet:        BorderSetPlain(),
		borderStyle:      border,
		focusBorderStyle: border.Foreground(Styles.FocusBorderColor),
		titleStyle:       tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment:   AlignmentCenter,
		footerStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
		footerAlignment:  AlignmentRight,
	}
}

// SetBorderPadding sets the space between the borders and the content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	b.innerX = -1
	return b
}

// GetRect returns the position of the box: x, y, width and height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// SetRect moves and resizes the box.
func (b *Box) SetRect(x, y, width, height int) {
	b.x, b.y, b.width, b.height = x, y, width, height
	b.innerX = -1
}

// GetInnerRect returns the rect inside the borders and the padding. Width and
// height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.x, b.y, b.width, b.height
	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}
	if b.footer != "" || b.borders.Has(BordersBottom) {
		height--
	}
	if b.borders.Has(BordersLeft) {
		x++
		width--
	}
	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width = max(width-b.paddingLeft-b.paddingRight, 0)
	height = max(height-b.paddingTop-b.paddingBottom, 0)
	return x, y, width, height
}

// InRect reports whether the point lies inside the box.
func (b *Box) InRect(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// InInnerRect reports whether the point lies inside the inner rect.
func (b *Box) InInnerRect(x, y int) bool {
	rx, ry, width, height := b.GetInnerRect()
	return x >= rx && x < rx+width && y >= ry && y < ry+height
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// MouseHandler focuses the box when it is clicked.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// SetBackgroundColor sets the background color.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	b.focusBorderStyle = b.focusBorderStyle.Background(color)
	return b
}

// GetBackgroundColor returns the background color.
func (b *Box) GetBackgroundColor() tcell.Color {
	return b.backgroundColor
}

// SetDontClear keeps whatever is on screen below the box instead of filling
// it with the background color.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.dontClear = dontClear
	return b
}

// SetBorders selects the borders to draw.
func (b *Box) SetBorders(borders Borders) *Box {
	b.borders = borders
	b.innerX = -1
	return b
}

// GetBorders returns the drawn borders.
func (b *Box) GetBorders() Borders {
	return b.borders
}

// SetBorderSet sets the border glyphs.
func (b *Box) SetBorderSet(set BorderSet) *Box {
	b.borderSet = set
	return b
}

// SetBorderStyle sets the border style used without focus.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// SetFocusBorderStyle sets the border style used with focus.
func (b *Box) SetFocusBorderStyle(style tcell.Style) *Box {
	b.focusBorderStyle = style
	return b
}

// SetTitle sets the text drawn on the top edge.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	b.innerX = -1
	return b
}

// GetTitle returns the title.
func (b *Box) GetTitle() string {
	return b.title
}

// SetTitleStyle sets the title style.
func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	b.titleStyle = style
	return b
}

// SetTitleAlignment sets the title alignment.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	b.titleAlignment = alignment
	return b
}

// SetFooter sets the text drawn on the bottom edge.
func (b *Box) SetFooter(footer string) *Box {
	b.footer = footer
	b.innerX = -1
	return b
}

// GetFooter returns the footer.
func (b *Box) GetFooter() string {
	return b.footer
}

// SetFooterStyle sets the footer style.
func (b *Box) SetFooterStyle(style tcell.Style) *Box {
	b.footerStyle = style
	return b
}

// SetFooterAlignment sets the footer alignment.
func (b *Box) SetFooterAlignment(alignment Alignment) *Box {
	b.footerAlignment = alignment
	return b
}

// Draw draws the box.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box on behalf of p, the primitive embedding it.
// The border style follows p's focus.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	if !b.dontClear {
		background := tcell.StyleDefault.Background(b.backgroundColor)
		fill(screen, b.x, b.y, b.width, b.height, " ", background)
	}

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		style := b.borderStyle
		if p.HasFocus() {
			style = b.focusBorderStyle
		}
		b.drawBorders(screen, style)
	}

	b.drawLabel(screen, b.title, b.y, b.titleAlignment, b.titleStyle)
	b.drawLabel(screen, b.footer, b.y+b.height-1, b.footerAlignment, b.footerStyle)

	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
}

func (b *Box) drawBorders(screen tcell.Screen, style tcell.Style) {
	set := b.borderSet
	left, top := b.x, b.y
	right, bottom := b.x+b.width-1, b.y+b.height-1

	if b.borders.Has(BordersTop) {
		fill(screen, left+1, top, b.width-2, 1, set.Top, style)
	}
	if b.borders.Has(BordersBottom) {
		fill(screen, left+1, bottom, b.width-2, 1, set.Bottom, style)
	}
	if b.borders.Has(BordersLeft) {
		fill(screen, left, top+1, 1, b.height-2, set.Left, style)
	}
	if b.borders.Has(BordersRight) {
		fill(screen, right, top+1, 1, b.height-2, set.Right, style)
	}

	corners := []struct {
		mask Borders
		x, y int
		str  string
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders&c.mask == c.mask {
			screen.Put(c.x, c.y, c.str, style)
		}
	}
}

// drawLabel prints a title or footer on row y, ending it with an ellipsis
// when it is cut off.
func (b *Box) drawLabel(screen tcell.Screen, text string, y int, alignment Alignment, style tcell.Style) {
	if text == "" || b.width < 4 {
		return
	}
	start, end, _ := printWithStyle(screen, text, b.x+1, y, 0, b.width-2, alignment, style, true)
	printed := end - start
	if printed == 0 || printed >= len(text) {
		return
	}
	x := b.x + b.width - 2
	if alignment == AlignmentRight {
		x = b.x + 1
	}
	_, existing, _ := screen.Get(x, y)
	Print(screen, SemigraphicsHorizontalEllipsis, x, y, 1, AlignmentLeft, existing.GetForeground())
}

// SetFocusFunc sets a callback invoked when the box receives focus.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// SetBlurFunc sets a callback invoked when the box loses focus.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.blur = callback
	return b
}

// Focus is called when the box receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
	if b.focus != nil {
		b.focus()
	}
}

// Blur is called when the box loses focus.
func (b *Box) Blur() {
	b.hasFocus = false
	if b.blur != nil {
		b.blur()
	}
}

// HasFocus reports whether the box has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}

// fill paints a rect with str.
func fill(screen tcell.Screen, x, y, width, height int, str string, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.Put(col, row, str, style)
		}
	}
}
