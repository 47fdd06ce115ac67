package recyclerview

import (
	"github.com/ayn2op/recyclerview/recycle"
	"github.com/gdamore/tcell/v3"
)

// Cell is one pooled slot of a RecyclerView. The view moves it around as the
// content scrolls and hands it to the Source whenever it is bound to another
// item. Every binding starts from a blank cell.
type Cell struct {
	id     int
	index  int
	active bool

	pos, size recycle.Vec2

	text      string
	style     tcell.Style
	alignment Alignment
	drawFunc  func(screen tcell.Screen, x, y, width, height int)
}

func newCell(id int) *Cell {
	c := &Cell{id: id}
	c.reset()
	return c
}

// reset clears everything a Source may have set.
func (c *Cell) reset() {
	c.index = -1
	c.text = ""
	c.style = tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor)
	c.alignment = AlignmentLeft
	c.drawFunc = nil
}

// SetPosition implements recycle.Cell.
func (c *Cell) SetPosition(pos recycle.Vec2) {
	c.pos = pos
}

// SetSize implements recycle.Cell.
func (c *Cell) SetSize(size recycle.Vec2) {
	c.size = size
}

// ID identifies the cell instance. It is stable while the cell is reused.
func (c *Cell) ID() int {
	return c.id
}

// Index returns the data index the cell is bound to, or -1.
func (c *Cell) Index() int {
	return c.index
}

// Position returns the top-left corner in content coordinates.
func (c *Cell) Position() recycle.Vec2 {
	return c.pos
}

// Size returns the size in screen cells.
func (c *Cell) Size() recycle.Vec2 {
	return c.size
}

// SetText sets the text. Text wraps when the cell is more than one row high.
func (c *Cell) SetText(text string) *Cell {
	c.text = text
	return c
}

func (c *Cell) Text() string {
	return c.text
}

// SetStyle sets the style of the text and the background.
func (c *Cell) SetStyle(style tcell.Style) *Cell {
	c.style = style
	return c
}

func (c *Cell) SetAlignment(alignment Alignment) *Cell {
	c.alignment = alignment
	return c
}

// SetDrawFunc replaces the default text rendering. f draws through a screen
// clipped to the list.
func (c *Cell) SetDrawFunc(f func(screen tcell.Screen, x, y, width, height int)) *Cell {
	c.drawFunc = f
	return c
}

func (c *Cell) draw(screen tcell.Screen, x, y, width, height int) {
	if c.drawFunc != nil {
		c.drawFunc(screen, x, y, width, height)
		return
	}

	fill(screen, x, y, width, height, " ", c.style)
	lines := []string{c.text}
	if height > 1 {
		lines = WordWrap(c.text, width)
	}
	lines = lines[:min(len(lines), height)]
	top := y + (height-len(lines))/2
	for i, line := range lines {
		printWithStyle(screen, line, x, top+i, 0, width, c.alignment, c.style, false)
	}
}

// Source supplies the items of a RecyclerView.
type Source interface {
	// Len returns the number of items.
	Len() int
	// Bind fills cell with the item at index.
	Bind(cell *Cell, index int)
}

// StringSource shows one string per item.
type StringSource []string

func (s StringSource) Len() int {
	return len(s)
}

func (s StringSource) Bind(cell *Cell, index int) {
	cell.SetText(s[index])
}
