package recycle

// Cell is a reusable view slot. The engine positions and sizes it; the data
// source decides what it displays. Cells are reused, so collaborators must not
// keep references to a cell beyond the call that received it.
type Cell interface {
	// SetPosition moves the cell's top-left corner in content space.
	SetPosition(pos Vec2)
	SetSize(size Vec2)
}

// DataSource supplies the item count and binds items to cells.
type DataSource interface {
	ItemCount() int
	// SetCell binds the item at index to cell. It must complete before it
	// returns.
	SetCell(cell Cell, index int)
	// RefreshCell rebinds the item the cell already holds.
	RefreshCell(cell Cell)
}

// CellFactory creates and recycles cell instances.
type CellFactory interface {
	Instantiate() Cell
	Activate(cell Cell)
	Deactivate(cell Cell)
	Destroy(cell Cell)
}

// Viewport is the visible window of the scroll container.
type Viewport interface {
	// Extent returns the viewport's width and height.
	Extent() Vec2
}

// Content is the scrollable surface that holds the cells.
type Content interface {
	Extent() Vec2
	SetExtent(extent Vec2)
	// Anchor returns the content origin relative to the viewport origin.
	Anchor() Vec2
	SetAnchor(anchor Vec2)
}

// Slot is a snapshot of one pooled cell.
type Slot struct {
	Cell     Cell
	Position Vec2
	// Index is the logical item index the cell holds.
	Index int
}
