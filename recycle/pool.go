package recycle

// slot is a pooled cell and the state the engine keeps for it.
type slot struct {
	cell  Cell
	pos   Vec2
	index int
}

// takeCell returns the i-th instantiated cell, creating it if needed.
func (e *Engine) takeCell(i int) Cell {
	if i < len(e.cells) {
		e.factory.Activate(e.cells[i])
		return e.cells[i]
	}
	cell := e.factory.Instantiate()
	e.cells = append(e.cells, cell)
	e.factory.Activate(cell)
	return cell
}

// destroyPool destroys every instantiated cell.
func (e *Engine) destroyPool() {
	for _, cell := range e.cells {
		e.factory.Destroy(cell)
	}
	e.cells = nil
	e.slots = e.slots[:0]
}

// releasePool deactivates the active cells but keeps the instances.
func (e *Engine) releasePool() {
	for _, s := range e.slots {
		e.factory.Deactivate(s.cell)
	}
	e.slots = e.slots[:0]
}

// fillPool creates, binds and places cells until the pool holds at least the
// minimum number of cells and covers the minimum extent. Bounded lists stop
// at the item count. It returns the number of lines the pool occupies.
func (e *Engine) fillPool(viewportExtent float64) int {
	segments := e.cfg.Segments
	minPool := e.cfg.MinPoolSize
	if e.cfg.Grid {
		minPool *= segments
	}
	if !e.cfg.Loop {
		minPool = min(minPool, e.itemCount)
	}
	// The window must outspan the recyclable bounds by a line, or a line can
	// sit on each edge with neither recyclable and leave a gap in between.
	span := (1+2*e.cfg.Threshold)*viewportExtent + e.step
	required := max(e.cfg.MinCoverage*viewportExtent, span)

	var (
		covered float64
		line    int
		segment int
		item    int
	)
	for (len(e.slots) < minPool || covered < required) && (e.cfg.Loop || item < e.itemCount) {
		cell := e.takeCell(len(e.slots))
		pos := e.cfg.Axis.Vec(e.lineOffset(line), e.segmentOffset(segment))
		cell.SetSize(e.cellSize)
		cell.SetPosition(pos)
		e.slots = append(e.slots, slot{cell: cell, pos: pos, index: item})
		e.bind(cell, item)

		e.grid.LeadingLine = segment
		last := item+1 >= e.itemCount
		segment++
		item++
		// In loop mode every pass over the sequence starts on a fresh line.
		if segment >= segments || (e.cfg.Loop && last) {
			segment = 0
			line++
			covered += e.step
		}
		if e.cfg.Loop && item >= e.itemCount {
			item = 0
		}
	}

	if segment > 0 {
		line++
	}
	return line
}

// lineOffset is the primary position of the line-th line from the content
// start.
func (e *Engine) lineOffset(line int) float64 {
	return e.cfg.Axis.start(e.cfg.Padding) + float64(line)*e.step
}

// segmentOffset is the cross position of a slot within a line.
func (e *Engine) segmentOffset(segment int) float64 {
	axis := e.cfg.Axis
	return axis.crossStart(e.cfg.Padding) + float64(segment)*(axis.Cross(e.cellSize)+axis.Cross(e.cfg.Spacing))
}

// extentFor is the primary content extent needed to hold lines lines.
func (e *Engine) extentFor(lines int) float64 {
	axis := e.cfg.Axis
	pad := axis.start(e.cfg.Padding) + axis.end(e.cfg.Padding)
	if lines <= 0 {
		return pad
	}
	return float64(lines)*e.step - axis.Primary(e.cfg.Spacing) + pad
}

// bind hands the cell to the data source, translating the logical index for
// reversed lists.
func (e *Engine) bind(cell Cell, logical int) {
	e.source.SetCell(cell, e.dataIndex(logical))
}

// dataIndex maps a logical index to a data index and back; the mapping is its
// own inverse.
func (e *Engine) dataIndex(logical int) int {
	if e.cfg.Reverse {
		return e.itemCount - 1 - logical
	}
	return logical
}
