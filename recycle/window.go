package recycle

// Window describes the live range of the pool. Pool indices address the ring
// of cells; item indices are logical positions in the data sequence.
type Window struct {
	LeadingPool, TrailingPool int
	LeadingItem, TrailingItem int
}

// tracker owns the window bookkeeping. It knows nothing about geometry.
type tracker struct {
	Window

	poolSize  int
	itemCount int
	loop      bool
}

func (t *tracker) reset(poolSize, itemCount int, loop bool) {
	t.poolSize = poolSize
	t.itemCount = itemCount
	t.loop = loop
	t.Window = Window{}
	if poolSize == 0 || itemCount == 0 {
		return
	}
	t.LeadingPool = poolSize - 1
	t.LeadingItem = (poolSize - 1) % itemCount
}

// canAdvance reports whether another item exists past the leading edge.
func (t *tracker) canAdvance() bool {
	return t.loop || t.LeadingItem+1 < t.itemCount
}

// canRetreat reports whether another item exists before the trailing edge.
func (t *tracker) canRetreat() bool {
	return t.loop || t.TrailingItem > 0
}

func (t *tracker) advanceItems() {
	t.LeadingItem = t.wrapItem(t.LeadingItem + 1)
	t.TrailingItem = t.wrapItem(t.TrailingItem + 1)
}

func (t *tracker) retreatItems() {
	t.LeadingItem = t.wrapItem(t.LeadingItem - 1)
	t.TrailingItem = t.wrapItem(t.TrailingItem - 1)
}

func (t *tracker) wrapItem(i int) int {
	if !t.loop {
		return i
	}
	if i >= t.itemCount {
		return 0
	}
	if i < 0 {
		return t.itemCount - 1
	}
	return i
}

// rotateForward makes the trailing cell the new leading cell.
func (t *tracker) rotateForward() {
	t.LeadingPool = t.TrailingPool
	t.TrailingPool++
	if t.TrailingPool >= t.poolSize {
		t.TrailingPool = 0
	}
}

// rotateBackward makes the leading cell the new trailing cell.
func (t *tracker) rotateBackward() {
	t.TrailingPool = t.LeadingPool
	t.LeadingPool--
	if t.LeadingPool < 0 {
		t.LeadingPool = t.poolSize - 1
	}
}

// GridState tracks the position of the window's edge cells within their
// lines. A line is a row of a vertical grid or a column of a horizontal one.
type GridState struct {
	Segments int

	LeadingLine, TrailingLine int

	// FirstLine and LastLine are the slots held by items 0 and itemCount-1.
	// The line holding the last item may be partially filled, so wrapping
	// around it in loop mode starts a new line early.
	FirstLine, LastLine int
}

func newGridState(segments, itemCount int) GridState {
	g := GridState{Segments: segments}
	if itemCount > 0 {
		g.LastLine = (itemCount - 1) % segments
	}
	return g
}

// advanceLeading moves the leading slot one step forward and reports whether
// the step opened a new line. wrapped means the leading item wrapped to 0.
func (g *GridState) advanceLeading(wrapped bool) bool {
	if wrapped {
		g.LeadingLine = g.FirstLine
		return true
	}
	g.LeadingLine++
	if g.LeadingLine >= g.Segments {
		g.LeadingLine = 0
		return true
	}
	return false
}

// advanceTrailing moves the trailing slot one step forward and reports
// whether a line was vacated.
func (g *GridState) advanceTrailing(wrapped bool) bool {
	if wrapped {
		g.TrailingLine = g.FirstLine
		return true
	}
	g.TrailingLine++
	if g.TrailingLine >= g.Segments {
		g.TrailingLine = 0
		return true
	}
	return false
}

// retreatTrailing moves the trailing slot one step back and reports whether
// the step opened a new line. wrapped means the trailing item wrapped to
// itemCount-1.
func (g *GridState) retreatTrailing(wrapped bool) bool {
	if wrapped {
		g.TrailingLine = g.LastLine
		return true
	}
	g.TrailingLine--
	if g.TrailingLine < 0 {
		g.TrailingLine = g.Segments - 1
		return true
	}
	return false
}

// retreatLeading moves the leading slot one step back and reports whether a
// line was vacated.
func (g *GridState) retreatLeading(wrapped bool) bool {
	if wrapped {
		g.LeadingLine = g.LastLine
		return true
	}
	g.LeadingLine--
	if g.LeadingLine < 0 {
		g.LeadingLine = g.Segments - 1
		return true
	}
	return false
}
