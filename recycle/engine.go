// Package recycle virtualizes a scrolling list. Instead of one cell per item it
// keeps a small pool of cells that are moved and rebound to new item indices
// as the content scrolls, so cost scales with the visible area and not with
// the item count.
//
// The engine is single-threaded: every call runs to completion inside the
// caller's scroll notification.
package recycle

import (
	"fmt"
	"log/slog"
	"math"
)

// Engine is the recycling engine for one scroll container.
type Engine struct {
	cfg Config

	viewport Viewport
	content  Content
	factory  CellFactory
	source   DataSource
	logger   *slog.Logger

	// cells holds every instance ever created; slots is the active pool.
	cells []Cell
	slots []slot

	tracker tracker
	grid    GridState

	itemCount int
	cellSize  Vec2
	// step is the distance between two consecutive lines.
	step   float64
	bounds Bounds

	built     bool
	recycling bool
}

// New validates cfg and returns an engine. The pool is not built until Init.
func New(cfg Config, viewport Viewport, content Content, factory CellFactory, source DataSource) (*Engine, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		viewport: viewport,
		content:  content,
		factory:  factory,
		source:   source,
		logger:   cfg.Logger,
	}, nil
}

// Init builds the pool from scratch, destroying any cells from a previous
// build, and calls onReady once the cells are bound and laid out.
func (e *Engine) Init(onReady func()) error {
	if err := e.layout(true); err != nil {
		return err
	}
	if onReady != nil {
		onReady()
	}
	return nil
}

// Reset re-measures and rebinds from item 0, reusing the existing cell
// instances.
func (e *Engine) Reset(onReady func()) error {
	if err := e.layout(false); err != nil {
		return err
	}
	if onReady != nil {
		onReady()
	}
	return nil
}

// Refresh rebinds every pooled cell to the item it already holds.
func (e *Engine) Refresh(onReady func()) {
	for _, s := range e.slots {
		e.source.RefreshCell(s.cell)
	}
	if onReady != nil {
		onReady()
	}
}

// ReloadData swaps the data source and rebuilds the pool.
func (e *Engine) ReloadData(source DataSource, onReady func()) error {
	e.source = source
	return e.Init(onReady)
}

func (e *Engine) layout(rebuild bool) error {
	count := e.source.ItemCount()
	if count < 0 {
		return fmt.Errorf("item count %d: %w", count, ErrNegativeItemCount)
	}

	axis := e.cfg.Axis
	viewport := axis.Primary(e.viewport.Extent())
	extent := e.content.Extent()

	var cellSize Vec2
	if count > 0 {
		crossPadding := axis.crossStart(e.cfg.Padding) + axis.crossEnd(e.cfg.Padding)
		size, err := CellSize(axis, e.cfg.Prototype, axis.Cross(extent), e.cfg.Segments, axis.Cross(e.cfg.Spacing), crossPadding)
		if err != nil {
			return err
		}
		if e.cfg.CellExtent > 0 {
			size = axis.WithPrimary(size, e.cfg.CellExtent)
		}
		cellSize = size
	}

	if rebuild {
		e.destroyPool()
	} else {
		e.releasePool()
	}

	e.content.SetAnchor(Vec2{})
	e.bounds = ComputeBounds(0, viewport, e.cfg.Threshold)
	e.itemCount = count
	e.cellSize = cellSize
	e.step = axis.Primary(cellSize) + axis.Primary(e.cfg.Spacing)
	e.grid = newGridState(e.cfg.Segments, count)

	lines := 0
	if count > 0 {
		lines = e.fillPool(viewport)
	}
	e.tracker.reset(len(e.slots), count, e.cfg.Loop)

	// A bounded list spans every item. A looping list spans only the lines
	// the window occupies and is renormalized while recycling.
	if !e.cfg.Loop {
		lines = int(math.Ceil(float64(count) / float64(e.cfg.Segments)))
	}
	e.content.SetExtent(axis.WithPrimary(extent, e.extentFor(lines)))
	e.built = true

	e.logger.Debug("pool laid out",
		slog.Bool("rebuild", rebuild),
		slog.Int("items", count),
		slog.Int("pool", len(e.slots)),
		slog.Int("lines", lines),
		slog.Float64("cell_primary", axis.Primary(cellSize)),
	)
	return nil
}

// OnScroll recycles cells after the content anchor moved by delta and returns
// the correction the engine applied to the anchor. Callers that track their
// own copy of the anchor, such as a drag origin, must add the correction to
// it. Bounded lists always return zero.
func (e *Engine) OnScroll(delta Vec2) Vec2 {
	if e.recycling || len(e.slots) == 0 {
		return Vec2{}
	}
	axis := e.cfg.Axis
	d := axis.Primary(delta)
	if d == 0 {
		return Vec2{}
	}

	e.recycling = true
	defer func() { e.recycling = false }()

	// The viewport may have been resized since the last pass.
	e.bounds = ComputeBounds(0, axis.Primary(e.viewport.Extent()), e.cfg.Threshold)

	var correction float64
	if d < 0 {
		correction = e.recycleForward()
	} else {
		correction = e.recycleBackward()
	}
	return axis.Vec(correction, 0)
}

// recycleForward moves cells that left the trailing side of the bounds to
// the leading side, binding them to the next items.
func (e *Engine) recycleForward() float64 {
	axis := e.cfg.Axis
	anchor := axis.Primary(e.content.Anchor())
	cellPrimary := axis.Primary(e.cellSize)
	t := &e.tracker

	// opened counts lines started at the leading edge, span the net change of
	// the number of lines the window occupies.
	var steps, opened, span int
	for t.canAdvance() && anchor+axis.Primary(e.slots[t.TrailingPool].pos)+cellPrimary <= e.bounds.Min {
		t.advanceItems()

		linePos := axis.Primary(e.slots[t.LeadingPool].pos)
		if e.grid.advanceLeading(e.cfg.Loop && t.LeadingItem == 0) {
			linePos += e.step
			opened++
			span++
		}
		if e.grid.advanceTrailing(e.cfg.Loop && t.TrailingItem == 0) {
			span--
		}

		e.place(t.TrailingPool, linePos, e.grid.LeadingLine, t.LeadingItem)
		t.rotateForward()
		steps++
	}
	if steps == 0 {
		return 0
	}

	// Lines vacated at the trailing edge are removed from the content start.
	vacated := opened - span
	correction := e.renormalize(span, -vacated)
	e.logger.Debug("recycled forward",
		slog.Int("steps", steps),
		slog.Int("lines_opened", opened),
		slog.Int("lines_vacated", vacated),
		slog.Float64("correction", correction),
	)
	return correction
}

// recycleBackward moves cells that left the leading side of the bounds to
// the trailing side, binding them to the previous items.
func (e *Engine) recycleBackward() float64 {
	axis := e.cfg.Axis
	anchor := axis.Primary(e.content.Anchor())
	t := &e.tracker

	var steps, opened, span int
	for t.canRetreat() && anchor+axis.Primary(e.slots[t.LeadingPool].pos) >= e.bounds.Max {
		t.retreatItems()

		linePos := axis.Primary(e.slots[t.TrailingPool].pos)
		if e.grid.retreatTrailing(e.cfg.Loop && t.TrailingItem == e.itemCount-1) {
			linePos -= e.step
			opened++
			span++
		}
		if e.grid.retreatLeading(e.cfg.Loop && t.LeadingItem == e.itemCount-1) {
			span--
		}

		e.place(t.LeadingPool, linePos, e.grid.TrailingLine, t.TrailingItem)
		t.rotateBackward()
		steps++
	}
	if steps == 0 {
		return 0
	}

	// Lines opened before the content start are shifted back into it.
	correction := e.renormalize(span, opened)
	e.logger.Debug("recycled backward",
		slog.Int("steps", steps),
		slog.Int("lines_opened", opened),
		slog.Int("lines_vacated", opened-span),
		slog.Float64("correction", correction),
	)
	return correction
}

// place rebinds the pooled cell at poolIndex to item and moves it to the given
// line position and segment.
func (e *Engine) place(poolIndex int, linePos float64, segment, item int) {
	s := &e.slots[poolIndex]
	s.pos = e.cfg.Axis.Vec(linePos, e.segmentOffset(segment))
	s.index = item
	e.bind(s.cell, item)
	s.cell.SetPosition(s.pos)
}

// renormalize keeps a looping list's content the size of its window. It grows
// the extent by span lines, shifts every cell by lines lines and moves the
// anchor the opposite way so nothing moves on screen. It returns the anchor
// change.
func (e *Engine) renormalize(span, lines int) float64 {
	if !e.cfg.Loop {
		return 0
	}
	axis := e.cfg.Axis
	if span != 0 {
		extent := e.content.Extent()
		e.content.SetExtent(axis.WithPrimary(extent, axis.Primary(extent)+float64(span)*e.step))
	}
	if lines == 0 {
		return 0
	}

	shift := float64(lines) * e.step
	for i := range e.slots {
		s := &e.slots[i]
		s.pos = axis.WithPrimary(s.pos, axis.Primary(s.pos)+shift)
		s.cell.SetPosition(s.pos)
	}
	anchor := e.content.Anchor()
	e.content.SetAnchor(axis.WithPrimary(anchor, axis.Primary(anchor)-shift))
	return -shift
}

// Built reports whether Init or Reset completed.
func (e *Engine) Built() bool {
	return e.built
}

// Config returns the validated configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// ItemCount returns the item count read at the last build or reset.
func (e *Engine) ItemCount() int {
	return e.itemCount
}

// PoolSize returns the number of active cells.
func (e *Engine) PoolSize() int {
	return len(e.slots)
}

// CellSize returns the size of every cell.
func (e *Engine) CellSize() Vec2 {
	return e.cellSize
}

// Bounds returns the recyclable bounds used by the last pass.
func (e *Engine) Bounds() Bounds {
	return e.bounds
}

// Window returns the current window.
func (e *Engine) Window() Window {
	return e.tracker.Window
}

// Grid returns the current grid state.
func (e *Engine) Grid() GridState {
	return e.grid
}

// Slot returns the pooled cell at pool index i.
func (e *Engine) Slot(i int) Slot {
	s := e.slots[i]
	return Slot{Cell: s.cell, Position: s.pos, Index: s.index}
}

// Slots returns a snapshot of the pool in pool order.
func (e *Engine) Slots() []Slot {
	out := make([]Slot, len(e.slots))
	for i, s := range e.slots {
		out[i] = Slot{Cell: s.cell, Position: s.pos, Index: s.index}
	}
	return out
}
