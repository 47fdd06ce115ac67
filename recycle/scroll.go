package recycle

// ScrollToItem returns the content anchor that puts the line holding the item
// at data index index flush with the leading viewport edge. The index is
// clamped to the item range and the anchor to the scrollable range. It returns
// zero when the content fits in the viewport and, always, for looping lists,
// which have no absolute position.
func (e *Engine) ScrollToItem(index int) Vec2 {
	if e.cfg.Loop || e.itemCount == 0 {
		return Vec2{}
	}
	axis := e.cfg.Axis
	viewport := axis.Primary(e.viewport.Extent())
	extent := axis.Primary(e.content.Extent())
	if extent <= viewport {
		return Vec2{}
	}

	index = min(max(index, 0), e.itemCount-1)
	line := e.dataIndex(index) / e.cfg.Segments
	offset := min(max(e.lineOffset(line), 0), extent-viewport)
	return axis.Vec(-offset, 0)
}
