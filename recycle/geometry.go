package recycle

import "fmt"

// Bounds is the recyclable range along the primary axis in viewport
// coordinates. A cell that lies completely outside it may be recycled.
type Bounds struct {
	Min, Max float64
}

// Contains reports whether p lies within the bounds.
func (b Bounds) Contains(p float64) bool {
	return p >= b.Min && p <= b.Max
}

// CellSize derives the cell size from the container's cross extent. The cross
// extent minus padding and inter-line spacing is split evenly between the
// segments, and the primary size keeps the prototype's aspect ratio.
func CellSize(axis Axis, prototype Vec2, crossExtent float64, segments int, crossSpacing, crossPadding float64) (Vec2, error) {
	segments = max(segments, 1)
	protoPrimary, protoCross := axis.Primary(prototype), axis.Cross(prototype)
	if protoPrimary <= 0 || protoCross <= 0 {
		return Vec2{}, fmt.Errorf("prototype %vx%v: %w", prototype.X, prototype.Y, ErrInvalidGeometry)
	}

	cross := (crossExtent - crossPadding - float64(segments-1)*crossSpacing) / float64(segments)
	if cross <= 0 {
		return Vec2{}, fmt.Errorf("cross extent %v too small for %d segments: %w", crossExtent, segments, ErrInvalidGeometry)
	}
	return axis.Vec(protoPrimary*cross/protoCross, cross), nil
}

// ComputeBounds expands the viewport span [start, end] outward by threshold
// times its length.
func ComputeBounds(start, end, threshold float64) Bounds {
	margin := threshold * (end - start)
	return Bounds{Min: start - margin, Max: end + margin}
}
