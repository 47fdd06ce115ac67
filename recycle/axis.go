package recycle

// Vec2 is a point or extent in screen space. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Axis is the scrolling direction of a list. The primary coordinate runs along
// the axis, the cross coordinate runs perpendicular to it.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "unknown"
}

// Primary returns the component of v along the axis.
func (a Axis) Primary(v Vec2) float64 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

// Cross returns the component of v perpendicular to the axis.
func (a Axis) Cross(v Vec2) float64 {
	if a == Horizontal {
		return v.Y
	}
	return v.X
}

// Vec builds a vector from primary and cross components.
func (a Axis) Vec(primary, cross float64) Vec2 {
	if a == Horizontal {
		return Vec2{X: primary, Y: cross}
	}
	return Vec2{X: cross, Y: primary}
}

// WithPrimary returns v with its primary component replaced.
func (a Axis) WithPrimary(v Vec2, primary float64) Vec2 {
	return a.Vec(primary, a.Cross(v))
}

// Padding is the inset between the content edges and the first/last cells.
type Padding struct {
	Top, Bottom, Left, Right float64
}

// start returns the padding before the first line.
func (a Axis) start(p Padding) float64 {
	if a == Horizontal {
		return p.Left
	}
	return p.Top
}

func (a Axis) end(p Padding) float64 {
	if a == Horizontal {
		return p.Right
	}
	return p.Bottom
}

func (a Axis) crossStart(p Padding) float64 {
	if a == Horizontal {
		return p.Top
	}
	return p.Left
}

func (a Axis) crossEnd(p Padding) float64 {
	if a == Horizontal {
		return p.Bottom
	}
	return p.Right
}
