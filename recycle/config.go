package recycle

import (
	"fmt"
	"log/slog"
)

const (
	// DefaultThreshold expands the viewport by this fraction of its extent on
	// both sides before a cell counts as out of view.
	DefaultThreshold = 0.2
	// DefaultMinPoolSize is the minimum number of cells (lines, in a grid).
	DefaultMinPoolSize = 10
	// DefaultMinCoverage is the minimum pool extent as a multiple of the
	// viewport extent.
	DefaultMinCoverage = 1.5
)

// Config parameterizes an Engine.
type Config struct {
	// Axis is the scrolling direction.
	Axis Axis
	// Prototype is the size of the template cell. Only its aspect ratio is
	// used: the cross size is derived from the container and the primary size
	// follows from the ratio.
	Prototype Vec2
	// CellExtent, when positive, fixes the primary size of every cell and
	// Prototype only determines the segment count layout. Terminal rows use
	// it to keep cells one line high whatever the container width.
	CellExtent float64
	Padding    Padding
	Spacing    Vec2

	// Grid lays cells out in lines of Segments cells. Segments is the column
	// count of a vertical grid and the row count of a horizontal one.
	Grid     bool
	Segments int

	// Loop treats the item sequence as cyclic.
	Loop bool
	// Reverse binds logical index i to data index itemCount-1-i.
	Reverse bool

	Threshold   float64
	MinPoolSize int
	MinCoverage float64

	// Logger receives debug records for build and recycle passes. Nil
	// discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a vertical, linear, bounded configuration with a
// square prototype.
func DefaultConfig() Config {
	return Config{
		Axis:        Vertical,
		Prototype:   Vec2{X: 1, Y: 1},
		Segments:    1,
		Threshold:   DefaultThreshold,
		MinPoolSize: DefaultMinPoolSize,
		MinCoverage: DefaultMinCoverage,
	}
}

// segments returns the effective line length: 1 for linear lists and at
// least 2 for grids.
func (c Config) segments() int {
	if !c.Grid {
		return 1
	}
	return max(c.Segments, 2)
}

// Validate clamps recoverable values and rejects the rest.
func (c Config) Validate() (Config, error) {
	if c.Axis != Vertical && c.Axis != Horizontal {
		return c, fmt.Errorf("axis %d: %w", c.Axis, ErrInvalidConfig)
	}
	if c.Axis.Primary(c.Prototype) <= 0 || c.Axis.Cross(c.Prototype) <= 0 {
		return c, fmt.Errorf("prototype %vx%v: %w", c.Prototype.X, c.Prototype.Y, ErrInvalidGeometry)
	}
	if c.CellExtent < 0 {
		return c, fmt.Errorf("cell extent %v: %w", c.CellExtent, ErrInvalidGeometry)
	}
	if c.Threshold < 0 {
		return c, fmt.Errorf("threshold %v: %w", c.Threshold, ErrInvalidConfig)
	}
	if c.MinCoverage < 0 {
		return c, fmt.Errorf("min coverage %v: %w", c.MinCoverage, ErrInvalidConfig)
	}
	if c.Spacing.X < 0 || c.Spacing.Y < 0 {
		return c, fmt.Errorf("spacing %vx%v: %w", c.Spacing.X, c.Spacing.Y, ErrInvalidConfig)
	}
	c.Segments = c.segments()
	c.MinPoolSize = max(c.MinPoolSize, 1)
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c, nil
}
