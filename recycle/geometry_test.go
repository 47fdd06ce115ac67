package recycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		axis        Axis
		prototype   Vec2
		crossExtent float64
		segments    int
		spacing     float64
		padding     float64
		want        Vec2
	}{
		{"vertical linear", Vertical, Vec2{X: 20, Y: 2}, 40, 1, 0, 0, Vec2{X: 40, Y: 4}},
		{"vertical grid with spacing", Vertical, Vec2{X: 10, Y: 5}, 32, 3, 2, 4, Vec2{X: 8, Y: 4}},
		{"horizontal linear", Horizontal, Vec2{X: 3, Y: 6}, 12, 1, 0, 0, Vec2{X: 6, Y: 12}},
		{"horizontal grid", Horizontal, Vec2{X: 4, Y: 2}, 9, 2, 1, 0, Vec2{X: 8, Y: 4}},
		{"zero segments act as one", Vertical, Vec2{X: 1, Y: 1}, 5, 0, 0, 0, Vec2{X: 5, Y: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CellSize(tt.axis, tt.prototype, tt.crossExtent, tt.segments, tt.spacing, tt.padding)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestCellSizeRejectsDegenerateGeometry(t *testing.T) {
	t.Parallel()

	_, err := CellSize(Vertical, Vec2{X: 0, Y: 1}, 10, 1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = CellSize(Vertical, Vec2{X: 1, Y: 1}, 4, 3, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = CellSize(Horizontal, Vec2{X: 1, Y: 1}, 0, 1, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestComputeBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Bounds{Min: -2, Max: 12}, ComputeBounds(0, 10, 0.2))
	assert.Equal(t, Bounds{Min: 5, Max: 15}, ComputeBounds(5, 15, 0))

	b := ComputeBounds(0, 10, 0.5)
	assert.True(t, b.Contains(-5))
	assert.True(t, b.Contains(15))
	assert.False(t, b.Contains(15.5))
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("grid segments clamp to two", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.Grid = true
		cfg.Segments = 1
		got, err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 2, got.Segments)
	})

	t.Run("linear lists use one segment", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.Segments = 4
		got, err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 1, got.Segments)
		assert.NotNil(t, got.Logger)
	})

	t.Run("min pool size is at least one", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.MinPoolSize = -3
		got, err := cfg.Validate()
		require.NoError(t, err)
		assert.Equal(t, 1, got.MinPoolSize)
	})

	t.Run("rejects", func(t *testing.T) {
		t.Parallel()
		for name, mutate := range map[string]func(*Config){
			"prototype":    func(c *Config) { c.Prototype = Vec2{X: 1, Y: -1} },
			"threshold":    func(c *Config) { c.Threshold = -0.1 },
			"min coverage": func(c *Config) { c.MinCoverage = -1 },
			"spacing":      func(c *Config) { c.Spacing = Vec2{X: -1} },
			"axis":         func(c *Config) { c.Axis = Axis(7) },
		} {
			cfg := DefaultConfig()
			mutate(&cfg)
			_, err := cfg.Validate()
			assert.Error(t, err, name)
		}
	})
}

func TestAxis(t *testing.T) {
	t.Parallel()

	v := Vec2{X: 3, Y: 7}
	assert.Equal(t, 7.0, Vertical.Primary(v))
	assert.Equal(t, 3.0, Vertical.Cross(v))
	assert.Equal(t, 3.0, Horizontal.Primary(v))
	assert.Equal(t, 7.0, Horizontal.Cross(v))
	assert.Equal(t, Vec2{X: 2, Y: 1}, Vertical.Vec(1, 2))
	assert.Equal(t, Vec2{X: 1, Y: 2}, Horizontal.Vec(1, 2))
	assert.Equal(t, Vec2{X: 3, Y: 9}, Vertical.WithPrimary(v, 9))
	assert.Equal(t, "horizontal", Horizontal.String())
}
