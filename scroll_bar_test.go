package recyclerview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScrollMetrics(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name                             string
		track, content, viewport, offset int
		want                             scrollMetrics
	}{
		{"top", 5, 100, 5, 0, scrollMetrics{trackCells: 5, trackLen: 40, thumbLen: 8}},
		{"bottom", 5, 100, 5, 95, scrollMetrics{trackCells: 5, trackLen: 40, thumbLen: 8, thumbStart: 32}},
		{"offset clamped", 5, 100, 5, 500, scrollMetrics{trackCells: 5, trackLen: 40, thumbLen: 8, thumbStart: 32}},
		{"half", 10, 20, 10, 5, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 40, thumbStart: 20}},
		{"fits", 5, 3, 5, 0, scrollMetrics{trackCells: 5, trackLen: 40, thumbLen: 40}},
		{"no track", 0, 100, 5, 0, scrollMetrics{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, computeScrollMetrics(tc.track, tc.content, tc.viewport, tc.offset))
		})
	}
}

func TestCellFill(t *testing.T) {
	t.Parallel()

	m := scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 40, thumbStart: 20}
	for index, want := range [][2]int{{0, 0}, {0, 0}, {4, 4}, {0, 8}, {0, 8}, {0, 8}, {0, 8}, {0, 4}, {0, 0}, {0, 0}} {
		start, length := cellFill(m, index)
		assert.Equal(t, want, [2]int{start, length}, "cell %d", index)
	}
}

func TestScrollBarDraw(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(1, 10)
	bar := NewScrollBar().SetLengths(20, 10).SetOffset(5)
	bar.SetRect(0, 0, 1, 10)
	bar.Draw(screen)

	var got []string
	for y := range 10 {
		got = append(got, screen.at(0, y))
	}
	assert.Equal(t, []string{" ", " ", "▄", "█", "█", "█", "█", "▀", " ", " "}, got)
}

func TestScrollBarHorizontal(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(10, 1)
	bar := NewScrollBar().SetOrientation(OrientationHorizontal).SetLengths(20, 10).SetOffset(5)
	bar.SetGlyphSet(UnicodeGlyphSet())
	bar.SetRect(0, 0, 10, 1)
	bar.Draw(screen)

	assert.Equal(t, BoxDrawingsLightHorizontal, screen.at(0, 0))
	assert.Equal(t, "▐", screen.at(2, 0))
	assert.Equal(t, "█", screen.at(3, 0))
	assert.Equal(t, "▌", screen.at(7, 0))
}

func TestScrollBarAutoHide(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(1, 5)
	bar := NewScrollBar().SetLengths(3, 5)
	bar.SetRect(0, 0, 1, 5)
	bar.Draw(screen)
	assert.Equal(t, " ", screen.at(0, 0))

	bar.SetAutoHide(false).Draw(screen)
	assert.Equal(t, "█", screen.at(0, 0))
	assert.Equal(t, "█", screen.at(0, 4))
}
