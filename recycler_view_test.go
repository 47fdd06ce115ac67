package recyclerview

import (
	"fmt"
	"testing"

	"github.com/ayn2op/recyclerview/recycle"
	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) StringSource {
	s := make(StringSource, n)
	for i := range s {
		s[i] = fmt.Sprintf("item %d", i)
	}
	return s
}

// drawView draws v into a fresh width by height screen covering it.
func drawView(v *RecyclerView, width, height int) *testScreen {
	screen := newTestScreen(width, height)
	v.SetRect(0, 0, width, height)
	v.Draw(screen)
	return screen
}

func key(k tcell.Key, str string) *tcell.EventKey {
	return tcell.NewEventKey(k, str, tcell.ModNone)
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestRecyclerViewDraw(t *testing.T) {
	v := NewRecyclerView(items(100))
	screen := drawView(v, 20, 5)

	require.NoError(t, v.Err())
	for y := range 5 {
		assert.Equal(t, fmt.Sprintf("item %d", y), screen.text(0, y, 19))
	}
	assert.Equal(t, recycle.Vec2{X: 19, Y: 100}, v.ContentExtent())
	assert.Len(t, v.Cells(), recycle.DefaultMinPoolSize)
}

func TestRecyclerViewKeys(t *testing.T) {
	tests := []struct {
		name  string
		keys  []*tcell.EventKey
		first string
	}{
		{name: "down", keys: []*tcell.EventKey{key(tcell.KeyDown, "")}, first: "item 1"},
		{name: "vi down", keys: []*tcell.EventKey{key(tcell.KeyRune, "j"), key(tcell.KeyRune, "j")}, first: "item 2"},
		{name: "up at start", keys: []*tcell.EventKey{key(tcell.KeyUp, "")}, first: "item 0"},
		{name: "page down", keys: []*tcell.EventKey{key(tcell.KeyPgDn, "")}, first: "item 5"},
		{name: "end", keys: []*tcell.EventKey{key(tcell.KeyEnd, "")}, first: "item 95"},
		{name: "end then home", keys: []*tcell.EventKey{key(tcell.KeyEnd, ""), key(tcell.KeyHome, "")}, first: "item 0"},
		{name: "past the end", keys: []*tcell.EventKey{key(tcell.KeyEnd, ""), key(tcell.KeyDown, "")}, first: "item 95"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewRecyclerView(items(100))
			drawView(v, 20, 5)
			for _, k := range tt.keys {
				assert.Equal(t, RedrawCommand{}, v.InputHandler(k))
			}
			screen := drawView(v, 20, 5)
			assert.Equal(t, tt.first, screen.text(0, 0, 19))
		})
	}
}

func TestRecyclerViewUnboundKey(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)
	assert.Nil(t, v.InputHandler(key(tcell.KeyRune, "x")))
}

func TestRecyclerViewEndShowsLastItem(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)
	v.ScrollToEnd()
	screen := drawView(v, 20, 5)

	assert.Equal(t, "item 99", screen.text(0, 4, 19))
	assert.Equal(t, -95.0, v.Anchor().Y)
}

func TestRecyclerViewQueuedRequests(t *testing.T) {
	v := NewRecyclerView(items(100))
	v.ScrollToItem(50)
	v.ScrollBy(2)

	screen := drawView(v, 20, 5)
	assert.Equal(t, "item 52", screen.text(0, 0, 19))
	assert.Equal(t, 0, v.requests.Length())
}

func TestRecyclerViewScrollToItemClamps(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)
	v.ScrollToItem(1000)
	screen := drawView(v, 20, 5)
	assert.Equal(t, "item 95", screen.text(0, 0, 19))
}

func TestRecyclerViewLoop(t *testing.T) {
	v := NewRecyclerView(items(3)).SetLoop(true)
	screen := drawView(v, 20, 5)
	for y, want := range []string{"item 0", "item 1", "item 2", "item 0", "item 1"} {
		assert.Equal(t, want, screen.row(y))
	}

	v.InputHandler(key(tcell.KeyUp, ""))
	screen = drawView(v, 20, 5)
	assert.Equal(t, "item 2", screen.row(0))
	assert.Equal(t, "item 0", screen.row(1))

	// Looping views have no absolute position to scroll to.
	v.ScrollToItem(1)
	screen = drawView(v, 20, 5)
	assert.Equal(t, "item 2", screen.row(0))
}

func TestRecyclerViewLoopScrollsForever(t *testing.T) {
	v := NewRecyclerView(items(3)).SetLoop(true)
	drawView(v, 20, 5)
	for range 100 {
		v.InputHandler(key(tcell.KeyDown, ""))
	}
	screen := drawView(v, 20, 5)
	// 100 rows down is 33 full cycles and one item.
	assert.Equal(t, "item 1", screen.row(0))
	assert.Equal(t, "item 2", screen.row(1))
}

func TestRecyclerViewGrid(t *testing.T) {
	v := NewRecyclerView(items(10)).SetGrid(2).SetScrollBarVisible(false)
	screen := drawView(v, 20, 5)

	assert.Equal(t, "item 0    item 1", screen.row(0))
	assert.Equal(t, "item 8    item 9", screen.row(4))
}

func TestRecyclerViewGridClampsSegments(t *testing.T) {
	v := NewRecyclerView(items(10)).SetGrid(1).SetScrollBarVisible(false)
	assert.True(t, v.Config().Grid)
	assert.Equal(t, 2, v.Config().Segments)
	screen := drawView(v, 20, 5)
	assert.Equal(t, "item 0    item 1", screen.row(0))

	v.SetLinear()
	screen = drawView(v, 20, 5)
	assert.Equal(t, "item 0", screen.row(0))
	assert.Equal(t, "item 1", screen.row(1))
}

func TestRecyclerViewHorizontal(t *testing.T) {
	v := NewRecyclerView(items(10)).SetAxis(recycle.Horizontal).SetItemSize(8)
	screen := drawView(v, 20, 3)
	assert.Equal(t, "item 0  item 1  item", screen.row(0))

	v.InputHandler(key(tcell.KeyRight, ""))
	screen = drawView(v, 20, 3)
	assert.Equal(t, "item 1  item 2  item", screen.row(0))

	// The bar runs along the bottom row.
	assert.Equal(t, " ", screen.at(0, 2))
	assert.Equal(t, "█", screen.at(2, 2))
}

func TestRecyclerViewReverse(t *testing.T) {
	v := NewRecyclerView(items(100)).SetReverse(true)
	screen := drawView(v, 20, 5)
	assert.Equal(t, "item 99", screen.text(0, 0, 19))
	assert.Equal(t, "item 98", screen.text(0, 1, 19))
}

func TestRecyclerViewDrag(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)

	capture, cmd := v.MouseHandler(MouseLeftDown, mouse(5, 3, tcell.ButtonPrimary))
	assert.Equal(t, v, capture)
	assert.Equal(t, SetFocusCommand{Target: v}, cmd)

	capture, _ = v.MouseHandler(MouseMove, mouse(5, 1, tcell.ButtonPrimary))
	assert.Equal(t, v, capture)
	screen := drawView(v, 20, 5)
	assert.Equal(t, "item 2", screen.text(0, 0, 19))

	capture, _ = v.MouseHandler(MouseLeftUp, mouse(5, 1, 0))
	assert.Nil(t, capture)

	capture, cmd = v.MouseHandler(MouseMove, mouse(5, 4, 0))
	assert.Nil(t, capture)
	assert.Nil(t, cmd)
}

func TestRecyclerViewLoopDrag(t *testing.T) {
	v := NewRecyclerView(items(3)).SetLoop(true)
	drawView(v, 20, 5)

	v.MouseHandler(MouseLeftDown, mouse(5, 4, tcell.ButtonPrimary))
	for y := 3; y >= 0; y-- {
		v.MouseHandler(MouseMove, mouse(5, y, tcell.ButtonPrimary))
	}
	v.MouseHandler(MouseLeftDown, mouse(5, 4, tcell.ButtonPrimary))
	for y := 3; y >= 0; y-- {
		v.MouseHandler(MouseMove, mouse(5, y, tcell.ButtonPrimary))
	}
	screen := drawView(v, 20, 5)
	// Two drags of four rows each.
	assert.Equal(t, "item 2", screen.row(0))
	assert.Equal(t, "item 0", screen.row(1))
}

func TestRecyclerViewSelect(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)
	v.ScrollBy(10)
	drawView(v, 20, 5)

	selected := -1
	v.SetSelectedFunc(func(index int) { selected = index })
	_, cmd := v.MouseHandler(MouseLeftClick, mouse(3, 2, 0))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.Equal(t, 12, selected)

	assert.Equal(t, -1, v.IndexAt(19, 2), "scroll bar column")
	assert.Equal(t, -1, v.IndexAt(3, 7))
}

func TestRecyclerViewWheel(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)

	_, cmd := v.MouseHandler(MouseScrollDown, mouse(1, 1, 0))
	assert.Equal(t, RedrawCommand{}, cmd)
	screen := drawView(v, 20, 5)
	assert.Equal(t, "item 3", screen.text(0, 0, 19))

	v.MouseHandler(MouseScrollUp, mouse(1, 1, 0))
	screen = drawView(v, 20, 5)
	assert.Equal(t, "item 0", screen.text(0, 0, 19))

	_, cmd = v.MouseHandler(MouseScrollDown, mouse(30, 1, 0))
	assert.Nil(t, cmd)
}

func TestRecyclerViewInvalidConfig(t *testing.T) {
	v := NewRecyclerView(items(10)).SetPrototype(0, 1)
	require.ErrorIs(t, v.Err(), recycle.ErrInvalidGeometry)

	screen := drawView(v, 40, 3)
	assert.Contains(t, screen.row(0), "prototype")

	v.SetPrototype(1, 1)
	require.NoError(t, v.Err())
	screen = drawView(v, 40, 3)
	assert.Equal(t, "item 0", screen.text(0, 0, 39))
}

func TestRecyclerViewSetSource(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)
	v.ScrollToItem(40)

	v.SetSource(StringSource{"a", "b"})
	screen := drawView(v, 20, 5)
	assert.Equal(t, "a", screen.text(0, 0, 19))
	assert.Equal(t, "b", screen.text(0, 1, 19))
	assert.Empty(t, screen.text(0, 2, 19))
	assert.Equal(t, 2, v.ItemCount())
}

func TestRecyclerViewRecoversFromLayoutError(t *testing.T) {
	for _, tc := range []struct {
		name    string
		recover func(v *RecyclerView)
	}{
		{"set source", func(v *RecyclerView) { v.SetSource(StringSource{"a", "b"}) }},
		{"reset", func(v *RecyclerView) {
			v.source = StringSource{"a", "b"}
			v.ResetList()
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v := NewRecyclerView(brokenSource{})
			screen := drawView(v, 20, 5)
			require.ErrorIs(t, v.Err(), recycle.ErrNegativeItemCount)
			assert.Contains(t, screen.row(0), "item count")

			tc.recover(v)
			require.NoError(t, v.Err())
			screen = drawView(v, 20, 5)
			require.NoError(t, v.Err())
			assert.Equal(t, "a", screen.text(0, 0, 19))
			assert.Equal(t, "b", screen.text(0, 1, 19))
		})
	}
}

// brokenSource reports a negative length.
type brokenSource struct{}

func (brokenSource) Len() int        { return -1 }
func (brokenSource) Bind(*Cell, int) {}

func TestRecyclerViewEmpty(t *testing.T) {
	v := NewRecyclerView(nil)
	screen := drawView(v, 20, 5)
	require.NoError(t, v.Err())
	assert.Empty(t, screen.row(0))
	assert.Nil(t, v.InputHandler(key(tcell.KeyRune, "x")))
	v.InputHandler(key(tcell.KeyDown, ""))
	assert.Equal(t, recycle.Vec2{}, v.Anchor())
}

func TestRecyclerViewResizeKeepsPosition(t *testing.T) {
	v := NewRecyclerView(items(100))
	drawView(v, 20, 5)
	v.ScrollToItem(10)

	screen := drawView(v, 30, 8)
	assert.Equal(t, "item 10", screen.text(0, 0, 29))
	assert.Equal(t, "item 17", screen.text(0, 7, 29))
}

func TestRecyclerViewRefresh(t *testing.T) {
	source := items(10)
	v := NewRecyclerView(source)
	drawView(v, 20, 5)

	source[0] = "changed"
	screen := drawView(v, 20, 5)
	assert.Equal(t, "item 0", screen.text(0, 0, 19))

	v.Refresh()
	screen = drawView(v, 20, 5)
	assert.Equal(t, "changed", screen.text(0, 0, 19))
}

func TestRecyclerViewChangedFunc(t *testing.T) {
	var windows []recycle.Window
	v := NewRecyclerView(items(100)).SetChangedFunc(func(w recycle.Window) {
		windows = append(windows, w)
	})
	drawView(v, 20, 5)
	require.Len(t, windows, 1)

	v.ScrollBy(1)
	require.Len(t, windows, 2)

	// Scrolling by nothing is not a change.
	v.ScrollBy(0)
	assert.Len(t, windows, 2)
}

func TestRecyclerViewScrollBar(t *testing.T) {
	v := NewRecyclerView(items(100))
	screen := drawView(v, 20, 5)
	assert.Equal(t, "█", screen.at(19, 0))
	assert.Equal(t, " ", screen.at(19, 4))

	v.ScrollToEnd()
	screen = drawView(v, 20, 5)
	assert.Equal(t, " ", screen.at(19, 0))
	assert.Equal(t, "█", screen.at(19, 4))
}

func TestRecyclerViewScrollBarHidden(t *testing.T) {
	v := NewRecyclerView(items(3))
	screen := drawView(v, 20, 5)
	assert.Equal(t, " ", screen.at(19, 0))

	v = NewRecyclerView(items(100)).SetScrollBarVisible(false)
	screen = drawView(v, 20, 5)
	assert.Equal(t, " ", screen.at(19, 0))
}

func TestRecyclerViewCellDrawFunc(t *testing.T) {
	v := NewRecyclerView(sourceFunc(func(cell *Cell, index int) {
		cell.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) {
			screen.Put(x+width-1, y, "*", tcell.StyleDefault)
		})
	}))
	screen := drawView(v, 20, 5)
	assert.Equal(t, "*", screen.at(18, 0))
}

// sourceFunc serves ten items through a bind function.
type sourceFunc func(cell *Cell, index int)

func (f sourceFunc) Len() int                   { return 10 }
func (f sourceFunc) Bind(cell *Cell, index int) { f(cell, index) }
