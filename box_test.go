package recyclerview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxInnerRect(t *testing.T) {
	t.Parallel()

	b := NewBox()
	b.SetRect(2, 3, 10, 6)
	x, y, w, h := b.GetInnerRect()
	assert.Equal(t, [4]int{2, 3, 10, 6}, [4]int{x, y, w, h})

	b.SetBorders(BordersAll)
	x, y, w, h = b.GetInnerRect()
	assert.Equal(t, [4]int{3, 4, 8, 4}, [4]int{x, y, w, h})

	b.SetBorderPadding(1, 1, 2, 2)
	x, y, w, h = b.GetInnerRect()
	assert.Equal(t, [4]int{5, 5, 4, 2}, [4]int{x, y, w, h})

	assert.True(t, b.InRect(2, 3))
	assert.False(t, b.InInnerRect(2, 3))
	assert.True(t, b.InInnerRect(5, 5))
}

func TestBoxDrawBorders(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(10, 4)
	b := NewBox().SetBorders(BordersAll).SetTitle("list")
	b.SetRect(0, 0, 10, 4)
	b.Draw(screen)

	set := BorderSetPlain()
	assert.Equal(t, set.TopLeft, screen.at(0, 0))
	assert.Equal(t, set.BottomRight, screen.at(9, 3))
	assert.Equal(t, set.Left, screen.at(0, 1))
	assert.Equal(t, "list", screen.text(3, 0, 4))
}

func TestBoxFooterEllipsis(t *testing.T) {
	t.Parallel()

	screen := newTestScreen(10, 4)
	b := NewBox().SetBorders(BordersAll).SetFooter("a long footer")
	b.SetRect(0, 0, 10, 4)
	b.Draw(screen)

	assert.Equal(t, SemigraphicsHorizontalEllipsis, screen.at(1, 3))
	assert.Equal(t, "footer", screen.text(3, 3, 6))
}

func TestBoxMouseFocus(t *testing.T) {
	t.Parallel()

	b := NewBox()
	b.SetRect(0, 0, 5, 5)
	_, cmd := b.MouseHandler(MouseLeftDown, mouse(1, 1, 0))
	assert.Equal(t, SetFocusCommand{Target: b}, cmd)

	_, cmd = b.MouseHandler(MouseLeftDown, mouse(7, 1, 0))
	assert.Nil(t, cmd)
}
