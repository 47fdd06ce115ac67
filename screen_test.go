package recyclerview

import (
	"strings"

	"github.com/gdamore/tcell/v3"
)

type testCell struct {
	str   string
	style tcell.Style
}

// testScreen records what is put on it. Calls it does not implement panic on
// the nil embedded screen.
type testScreen struct {
	tcell.Screen

	width, height int
	cells         map[[2]int]testCell

	title     string
	shown     int
	cleared   int
	finalized bool
}

func newTestScreen(width, height int) *testScreen {
	return &testScreen{width: width, height: height, cells: make(map[[2]int]testCell)}
}

func (s *testScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *testScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height || str == "" {
		return str, 0
	}
	s.cells[[2]int{x, y}] = testCell{str: str, style: style}
	return "", 1
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	c, ok := s.cells[[2]int{x, y}]
	if !ok {
		return " ", tcell.StyleDefault, 1
	}
	return c.str, c.style, 1
}

func (s *testScreen) Clear() {
	s.cleared++
	clear(s.cells)
}

func (s *testScreen) Show()               { s.shown++ }
func (s *testScreen) Fini()               { s.finalized = true }
func (s *testScreen) HideCursor()         {}
func (s *testScreen) ShowCursor(x, y int) {}
func (s *testScreen) SetTitle(title string) {
	s.title = title
}

// text returns width cells of row y starting at x, without trailing spaces.
func (s *testScreen) text(x, y, width int) string {
	var b strings.Builder
	for col := x; col < x+width; col++ {
		str, _, _ := s.Get(col, y)
		b.WriteString(str)
	}
	return strings.TrimRight(b.String(), " ")
}

// row returns the whole row y, without trailing spaces.
func (s *testScreen) row(y int) string {
	return s.text(0, y, s.width)
}

// at returns the string at one cell.
func (s *testScreen) at(x, y int) string {
	str, _, _ := s.Get(x, y)
	return str
}
