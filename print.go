package recyclerview

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Alignment is the horizontal placement of text within its box.
type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text on row y within [x, x+maxWidth) in the given color,
// keeping the background already on screen. It returns the number of bytes
// and the width printed.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintWithStyle works like Print with a whole style. A style without a
// background keeps the one already on screen.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, style.GetBackground() == tcell.ColorDefault)
	return end - start, width
}

// printWithStyle prints text on row y within [x, x+maxWidth), skipping the
// first skipWidth cells of text. Text that does not fit is cut according to
// alignment. With keepBackground the style's background is replaced by the
// one already on screen. It returns the byte range of text that was printed
// and its width.
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, keepBackground bool) (start, end, printedWidth int) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, 0, 0
	}
	if keepBackground {
		style = style.Background(tcell.ColorDefault)
	}

	// Drop skipped clusters and measure what remains.
	state := newStepState()
	cur := state.clone()
	var textWidth int
	for rest := text; rest != ""; {
		_, rest, cur = step(rest, cur)
		if skipWidth > 0 {
			skipWidth -= cur.Width()
			start += cur.GrossLength()
			text = rest
			state = cur.clone()
			continue
		}
		textWidth += cur.Width()
	}

	switch alignment {
	case AlignmentRight:
		for text != "" && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		for cut := (textWidth - maxWidth) / 2; text != "" && cut > 0; {
			_, text, state = step(text, state)
			cut -= state.Width()
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+(maxWidth-textWidth)/2, textWidth
		}
	}

	end = start
	limit := min(x+maxWidth, screenWidth)
	for text != "" && x < limit {
		var cluster string
		cluster, text, state = step(text, state)
		width := state.Width()
		if x+width > limit {
			break
		}
		if width > 0 {
			cellStyle := style
			if keepBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = cellStyle.Background(existing.GetBackground())
			}
			screen.Put(x, y, cluster, cellStyle)
			// Wide clusters own the cells they cover.
			for offset := 1; offset < width; offset++ {
				screen.Put(x+offset, y, " ", cellStyle)
			}
		}
		x += width
		end += state.GrossLength()
		printedWidth += width
	}
	return start, end, printedWidth
}

// stepState is the grapheme parser state carried between clusters.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

func newStepState() *stepState {
	return &stepState{unisegState: -1}
}

func (s *stepState) clone() *stepState {
	c := *s
	return &c
}

// LineBreak reports whether a line may or must break after the cluster.
func (s *stepState) LineBreak() (lineBreak, optional bool) {
	switch s.boundaries & uniseg.MaskLine {
	case uniseg.LineCanBreak:
		return true, true
	case uniseg.LineMustBreak:
		return true, false
	}
	return false, false
}

// Width is the cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength is the cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step splits the first grapheme cluster off str.
func step(str string, state *stepState) (cluster, rest string, next *stepState) {
	if state == nil {
		state = newStepState()
	}
	if str == "" {
		return "", "", state
	}
	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	state.grossLength = len(cluster)
	// The end of the text is not a line break opportunity on its own.
	if rest == "" && !uniseg.HasTrailingLineBreakInString(cluster) {
		state.boundaries &^= uniseg.MaskLine
	}
	return cluster, rest, state
}

// StringWidth returns the number of cells text takes on screen.
func StringWidth(text string) int {
	var (
		state *stepState
		width int
	)
	for text != "" {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return width
}

// WordWrap breaks text into lines no wider than width, preferring line break
// opportunities and breaking inside words only when a word does not fit.
func WordWrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var (
		lines []string
		state *stepState

		lineWidth, lineLength int
		// The last break opportunity in the current line.
		breakAt, breakWidth int
	)
	for rest := text; rest != ""; {
		var cluster string
		cluster, rest, state = step(rest, state)
		clusterWidth := state.Width()

		if lineWidth+clusterWidth > width {
			if breakWidth == 0 {
				lines = append(lines, text[:lineLength])
				text = text[lineLength:]
				lineWidth, lineLength = 0, 0
			} else {
				lines = append(lines, strings.TrimRight(text[:breakAt], " "))
				text = text[breakAt:]
				lineWidth -= breakWidth
				lineLength -= breakAt
			}
			breakAt, breakWidth = 0, 0
			// Spaces at a wrap are dropped.
			if lineLength == 0 && cluster == " " {
				text = text[len(cluster):]
				continue
			}
		}

		lineWidth += clusterWidth
		lineLength += state.GrossLength()

		if lineBreak, optional := state.LineBreak(); lineBreak {
			if optional {
				breakAt, breakWidth = lineLength, lineWidth
				continue
			}
			lines = append(lines, strings.TrimRight(text[:lineLength], "\r\n"))
			text = text[lineLength:]
			lineWidth, lineLength, breakAt, breakWidth = 0, 0, 0, 0
		}
	}
	return append(lines, text)
}
