// Package help draws a one line summary of the active key bindings.
package help

import (
	"github.com/ayn2op/recyclerview"
	"github.com/ayn2op/recyclerview/keybind"
	"github.com/gdamore/tcell/v3"
)

// KeyMap supplies the bindings to summarize.
type KeyMap interface {
	ShortHelp() []keybind.Keybind
}

// Styles holds the styles of the parts of a help line.
type Styles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
	Ellipsis  tcell.Style
}

// DefaultStyles dims keys and separators.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{Key: dim, Desc: tcell.StyleDefault, Separator: dim, Ellipsis: dim}
}

// Help is a primitive showing "key desc" pairs separated by bullets. Pairs
// that do not fit are replaced by an ellipsis.
type Help struct {
	*recyclerview.Box

	styles    Styles
	keyMap    KeyMap
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       recyclerview.NewBox(),
		styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  recyclerview.SemigraphicsHorizontalEllipsis,
	}
}

func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.styles = styles
	return h
}

// SetSeparator sets the text between pairs. Empty means one space.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Draw draws the line on the first row of the inner rect.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	if h.keyMap == nil || height <= 0 {
		return
	}

	for _, s := range h.layout(h.keyMap.ShortHelp(), width) {
		_, printed := recyclerview.PrintWithStyle(screen, s.text, x, y, width, recyclerview.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

// Text returns the line for width cells without styles.
func (h *Help) Text(width int) string {
	if h.keyMap == nil {
		return ""
	}
	var text string
	for _, s := range h.layout(h.keyMap.ShortHelp(), width) {
		text += s.text
	}
	return text
}

type segment struct {
	text  string
	style tcell.Style
}

// layout lays out as many pairs as fit in width. The ellipsis is added only
// when it fits whole.
func (h *Help) layout(bindings []keybind.Keybind, width int) []segment {
	separator := segment{text: h.separator, style: h.styles.Separator}
	if separator.text == "" {
		separator.text = " "
	}

	var line []segment
	used := 0
	for _, kb := range bindings {
		pair := h.pair(kb)
		if len(pair) == 0 {
			continue
		}
		if len(line) > 0 {
			pair = append([]segment{separator}, pair...)
		}

		w := segmentsWidth(pair)
		if used+w > width {
			tail := []segment{{text: " ", style: h.styles.Ellipsis}, {text: h.ellipsis, style: h.styles.Ellipsis}}
			if len(line) > 0 && h.ellipsis != "" && used+segmentsWidth(tail) <= width {
				line = append(line, tail...)
			}
			break
		}
		line = append(line, pair...)
		used += w
	}
	return line
}

func (h *Help) pair(kb keybind.Keybind) []segment {
	if !kb.Enabled() {
		return nil
	}
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: h.styles.Desc}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: h.styles.Key}}
	}
	return []segment{
		{text: help.Key, style: h.styles.Key},
		{text: " ", style: h.styles.Desc},
		{text: help.Desc, style: h.styles.Desc},
	}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += recyclerview.StringWidth(s.text)
	}
	return width
}

var _ recyclerview.Primitive = &Help{}
