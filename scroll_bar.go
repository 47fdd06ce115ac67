package recyclerview

import "github.com/gdamore/tcell/v3"

// Orientation is the direction a scroll bar runs in.
type Orientation uint8

const (
	OrientationVertical Orientation = iota
	OrientationHorizontal
)

// subcell is the number of thumb steps per screen cell.
const subcell = 8

// GlyphSet holds the track and thumb glyphs for both orientations. The
// fractional thumb glyphs are indexed by the number of eighths they fill.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	// Thumb glyphs anchored at the bottom and top of a cell.
	ThumbLower [subcell]string
	ThumbUpper [subcell]string
	// Thumb glyphs anchored at the left and right of a cell.
	ThumbLeft  [subcell]string
	ThumbRight [subcell]string
}

// LegacyComputingGlyphSet uses the legacy computing block symbols for full
// 1/8 cell precision.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   BoxDrawingsLightVertical,
		TrackHorizontal: BoxDrawingsLightHorizontal,

		ThumbLower: [subcell]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbUpper: [subcell]string{"▔", "\U0001fb82", "\U0001fb83", "▀", "\U0001fb84", "\U0001fb85", "\U0001fb86", "█"},
		ThumbLeft:  [subcell]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbRight: [subcell]string{"▕", "\U0001fb87", "\U0001fb88", "▐", "\U0001fb89", "\U0001fb8a", "\U0001fb8b", "█"},
	}
}

// UnicodeGlyphSet approximates the legacy computing symbols with blocks every
// terminal font has.
func UnicodeGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.ThumbUpper = [subcell]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"}
	g.ThumbRight = [subcell]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"}
	return g
}

// MinimalGlyphSet is LegacyComputingGlyphSet with a blank track.
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// ScrollBar shows which part of a longer content is visible.
type ScrollBar struct {
	*Box

	orientation Orientation
	autoHide    bool

	contentLen  int
	viewportLen int
	offset      int

	glyphSet   GlyphSet
	trackStyle tcell.Style
	thumbStyle tcell.Style
}

// NewScrollBar returns a vertical scroll bar that hides itself while the
// content fits.
func NewScrollBar() *ScrollBar {
	return &ScrollBar{
		Box:        NewBox(),
		autoHide:   true,
		glyphSet:   MinimalGlyphSet(),
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor),
	}
}

// SetOrientation sets the direction of the bar.
func (s *ScrollBar) SetOrientation(orientation Orientation) *ScrollBar {
	s.orientation = orientation
	return s
}

// SetLengths sets the content and viewport lengths in cells.
func (s *ScrollBar) SetLengths(contentLen, viewportLen int) *ScrollBar {
	s.contentLen = max(contentLen, 0)
	s.viewportLen = max(viewportLen, 0)
	return s
}

// SetOffset sets how far the viewport is scrolled into the content.
func (s *ScrollBar) SetOffset(offset int) *ScrollBar {
	s.offset = max(offset, 0)
	return s
}

// SetAutoHide hides the bar while the content fits the viewport.
func (s *ScrollBar) SetAutoHide(autoHide bool) *ScrollBar {
	s.autoHide = autoHide
	return s
}

// SetGlyphSet sets the glyphs.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// scrollMetrics is the thumb geometry in subcell units.
type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func computeScrollMetrics(trackCells, contentLen, viewportLen, offset int) scrollMetrics {
	m := scrollMetrics{trackCells: trackCells, trackLen: trackCells * subcell}
	if m.trackLen == 0 {
		return scrollMetrics{}
	}

	contentLen = max(contentLen, 1)
	viewportLen = min(max(viewportLen, 1), contentLen)
	maxOffset := contentLen - viewportLen
	if maxOffset == 0 {
		m.thumbLen = m.trackLen
		return m
	}
	offset = min(max(offset, 0), maxOffset)

	// The thumb keeps the viewport to content ratio but never shrinks below
	// one cell.
	m.thumbLen = min(max(m.trackLen*viewportLen/contentLen, subcell), m.trackLen)
	m.thumbStart = (m.trackLen - m.thumbLen) * offset / maxOffset
	return m
}

// cellFill returns the part of cell index covered by the thumb as a start
// and length in subcells relative to the cell.
func cellFill(m scrollMetrics, index int) (start, length int) {
	cellStart := index * subcell
	from := max(m.thumbStart, cellStart)
	to := min(m.thumbStart+m.thumbLen, cellStart+subcell)
	if to <= from {
		return 0, 0
	}
	return from - cellStart, to - from
}

// glyph picks the glyph for a cell the thumb covers from start for length
// subcells.
func (s *ScrollBar) glyph(start, length int) (string, tcell.Style) {
	g := s.glyphSet
	if length <= 0 {
		if s.orientation == OrientationHorizontal {
			return g.TrackHorizontal, s.trackStyle
		}
		return g.TrackVertical, s.trackStyle
	}

	// A partial thumb cell hugs the side the thumb continues on.
	i := length - 1
	switch {
	case s.orientation == OrientationHorizontal && start == 0:
		return g.ThumbLeft[i], s.thumbStyle
	case s.orientation == OrientationHorizontal:
		return g.ThumbRight[i], s.thumbStyle
	case start == 0:
		return g.ThumbUpper[i], s.thumbStyle
	default:
		return g.ThumbLower[i], s.thumbStyle
	}
}

// visible reports whether there is anything to draw for a track of length
// cells.
func (s *ScrollBar) visible(length int) bool {
	if length <= 0 || s.contentLen <= 0 {
		return false
	}
	return !s.autoHide || s.contentLen > s.viewportLen
}

// Draw draws the bar along the inner rect.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	length := height
	if s.orientation == OrientationHorizontal {
		length = width
	}
	if !s.visible(length) {
		return
	}

	m := computeScrollMetrics(length, s.contentLen, s.viewportLen, s.offset)
	for i := range m.trackCells {
		glyph, style := s.glyph(cellFill(m, i))
		if s.orientation == OrientationHorizontal {
			screen.Put(x+i, y, glyph, style)
		} else {
			screen.Put(x, y+i, glyph, style)
		}
	}
}

var _ Primitive = &ScrollBar{}
