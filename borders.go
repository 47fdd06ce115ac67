package recyclerview

// BorderSet holds the glyphs used to draw box borders.
type BorderSet struct {
	Top, Bottom, Left, Right string

	TopLeft, TopRight, BottomLeft, BottomRight string
}

// BorderSetHidden draws borders as blanks, keeping the space they take.
func BorderSetHidden() BorderSet {
	return BorderSet{
		Top: " ", Bottom: " ", Left: " ", Right: " ",
		TopLeft: " ", TopRight: " ", BottomLeft: " ", BottomRight: " ",
	}
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

func BorderSetRound() BorderSet {
	set := BorderSetPlain()
	set.TopLeft = BoxDrawingsLightArcDownAndRight
	set.TopRight = BoxDrawingsLightArcDownAndLeft
	set.BottomLeft = BoxDrawingsLightArcUpAndRight
	set.BottomRight = BoxDrawingsLightArcUpAndLeft
	return set
}

func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsHeavyHorizontal,
		Bottom:      BoxDrawingsHeavyHorizontal,
		Left:        BoxDrawingsHeavyVertical,
		Right:       BoxDrawingsHeavyVertical,
		TopLeft:     BoxDrawingsHeavyDownAndRight,
		TopRight:    BoxDrawingsHeavyDownAndLeft,
		BottomLeft:  BoxDrawingsHeavyUpAndRight,
		BottomRight: BoxDrawingsHeavyUpAndLeft,
	}
}

// Borders is a bit set of box edges.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

// Has reports whether any edge of flag is set.
func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
