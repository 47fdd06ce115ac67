package recyclerview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme holds the colors new primitives start with.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Background of every primitive.
	ContrastBackgroundColor  tcell.Color // Background of alternating cells.
	BorderColor              tcell.Color // Box borders.
	FocusBorderColor         tcell.Color // Box borders while focused.
	TitleColor               tcell.Color // Box titles and footers.
	GraphicsColor            tcell.Color // Scroll bar thumb.
	PrimaryTextColor         tcell.Color // Cell text.
	SecondaryTextColor       tcell.Color // Cell text on contrasting backgrounds.
	ErrorTextColor           tcell.Color // Layout errors.
}

// Styles is the theme used by the constructors. Change it before creating
// primitives.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	ContrastBackgroundColor:  color.Navy,
	BorderColor:              color.White,
	FocusBorderColor:         color.Aqua,
	TitleColor:               color.White,
	GraphicsColor:            color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	ErrorTextColor:           color.Red,
}
