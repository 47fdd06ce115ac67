package recyclerview

import "github.com/gdamore/tcell/v3"

// Primitive is anything the Application can lay out, draw and route input to.
type Primitive interface {
	// Draw draws the primitive inside its rect.
	Draw(screen tcell.Screen)

	// GetRect returns the position of the primitive: x, y, width and height.
	GetRect() (int, int, int, int)
	// SetRect moves and resizes the primitive.
	SetRect(x, y, width, height int)

	// InputHandler receives key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse actions. A non-nil capture primitive
	// receives every following mouse action until it returns nil again.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)

	// HasFocus reports whether the primitive has focus.
	HasFocus() bool
	// Focus is called when the primitive receives focus. Containers may hand
	// the focus on through delegate.
	Focus(delegate func(p Primitive))
	// Blur is called when the primitive loses focus.
	Blur()
}
