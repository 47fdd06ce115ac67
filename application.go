package recyclerview

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// Capacity of the queued updates channel.
	updatesQueueSize = 100
	// Minimum time between two redraws caused by resize events.
	redrawPause = 50 * time.Millisecond
)

// DoubleClickInterval is the longest time between two clicks that still
// counts as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is what the mouse is logically doing, derived from raw events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the screen and runs the event loop for one root
// primitive:
//
//	if err := recyclerview.NewApplication().SetRoot(view).Run(); err != nil {
//		log.Fatal(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	root   Primitive
	focus  Primitive
	logger *slog.Logger

	enableMouse bool

	events  chan tcell.Event
	updates chan queuedUpdate

	mouseCapture           Primitive
	lastMouseX, lastMouseY int
	mouseDownX, mouseDownY int
	lastMouseClick         time.Time
	lastMouseButtons       tcell.ButtonMask

	// forceRedraw clears the screen before the next frame.
	forceRedraw bool
}

// NewApplication returns an application with mouse support enabled.
func NewApplication() *Application {
	return &Application{
		updates:     make(chan queuedUpdate, updatesQueueSize),
		enableMouse: true,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// SetScreen sets the screen to run on instead of the terminal. It has no
// effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetLogger sets the logger for event loop diagnostics.
func (a *Application) SetLogger(logger *slog.Logger) *Application {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// EnableMouse toggles mouse reporting. It takes effect on Run.
func (a *Application) EnableMouse(enable bool) *Application {
	a.enableMouse = enable
	return a
}

// Run initializes the screen and processes events until a QuitCommand is
// executed or Stop is called.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err := screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	screen := a.screen
	if a.enableMouse {
		screen.EnableMouse()
	}
	a.events = screen.EventQ()
	a.Unlock()

	// A panic would leave the terminal in raw mode.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	var (
		appErr error
		resize resizeThrottle
	)
	for {
		select {
		case event := <-a.events:
			if event == nil {
				return appErr
			}
			switch event := event.(type) {
			case *tcell.EventKey:
				a.handleKey(event)
			case *tcell.EventResize:
				a.Lock()
				a.forceRedraw = true
				a.Unlock()
				resize.schedule(func() { a.QueueEvent(event) })
				a.draw()
			case *tcell.EventMouse:
				a.handleMouse(event)
			case *tcell.EventError:
				a.logger.Error("terminal error", slog.Any("err", event))
				appErr = event
				a.Stop()
			}
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}

		if a.stopped() {
			return appErr
		}
	}
}

func (a *Application) stopped() bool {
	a.RLock()
	defer a.RUnlock()
	return a.screen == nil
}

// resizeThrottle turns a burst of resize events into one trailing redraw.
type resizeThrottle struct {
	last  time.Time
	timer *time.Timer
}

func (r *resizeThrottle) schedule(redraw func()) {
	if time.Since(r.last) < redrawPause {
		if r.timer != nil {
			r.timer.Stop()
		}
		r.timer = time.AfterFunc(redrawPause, redraw)
	}
	r.last = time.Now()
}

// handleKey sends event to the focused primitive.
func (a *Application) handleKey(event *tcell.EventKey) {
	focus := a.GetFocus()
	if focus != nil && a.executeCommand(focus.InputHandler(event)) {
		a.draw()
	}
}

func (a *Application) handleMouse(event *tcell.EventMouse) {
	handled, mouseDown := a.fireMouseActions(event)
	if handled {
		a.draw()
	}
	a.lastMouseButtons = event.Buttons()
	if mouseDown {
		a.mouseDownX, a.mouseDownY = event.Position()
	}
}

// fireMouseActions derives mouse actions from event and hands them to the
// capturing primitive or the root.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled, mouseDown bool) {
	fire := func(action MouseAction) {
		switch action {
		case MouseLeftDown, MouseMiddleDown, MouseRightDown:
			mouseDown = true
		}

		target := a.mouseCapture
		if target == nil {
			target = a.root
		}
		if target == nil {
			return
		}
		capture, cmd := target.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			handled = true
		}
		a.mouseCapture = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()
	moved := x != a.mouseDownX || y != a.mouseDownY
	changed := buttons ^ a.lastMouseButtons

	if x != a.lastMouseX || y != a.lastMouseY {
		fire(MouseMove)
		a.lastMouseX, a.lastMouseY = x, y
	}

	for _, b := range []struct {
		button                  tcell.ButtonMask
		down, up, click, dclick MouseAction
	}{
		{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
		{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
		{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
	} {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			fire(b.down)
			continue
		}
		fire(b.up)
		if moved {
			continue
		}
		if a.lastMouseClick.Add(DoubleClickInterval).Before(time.Now()) {
			fire(b.click)
			a.lastMouseClick = time.Now()
		} else {
			fire(b.dclick)
			a.lastMouseClick = time.Time{}
		}
	}

	for _, w := range []struct {
		button tcell.ButtonMask
		action MouseAction
	}{
		{tcell.WheelUp, MouseScrollUp},
		{tcell.WheelDown, MouseScrollDown},
		{tcell.WheelLeft, MouseScrollLeft},
		{tcell.WheelRight, MouseScrollRight},
	} {
		if buttons&w.button != 0 {
			fire(w.action)
		}
	}
	return handled, mouseDown
}

// Stop finalizes the screen, which ends Run.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw queues a redraw. Do not call it from the event loop goroutine, use
// RedrawCommand there.
func (a *Application) Draw() *Application {
	a.QueueUpdate(func() {
		a.draw()
	})
	return a
}

func (a *Application) draw() {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the primitive that fills the screen and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	a.forceRedraw = true
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus moves the keyboard focus to p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	previous := a.focus
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()

	if previous != nil && previous != p {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the focused primitive.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop goroutine and waits for it.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: done}
	<-done
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws afterwards.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// QueueEvent posts event to the event loop. It is dropped before Run.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	a.RLock()
	events := a.events
	a.RUnlock()
	if events != nil {
		events <- event
	}
	return a
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil || c.Target == a.GetFocus() {
			return false
		}
		a.SetFocus(c.Target)
		return true
	case SetTitleCommand:
		a.RLock()
		screen := a.screen
		a.RUnlock()
		if screen != nil {
			screen.SetTitle(string(c))
		}
		return false
	default:
		a.logger.Warn("unknown command", slog.Any("command", cmd))
		return false
	}
}
