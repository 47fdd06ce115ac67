package recyclerview

import (
	"log/slog"
	"math"

	"github.com/ayn2op/recyclerview/keybind"
	"github.com/ayn2op/recyclerview/recycle"
	"github.com/eapache/queue"
	"github.com/gdamore/tcell/v3"
)

// RecyclerView is a scrolling list or grid that draws any number of items
// with a small pool of cells. Items come from a Source; the view binds them
// to cells as they scroll into view and reuses the cells that scroll out.
//
// A looping view treats the items as a ring and scrolls forever in both
// directions. A bounded view stops at the first and the last item.
type RecyclerView struct {
	*Box

	cfg    recycle.Config
	engine *recycle.Engine
	source Source
	logger *slog.Logger

	nextID int

	// Geometry shared with the engine, in screen cells.
	viewport recycle.Vec2
	extent   recycle.Vec2
	anchor   recycle.Vec2

	// Origin and size of the cell area at the last layout.
	originX, originY int
	width, height    int
	laidOut          bool

	// configErr is set while the configuration is unusable, layoutErr while
	// the current size is.
	configErr error
	layoutErr error

	// Scroll requests made before the first layout.
	requests *queue.Queue

	keys      keybind.ScrollKeyMap
	wheelStep float64

	dragging     bool
	dragX, dragY int
	// dragAnchor is the anchor primary the drag started from, kept in step
	// with the engine's corrections.
	dragAnchor float64

	scrollBar     *ScrollBar
	showScrollBar bool

	changed  func(window recycle.Window)
	selected func(index int)
}

type (
	scrollByRequest      struct{ amount float64 }
	scrollToItemRequest  struct{ index int }
	scrollToStartRequest struct{}
	scrollToEndRequest   struct{}
)

// NewRecyclerView returns a vertical, bounded list of one row high cells
// showing source.
func NewRecyclerView(source Source) *RecyclerView {
	cfg := recycle.DefaultConfig()
	cfg.CellExtent = 1
	v := &RecyclerView{
		Box:           NewBox(),
		cfg:           cfg,
		source:        source,
		logger:        slog.New(slog.DiscardHandler),
		requests:      queue.New(),
		keys:          keybind.DefaultVerticalScrollKeyMap(),
		wheelStep:     3,
		scrollBar:     NewScrollBar(),
		showScrollBar: true,
	}
	return v.rebuild()
}

// rebuild replaces the engine after a configuration change. The pool is laid
// out again on the next draw.
func (v *RecyclerView) rebuild() *RecyclerView {
	v.anchor = recycle.Vec2{}
	v.laidOut = false
	v.layoutErr = nil
	v.width, v.height = -1, -1

	cfg := v.cfg
	cfg.Logger = v.logger
	engine, err := recycle.New(cfg, viewportAdapter{v}, contentAdapter{v}, cellFactory{v}, sourceAdapter{v})
	if err != nil {
		v.logger.Error("invalid recycler configuration", slog.Any("err", err))
		v.engine, v.configErr = nil, err
		return v
	}
	v.engine, v.configErr = engine, nil
	return v
}

// SetConfig replaces the whole engine configuration.
func (v *RecyclerView) SetConfig(cfg recycle.Config) *RecyclerView {
	v.cfg = cfg
	return v.rebuild()
}

// Config returns the engine configuration.
func (v *RecyclerView) Config() recycle.Config {
	return v.cfg
}

// SetAxis sets the scrolling direction and installs the default key map for
// it.
func (v *RecyclerView) SetAxis(axis recycle.Axis) *RecyclerView {
	v.cfg.Axis = axis
	if axis == recycle.Horizontal {
		v.keys = keybind.DefaultHorizontalScrollKeyMap()
	} else {
		v.keys = keybind.DefaultVerticalScrollKeyMap()
	}
	return v.rebuild()
}

// SetItemSize fixes the size of every cell along the axis. Zero derives it
// from the prototype's aspect ratio instead.
func (v *RecyclerView) SetItemSize(size float64) *RecyclerView {
	v.cfg.CellExtent = size
	return v.rebuild()
}

// SetPrototype sets the template cell size whose aspect ratio cells keep
// when no item size is fixed.
func (v *RecyclerView) SetPrototype(width, height float64) *RecyclerView {
	v.cfg.Prototype = recycle.Vec2{X: width, Y: height}
	return v.rebuild()
}

// SetGrid lays cells out in lines of segments cells, at least two.
func (v *RecyclerView) SetGrid(segments int) *RecyclerView {
	v.cfg.Grid = true
	v.cfg.Segments = max(segments, 2)
	return v.rebuild()
}

// SetLinear turns the grid off.
func (v *RecyclerView) SetLinear() *RecyclerView {
	v.cfg.Grid = false
	v.cfg.Segments = 1
	return v.rebuild()
}

// SetLoop makes the items wrap around.
func (v *RecyclerView) SetLoop(loop bool) *RecyclerView {
	v.cfg.Loop = loop
	return v.rebuild()
}

// SetReverse shows the last item first.
func (v *RecyclerView) SetReverse(reverse bool) *RecyclerView {
	v.cfg.Reverse = reverse
	return v.rebuild()
}

// SetSpacing sets the gaps between cells.
func (v *RecyclerView) SetSpacing(x, y float64) *RecyclerView {
	v.cfg.Spacing = recycle.Vec2{X: x, Y: y}
	return v.rebuild()
}

// SetContentPadding sets the space between the content edges and the cells.
func (v *RecyclerView) SetContentPadding(top, bottom, left, right float64) *RecyclerView {
	v.cfg.Padding = recycle.Padding{Top: top, Bottom: bottom, Left: left, Right: right}
	return v.rebuild()
}

// SetLogger sets the logger of the view and its engine.
func (v *RecyclerView) SetLogger(logger *slog.Logger) *RecyclerView {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	v.logger = logger
	return v.rebuild()
}

// SetKeyMap sets the scroll key bindings.
func (v *RecyclerView) SetKeyMap(keys keybind.ScrollKeyMap) *RecyclerView {
	v.keys = keys
	return v
}

// KeyMap returns the scroll key bindings.
func (v *RecyclerView) KeyMap() keybind.ScrollKeyMap {
	return v.keys
}

// SetWheelStep sets how far one mouse wheel notch scrolls.
func (v *RecyclerView) SetWheelStep(step float64) *RecyclerView {
	v.wheelStep = max(step, 1)
	return v
}

// SetScrollBarVisible shows a scroll bar along the trailing edge of bounded
// views. Looping views never show one.
func (v *RecyclerView) SetScrollBarVisible(visible bool) *RecyclerView {
	v.showScrollBar = visible
	v.width, v.height = -1, -1
	return v
}

// ScrollBar returns the scroll bar for styling.
func (v *RecyclerView) ScrollBar() *ScrollBar {
	return v.scrollBar
}

// SetChangedFunc sets a callback invoked with the new window whenever the
// view scrolls or is laid out.
func (v *RecyclerView) SetChangedFunc(handler func(window recycle.Window)) *RecyclerView {
	v.changed = handler
	return v
}

// SetSelectedFunc sets a callback invoked with the data index of a clicked
// cell.
func (v *RecyclerView) SetSelectedFunc(handler func(index int)) *RecyclerView {
	v.selected = handler
	return v
}

// SetSource replaces the items and lays the pool out again from the start.
func (v *RecyclerView) SetSource(source Source) *RecyclerView {
	v.source = source
	return v.Reload()
}

// Reload rebuilds the pool after the number of items changed.
func (v *RecyclerView) Reload() *RecyclerView {
	if v.engine == nil || !v.laidOut {
		v.retryLayout()
		return v
	}
	if err := v.engine.ReloadData(sourceAdapter{v}, v.ready); err != nil {
		v.layoutFailed(err)
	}
	return v
}

// ResetList scrolls back to the first item, reusing the pooled cells.
func (v *RecyclerView) ResetList() *RecyclerView {
	if v.engine == nil || !v.laidOut {
		v.retryLayout()
		return v
	}
	if err := v.engine.Reset(v.ready); err != nil {
		v.layoutFailed(err)
	}
	return v
}

// retryLayout makes the next draw lay out again after a failed layout.
func (v *RecyclerView) retryLayout() {
	if v.layoutErr == nil {
		return
	}
	v.layoutErr = nil
	v.width, v.height = -1, -1
}

// Refresh binds every visible cell again, for items whose content changed.
func (v *RecyclerView) Refresh() *RecyclerView {
	if v.engine != nil && v.laidOut {
		v.engine.Refresh(nil)
	}
	return v
}

// Err returns the configuration or layout error that keeps the view from
// drawing its items.
func (v *RecyclerView) Err() error {
	if v.configErr != nil {
		return v.configErr
	}
	return v.layoutErr
}

// Window returns the pool window.
func (v *RecyclerView) Window() recycle.Window {
	if v.engine == nil {
		return recycle.Window{}
	}
	return v.engine.Window()
}

// ItemCount returns the number of items at the last layout.
func (v *RecyclerView) ItemCount() int {
	if v.engine == nil {
		return 0
	}
	return v.engine.ItemCount()
}

// Anchor returns the content offset relative to the viewport.
func (v *RecyclerView) Anchor() recycle.Vec2 {
	return v.anchor
}

// ContentExtent returns the size of the scrollable content.
func (v *RecyclerView) ContentExtent() recycle.Vec2 {
	return v.extent
}

// Cells returns the active cells in no particular order.
func (v *RecyclerView) Cells() []*Cell {
	if v.engine == nil {
		return nil
	}
	cells := make([]*Cell, 0, v.engine.PoolSize())
	for _, s := range v.engine.Slots() {
		cells = append(cells, s.Cell.(*Cell))
	}
	return cells
}

// ScrollBy scrolls amount screen cells forward, or backward when negative.
func (v *RecyclerView) ScrollBy(amount float64) *RecyclerView {
	return v.request(scrollByRequest{amount: amount})
}

// ScrollToItem scrolls a bounded view so the line holding the item at data
// index starts at the leading edge. Looping views ignore it.
func (v *RecyclerView) ScrollToItem(index int) *RecyclerView {
	return v.request(scrollToItemRequest{index: index})
}

// ScrollToStart scrolls back to the first item.
func (v *RecyclerView) ScrollToStart() *RecyclerView {
	return v.request(scrollToStartRequest{})
}

// ScrollToEnd scrolls a bounded view to the last item.
func (v *RecyclerView) ScrollToEnd() *RecyclerView {
	return v.request(scrollToEndRequest{})
}

// request applies r, or queues it until the first layout.
func (v *RecyclerView) request(r any) *RecyclerView {
	if v.laidOut {
		v.apply(r)
	} else {
		v.requests.Add(r)
	}
	return v
}

func (v *RecyclerView) apply(r any) {
	switch r := r.(type) {
	case scrollByRequest:
		v.scrollTo(v.cfg.Axis.Primary(v.anchor) - r.amount)
	case scrollToItemRequest:
		v.scrollToItem(r.index)
	case scrollToStartRequest:
		if v.cfg.Loop {
			v.ResetList()
		} else {
			v.scrollTo(0)
		}
	case scrollToEndRequest:
		if !v.cfg.Loop {
			v.scrollTo(v.minAnchor())
		}
	}
}

func (v *RecyclerView) drainRequests() {
	for v.requests.Length() > 0 {
		v.apply(v.requests.Remove())
	}
}

func (v *RecyclerView) scrollToItem(index int) {
	if v.cfg.Loop {
		v.logger.Debug("scroll to item ignored by looping view", slog.Int("index", index))
		return
	}
	v.scrollTo(v.cfg.Axis.Primary(v.engine.ScrollToItem(index)))
}

// minAnchor is the anchor primary that shows the end of a bounded content.
func (v *RecyclerView) minAnchor() float64 {
	axis := v.cfg.Axis
	return min(axis.Primary(v.viewport)-axis.Primary(v.extent), 0)
}

// scrollTo moves the anchor primary to target and lets the engine recycle.
func (v *RecyclerView) scrollTo(target float64) {
	if v.engine == nil || !v.laidOut {
		return
	}
	axis := v.cfg.Axis
	if !v.cfg.Loop {
		target = min(max(target, v.minAnchor()), 0)
	}
	delta := target - axis.Primary(v.anchor)
	if delta == 0 {
		return
	}

	v.anchor = axis.WithPrimary(v.anchor, target)
	correction := v.engine.OnScroll(axis.Vec(delta, 0))
	if v.dragging {
		v.dragAnchor += axis.Primary(correction)
	}
	v.notifyChanged()
}

// lineStep is the distance between two lines, the unit of key scrolling.
func (v *RecyclerView) lineStep() float64 {
	if v.engine == nil {
		return 1
	}
	axis := v.cfg.Axis
	return max(axis.Primary(v.engine.CellSize())+axis.Primary(v.cfg.Spacing), 1)
}

func (v *RecyclerView) ready() {
	v.notifyChanged()
}

func (v *RecyclerView) notifyChanged() {
	if v.changed != nil {
		v.changed(v.engine.Window())
	}
}

func (v *RecyclerView) layoutFailed(err error) {
	v.laidOut = false
	v.layoutErr = err
	v.logger.Error("recycler layout failed", slog.Any("err", err))
}

// layout lays the pool out for a cell area of width by height. Resizing a
// bounded view keeps the first visible item at the leading edge.
func (v *RecyclerView) layout(width, height int) error {
	if width == v.width && height == v.height && (v.laidOut || v.layoutErr != nil) {
		return v.layoutErr
	}

	keep := -1
	if v.laidOut && !v.cfg.Loop {
		keep = v.firstVisibleIndex()
	}

	v.width, v.height = width, height
	v.viewport = recycle.Vec2{X: float64(width), Y: float64(height)}
	v.extent = v.cfg.Axis.WithPrimary(v.viewport, 0)
	v.anchor = recycle.Vec2{}
	v.layoutErr = nil

	var err error
	if v.engine.Built() {
		err = v.engine.Reset(v.ready)
	} else {
		err = v.engine.Init(v.ready)
	}
	if err != nil {
		v.layoutFailed(err)
		return err
	}
	v.laidOut = true

	if keep >= 0 {
		v.scrollToItem(keep)
	}
	return nil
}

// firstVisibleIndex returns the data index of the visible cell closest to the
// leading edge, or -1.
func (v *RecyclerView) firstVisibleIndex() int {
	axis := v.cfg.Axis
	anchor := axis.Primary(v.anchor)
	index, best := -1, math.Inf(1)
	for _, s := range v.engine.Slots() {
		start := anchor + axis.Primary(s.Position)
		end := start + axis.Primary(v.engine.CellSize())
		if end <= 0 || start >= best {
			continue
		}
		index, best = s.Cell.(*Cell).Index(), start
	}
	return index
}

// Draw draws the box, the visible cells and the scroll bar.
func (v *RecyclerView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	if v.configErr != nil {
		v.drawError(screen, v.configErr, x, y, width)
		return
	}

	bar := v.showScrollBar && !v.cfg.Loop
	if bar {
		if v.cfg.Axis == recycle.Horizontal {
			height--
		} else {
			width--
		}
	}
	if width <= 0 || height <= 0 {
		return
	}

	v.originX, v.originY = x, y
	if err := v.layout(width, height); err != nil {
		v.drawError(screen, err, x, y, width)
		return
	}
	v.drainRequests()

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, c := range v.Cells() {
		cx, cy, cw, ch := v.cellRect(c)
		if cw <= 0 || ch <= 0 || cx >= x+width || cy >= y+height || cx+cw <= x || cy+ch <= y {
			continue
		}
		c.draw(clipped, cx, cy, cw, ch)
	}

	if bar {
		v.drawScrollBar(screen, x, y, width, height)
	}
}

func (v *RecyclerView) drawScrollBar(screen tcell.Screen, x, y, width, height int) {
	axis := v.cfg.Axis
	content := int(math.Ceil(axis.Primary(v.extent)))
	offset := int(math.Round(-axis.Primary(v.anchor)))
	if axis == recycle.Horizontal {
		v.scrollBar.SetOrientation(OrientationHorizontal).SetLengths(content, width)
		v.scrollBar.SetRect(x, y+height, width, 1)
	} else {
		v.scrollBar.SetOrientation(OrientationVertical).SetLengths(content, height)
		v.scrollBar.SetRect(x+width, y, 1, height)
	}
	v.scrollBar.SetOffset(offset).Draw(screen)
}

func (v *RecyclerView) drawError(screen tcell.Screen, err error, x, y, width int) {
	printWithStyle(screen, err.Error(), x, y, 0, width, AlignmentLeft, tcell.StyleDefault.Foreground(Styles.ErrorTextColor), true)
}

// cellRect returns the screen rect of c.
func (v *RecyclerView) cellRect(c *Cell) (x, y, width, height int) {
	pos := c.pos.Add(v.anchor)
	x0, y0 := snap(pos.X), snap(pos.Y)
	x1, y1 := snap(pos.X+c.size.X), snap(pos.Y+c.size.Y)
	return v.originX + x0, v.originY + y0, x1 - x0, y1 - y0
}

// snap maps a content coordinate to a screen cell, absorbing rounding
// errors from repeated shifts.
func snap(f float64) int {
	return int(math.Floor(f + 1e-9))
}

// IndexAt returns the data index of the cell drawn at the screen position,
// or -1.
func (v *RecyclerView) IndexAt(x, y int) int {
	if !v.laidOut || x < v.originX || y < v.originY || x >= v.originX+v.width || y >= v.originY+v.height {
		return -1
	}
	for _, c := range v.Cells() {
		cx, cy, cw, ch := v.cellRect(c)
		if x >= cx && x < cx+cw && y >= cy && y < cy+ch {
			return c.Index()
		}
	}
	return -1
}

// InputHandler scrolls on the bound keys.
func (v *RecyclerView) InputHandler(event *tcell.EventKey) Command {
	page := max(v.cfg.Axis.Primary(v.viewport), 1)
	switch {
	case keybind.Matches(event, v.keys.Backward):
		v.ScrollBy(-v.lineStep())
	case keybind.Matches(event, v.keys.Forward):
		v.ScrollBy(v.lineStep())
	case keybind.Matches(event, v.keys.PageBackward):
		v.ScrollBy(-page)
	case keybind.Matches(event, v.keys.PageForward):
		v.ScrollBy(page)
	case keybind.Matches(event, v.keys.Start):
		v.ScrollToStart()
	case keybind.Matches(event, v.keys.End):
		v.ScrollToEnd()
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler focuses the view on click, scrolls on the wheel and while the
// left button drags the content, and reports clicked cells.
func (v *RecyclerView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	axis := v.cfg.Axis

	switch action {
	case MouseLeftDown:
		if !v.InRect(x, y) {
			return nil, nil
		}
		cmd := SetFocusCommand{Target: v}
		if !v.InInnerRect(x, y) || !v.laidOut {
			return nil, cmd
		}
		v.dragging = true
		v.dragX, v.dragY = x, y
		v.dragAnchor = axis.Primary(v.anchor)
		return v, cmd
	case MouseMove:
		if !v.dragging {
			return nil, nil
		}
		moved := float64(y - v.dragY)
		if axis == recycle.Horizontal {
			moved = float64(x - v.dragX)
		}
		v.scrollTo(v.dragAnchor + moved)
		return v, RedrawCommand{}
	case MouseLeftUp:
		if v.dragging {
			v.dragging = false
			return nil, RedrawCommand{}
		}
	case MouseLeftClick:
		if index := v.IndexAt(x, y); index >= 0 && v.selected != nil {
			v.selected(index)
			return nil, RedrawCommand{}
		}
	case MouseScrollUp, MouseScrollLeft:
		if v.InRect(x, y) {
			v.ScrollBy(-v.wheelStep)
			return nil, RedrawCommand{}
		}
	case MouseScrollDown, MouseScrollRight:
		if v.InRect(x, y) {
			v.ScrollBy(v.wheelStep)
			return nil, RedrawCommand{}
		}
	}
	return nil, nil
}

var _ Primitive = &RecyclerView{}

// The adapters below let the view serve as every collaborator of its engine.

type viewportAdapter struct{ v *RecyclerView }

func (a viewportAdapter) Extent() recycle.Vec2 { return a.v.viewport }

type contentAdapter struct{ v *RecyclerView }

func (a contentAdapter) Extent() recycle.Vec2          { return a.v.extent }
func (a contentAdapter) SetExtent(extent recycle.Vec2) { a.v.extent = extent }
func (a contentAdapter) Anchor() recycle.Vec2          { return a.v.anchor }
func (a contentAdapter) SetAnchor(anchor recycle.Vec2) { a.v.anchor = anchor }

type cellFactory struct{ v *RecyclerView }

func (f cellFactory) Instantiate() recycle.Cell {
	c := newCell(f.v.nextID)
	f.v.nextID++
	return c
}

func (f cellFactory) Activate(cell recycle.Cell) {
	cell.(*Cell).active = true
}

func (f cellFactory) Deactivate(cell recycle.Cell) {
	c := cell.(*Cell)
	c.active = false
	c.reset()
}

func (f cellFactory) Destroy(cell recycle.Cell) {
	cell.(*Cell).active = false
}

type sourceAdapter struct{ v *RecyclerView }

func (a sourceAdapter) ItemCount() int {
	if a.v.source == nil {
		return 0
	}
	return a.v.source.Len()
}

func (a sourceAdapter) SetCell(cell recycle.Cell, index int) {
	c := cell.(*Cell)
	c.reset()
	c.index = index
	a.v.source.Bind(c, index)
}

func (a sourceAdapter) RefreshCell(cell recycle.Cell) {
	c := cell.(*Cell)
	if c.index < 0 {
		return
	}
	index := c.index
	c.reset()
	c.index = index
	a.v.source.Bind(c, index)
}
