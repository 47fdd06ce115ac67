// Command recyclerdemo scrolls through a large generated list with a small
// pool of recycled cells.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ayn2op/recyclerview"
	"github.com/ayn2op/recyclerview/help"
	"github.com/ayn2op/recyclerview/keybind"
	"github.com/ayn2op/recyclerview/recycle"
	"github.com/gdamore/tcell/v3"
)

var (
	items    = flag.Int("items", 1000, "number of items")
	axis     = flag.String("axis", "vertical", "scroll axis: vertical or horizontal")
	grid     = flag.Bool("grid", false, "lay items out in a grid")
	segments = flag.Int("segments", 3, "cells per grid line")
	loop     = flag.Bool("loop", false, "wrap around at the ends")
	reverse  = flag.Bool("reverse", false, "show the last item first")
	spacing  = flag.Float64("spacing", 0, "gap between cells along the axis")
	itemSize = flag.Float64("size", 0, "cell size along the axis, 0 for the default")
	debugLog = flag.String("debug-log", "", "write debug logs as JSON to this file")
)

// source generates item labels and shades every other item.
type source int

func (s source) Len() int {
	return int(s)
}

func (s source) Bind(cell *recyclerview.Cell, index int) {
	cell.SetText(fmt.Sprintf("item %d (cell %d)", index, cell.ID()))
	if index%2 == 1 {
		cell.SetStyle(tcell.StyleDefault.
			Foreground(recyclerview.Styles.SecondaryTextColor).
			Background(recyclerview.Styles.ContrastBackgroundColor))
	}
}

// demo adds quitting and a help line below the view.
type demo struct {
	*recyclerview.RecyclerView
	help *help.Help
	quit keybind.Keybind
}

func (d *demo) ShortHelp() []keybind.Keybind {
	return append(d.KeyMap().ShortHelp(), d.quit)
}

func (d *demo) SetRect(x, y, width, height int) {
	d.RecyclerView.SetRect(x, y, width, max(height-1, 0))
	d.help.SetRect(x, y+height-1, width, 1)
}

func (d *demo) Draw(screen tcell.Screen) {
	d.RecyclerView.Draw(screen)
	d.help.Draw(screen)
}

func (d *demo) InputHandler(event *tcell.EventKey) recyclerview.Command {
	if keybind.Matches(event, d.quit) {
		return recyclerview.QuitCommand{}
	}
	return d.RecyclerView.InputHandler(event)
}

// MouseHandler keeps focus and mouse capture on the demo rather than the
// embedded view.
func (d *demo) MouseHandler(action recyclerview.MouseAction, event *tcell.EventMouse) (recyclerview.Primitive, recyclerview.Command) {
	capture, cmd := d.RecyclerView.MouseHandler(action, event)
	if _, ok := cmd.(recyclerview.SetFocusCommand); ok {
		cmd = recyclerview.RedrawCommand{}
	}
	if capture != nil {
		capture = d
	}
	return capture, cmd
}

// footer describes the window, earliest item first.
func footer(w recycle.Window, cells int) string {
	return fmt.Sprintf(" items %d-%d, %d cells ", w.TrailingItem, w.LeadingItem, cells)
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.New(slog.DiscardHandler)
	if *debugLog != "" {
		f, err := os.Create(*debugLog)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	view := recyclerview.NewRecyclerView(source(*items)).SetLogger(logger)
	size := 1.0
	switch *axis {
	case "vertical":
	case "horizontal":
		view.SetAxis(recycle.Horizontal)
		size = 24
	default:
		return fmt.Errorf("unknown axis %q", *axis)
	}
	if *itemSize > 0 {
		size = *itemSize
	}
	view.SetItemSize(size)
	if *grid {
		view.SetGrid(*segments)
	}
	if *axis == "horizontal" {
		view.SetSpacing(*spacing, 0)
	} else {
		view.SetSpacing(0, *spacing)
	}
	view.SetLoop(*loop).SetReverse(*reverse)

	view.SetBorders(recyclerview.BordersAll).SetTitle(" recyclerview ")
	view.SetChangedFunc(func(w recycle.Window) {
		view.SetFooter(footer(w, len(view.Cells())))
	})
	view.SetSelectedFunc(func(index int) {
		logger.Info("item selected", slog.Int("index", index))
	})

	d := &demo{
		RecyclerView: view,
		help:         help.New(),
		quit:         keybind.NewKeybind(keybind.WithKeys("q", "esc", "ctrl+c"), keybind.WithHelp("q", "quit")),
	}
	d.help.SetKeyMap(d)
	app := recyclerview.NewApplication().SetLogger(logger).SetRoot(d)
	return app.Run()
}
