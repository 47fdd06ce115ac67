package recyclerview

// Command is a side effect a primitive asks the Application to perform. Input
// handlers return them and the event loop executes them.
type Command any

// BatchCommand runs several commands in order.
type BatchCommand []Command

// AppendCommand merges next into current, flattening batches. Either may be
// nil.
func AppendCommand(current, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}

	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if b, ok := c.(BatchCommand); ok {
			batch = append(batch, b...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// RedrawCommand redraws the screen once the current event is handled.
type RedrawCommand struct{}

// QuitCommand stops the event loop.
type QuitCommand struct{}

// SetTitleCommand sets the terminal window title.
type SetTitleCommand string

// SetFocusCommand moves the keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}
