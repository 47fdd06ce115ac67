package help

import (
	"testing"

	"github.com/ayn2op/recyclerview/keybind"
	"github.com/stretchr/testify/assert"
)

type keyMap []keybind.Keybind

func (k keyMap) ShortHelp() []keybind.Keybind { return k }

func testKeyMap() keyMap {
	return keyMap{
		keybind.NewKeybind(keybind.WithKeys("up"), keybind.WithHelp("↑/k", "scroll up")),
		keybind.NewKeybind(keybind.WithHelp("x", "disabled")),
		keybind.NewKeybind(keybind.WithKeys("down"), keybind.WithHelp("↓/j", "scroll down")),
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	h := New().SetKeyMap(testKeyMap())
	for _, tc := range []struct {
		width int
		want  string
	}{
		{100, "↑/k scroll up • ↓/j scroll down"},
		{20, "↑/k scroll up …"},
		{14, "↑/k scroll up"},
		{5, ""},
	} {
		assert.Equal(t, tc.want, h.Text(tc.width), "width %d", tc.width)
	}
}

func TestTextSeparator(t *testing.T) {
	t.Parallel()

	h := New().SetKeyMap(testKeyMap()).SetSeparator("")
	assert.Equal(t, "↑/k scroll up ↓/j scroll down", h.Text(100))

	h.SetEllipsis("")
	assert.Equal(t, "↑/k scroll up", h.Text(20))
}

func TestScrollKeyMap(t *testing.T) {
	t.Parallel()

	h := New().SetKeyMap(keybind.DefaultVerticalScrollKeyMap())
	assert.Equal(t, "↑/k scroll up • ↓/j scroll down • pgdn page down • end/G go to end", h.Text(200))
}

func TestNoKeyMap(t *testing.T) {
	t.Parallel()

	assert.Empty(t, New().Text(100))
}
