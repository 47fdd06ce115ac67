// Package keybind matches tcell key events against configurable key
// descriptions such as "down", "ctrl+d" or "G".
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the text shown in help views.
type Keybind struct {
	keys []string
	help Help
}

// Help describes a binding for humans.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys that trigger the binding.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

// WithHelp sets the help text.
func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	k.keys = k.keys[:0]
	for _, key := range keys {
		if key = normalizeKey(key); key != "" && !slices.Contains(k.keys, key) {
			k.keys = append(k.keys, key)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the binding has any key.
func (k Keybind) Enabled() bool {
	return len(k.keys) > 0
}

// Matches reports whether event triggers any of keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	key := eventKeyString(event)
	if key == "" {
		return false
	}
	for _, keybind := range keybinds {
		if slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"del":      "delete",
	"backtab":  "shift+tab",
}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"shift":   "shift",
	"meta":    "meta",
}

// modifierOrder is the canonical modifier order of a normalized key.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

// normalizeKey turns a key description into its canonical form: lower-case
// modifiers in canonical order joined with "+" and a primary key. Single
// character keys keep their case unless a modifier is present.
func normalizeKey(key string) string {
	var (
		mods    []string
		primary string
	)
	for part := range strings.SplitSeq(strings.TrimSpace(key), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierAliases[strings.ToLower(part)]; ok {
			mods = append(mods, mod)
			continue
		}
		primary = normalizePrimary(part)
	}
	if primary == "" {
		return ""
	}
	if p, m, ok := strings.Cut(primary, "+"); ok {
		mods = append(mods, p)
		primary = m
	}
	return joinKey(mods, primary)
}

func normalizePrimary(key string) string {
	// tcell names rune keys Rune[x].
	if inner, ok := strings.CutPrefix(key, "Rune["); ok && strings.HasSuffix(inner, "]") && len(inner) > 1 {
		return inner[:len(inner)-1]
	}
	if len([]rune(key)) == 1 {
		return key
	}
	lower := strings.ToLower(key)
	if alias, ok := keyAliases[lower]; ok {
		return alias
	}
	if rest, ok := strings.CutPrefix(lower, "ctrl-"); ok && rest != "" {
		return "ctrl+" + rest
	}
	return lower
}

func joinKey(mods []string, primary string) string {
	if len(mods) == 0 {
		return primary
	}
	if len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	parts := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if slices.Contains(mods, mod) {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

// eventKeyString renders event in the canonical key form.
func eventKeyString(event *tcell.EventKey) string {
	if event == nil {
		return ""
	}

	// Named keys win over the control codes some of them share.
	key := event.Key()
	primary, ok := keyNames[key]
	if !ok && key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if !ok && key == tcell.KeyRune {
		primary = event.Str()
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	var mods []string
	modifiers := event.Modifiers()
	for _, m := range []struct {
		mask tcell.ModMask
		name string
	}{
		{tcell.ModCtrl, "ctrl"},
		{tcell.ModAlt, "alt"},
		{tcell.ModShift, "shift"},
		{tcell.ModMeta, "meta"},
	} {
		if modifiers&m.mask != 0 {
			mods = append(mods, m.name)
		}
	}
	// Shifted runes arrive already shifted.
	if key == tcell.KeyRune {
		mods = slices.DeleteFunc(mods, func(m string) bool { return m == "shift" })
	}
	if p, m, ok := strings.Cut(primary, "+"); ok {
		mods = append(mods, p)
		primary = m
	}
	return joinKey(mods, primary)
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}
