package input

import (
	"fmt"
	"sort"
)

var keyLabels = map[Key]string{
	KeyEscape:     "ESC",
	KeyArrowLeft:  "Left Arrow",
	KeyArrowRight: "Right Arrow",
	KeyArrowUp:    "Up Arrow",
	KeyArrowDown:  "Down Arrow",
	KeyA:          "A",
	KeyS:          "S",
}

var flagLabels = [...]string{
	"Rotate Left",
	"Rotate Right",
	"Run Forward",
	"Run Backward",
	"Rotate Camera Left",
	"Rotate Camera Right",
}

// Label is the key as printed on the on-screen help.
func (k Key) Label() string {
	if l, ok := keyLabels[k]; ok {
		return l
	}
	return k.String()
}

// Label describes what the action does.
func (a Action) Label() string {
	if a.Kind == ActionQuit {
		return "Quit"
	}
	if int(a.Flag) < 0 || int(a.Flag) >= len(flagLabels) {
		return a.Flag.String()
	}
	return flagLabels[a.Flag]
}

// order sorts quit first, then flags in declaration order.
func (a Action) order() int {
	if a.Kind == ActionQuit {
		return -1
	}
	return int(a.Flag)
}

// Instructions returns one "[Key]: Action" line per binding, quit first, then the
// player controls and the camera controls.
func (b Bindings) Instructions() []string {
	keys := make([]Key, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := b[keys[i]].order(), b[keys[j]].order()
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("[%s]: %s", k.Label(), b[k].Label())
	}
	return lines
}
