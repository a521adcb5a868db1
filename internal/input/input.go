package input

import (
	"fmt"
	"strings"
)

// Key identifies a physical key the game reacts to. The graphics layer maps these to raylib key codes.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyA
	KeyS
)

var keyNames = map[Key]string{
	KeyEscape:     "escape",
	KeyArrowLeft:  "arrow_left",
	KeyArrowRight: "arrow_right",
	KeyArrowUp:    "arrow_up",
	KeyArrowDown:  "arrow_down",
	KeyA:          "a",
	KeyS:          "s",
}

// AllKeys lists every key the poller should watch, in a stable order.
func AllKeys() []Key {
	return []Key{KeyEscape, KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeyA, KeyS}
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKey returns the key for a name such as "arrow_up" or "a". Matching is case-insensitive.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("input: unknown key %q", name)
}

// Flag names one boolean in KeyState.
type Flag int

const (
	FlagLeft Flag = iota
	FlagRight
	FlagForward
	FlagBackward
	FlagCamLeft
	FlagCamRight
)

var flagNames = [...]string{"left", "right", "forward", "backward", "cam-left", "cam-right"}

func (f Flag) String() string {
	if int(f) < 0 || int(f) >= len(flagNames) {
		return "unknown"
	}
	return flagNames[f]
}

// ParseFlag returns the flag for a name such as "forward" or "cam-left".
func ParseFlag(name string) (Flag, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range flagNames {
		if n == name {
			return Flag(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown flag %q", name)
}

// KeyState holds which control keys are currently held. It is written by the Dispatcher
// and handed by value to the per-frame update.
type KeyState struct {
	Left     bool
	Right    bool
	Forward  bool
	Backward bool
	CamLeft  bool
	CamRight bool
}

// Set assigns the flag f.
func (s *KeyState) Set(f Flag, v bool) {
	switch f {
	case FlagLeft:
		s.Left = v
	case FlagRight:
		s.Right = v
	case FlagForward:
		s.Forward = v
	case FlagBackward:
		s.Backward = v
	case FlagCamLeft:
		s.CamLeft = v
	case FlagCamRight:
		s.CamRight = v
	}
}

// Moving reports whether any locomotion key (not the camera keys) is held.
func (s KeyState) Moving() bool {
	return s.Left || s.Right || s.Forward || s.Backward
}
