package input

import "fmt"

// Event is a single key transition delivered by the window layer.
type Event struct {
	Key  Key
	Down bool
}

// ActionKind tags what a bound key does.
type ActionKind int

const (
	// ActionSet copies the event's Down value into Flag.
	ActionSet ActionKind = iota
	// ActionQuit requests process exit on key-down.
	ActionQuit
)

// Action is the tagged action bound to a key.
type Action struct {
	Kind ActionKind
	Flag Flag
}

// Bindings maps keys to actions.
type Bindings map[Key]Action

// DefaultBindings returns the stock control scheme: arrows move the player, A/S orbit the camera, escape quits.
func DefaultBindings() Bindings {
	return Bindings{
		KeyEscape:     {Kind: ActionQuit},
		KeyArrowLeft:  {Kind: ActionSet, Flag: FlagLeft},
		KeyArrowRight: {Kind: ActionSet, Flag: FlagRight},
		KeyArrowUp:    {Kind: ActionSet, Flag: FlagForward},
		KeyArrowDown:  {Kind: ActionSet, Flag: FlagBackward},
		KeyA:          {Kind: ActionSet, Flag: FlagCamLeft},
		KeyS:          {Kind: ActionSet, Flag: FlagCamRight},
	}
}

// Rebind returns a copy of b with the keys named in overrides (key name -> flag name, or "quit")
// replacing the defaults. A key bound elsewhere keeps its old binding too.
func (b Bindings) Rebind(overrides map[string]string) (Bindings, error) {
	out := make(Bindings, len(b)+len(overrides))
	for k, a := range b {
		out[k] = a
	}
	for keyName, target := range overrides {
		k, err := ParseKey(keyName)
		if err != nil {
			return nil, err
		}
		if target == "quit" {
			out[k] = Action{Kind: ActionQuit}
			continue
		}
		f, err := ParseFlag(target)
		if err != nil {
			return nil, fmt.Errorf("input: binding for %s: %w", keyName, err)
		}
		out[k] = Action{Kind: ActionSet, Flag: f}
	}
	return out, nil
}

// Dispatcher turns key events into KeyState changes using a fixed binding table.
type Dispatcher struct {
	bindings Bindings
}

// NewDispatcher returns a dispatcher over bindings. A nil table means DefaultBindings.
func NewDispatcher(bindings Bindings) *Dispatcher {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Dispatcher{bindings: bindings}
}

// Dispatch applies the action bound to ev.Key to state. It returns true when the event asks the game to quit.
// Unbound keys are ignored.
func (d *Dispatcher) Dispatch(ev Event, state *KeyState) (quit bool) {
	a, ok := d.bindings[ev.Key]
	if !ok {
		return false
	}
	switch a.Kind {
	case ActionQuit:
		return ev.Down
	case ActionSet:
		state.Set(a.Flag, ev.Down)
	}
	return false
}

// DispatchAll applies events in order and reports whether any of them requested quit.
// Events after a quit are still applied.
func (d *Dispatcher) DispatchAll(events []Event, state *KeyState) (quit bool) {
	for _, ev := range events {
		if d.Dispatch(ev, state) {
			quit = true
		}
	}
	return quit
}
