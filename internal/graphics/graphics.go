package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"terrain-walk/internal/config"
	"terrain-walk/internal/input"
)

// Loop is what Run drives. Update gets the frame's key transitions and the frame time in
// seconds and returns false to stop. Unload runs once after the last frame, while the
// window and its GPU context still exist.
type Loop interface {
	Update(events []input.Event, dt float64) bool
	Draw()
	Unload()
}

// Run opens the window and drives the main loop. Each frame it polls key transitions, calls
// Update with the events and the frame time (clamped to MaxFrameTime), then clears the screen
// to the configured background and calls Draw. The loop ends when Update returns false or the
// window is closed.
func Run(win config.Window, loop Loop) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	if win.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := int32(win.Width), int32(win.Height)
	if win.Fullscreen {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, win.Title)
	defer rl.CloseWindow()
	defer loop.Unload()

	rl.SetExitKey(rl.KeyNull) // ESC goes through the key bindings like every other key
	if win.TargetFPS > 0 {
		rl.SetTargetFPS(int32(win.TargetFPS))
	}

	bg := rl.NewColor(win.Background[0], win.Background[1], win.Background[2], 255)
	var poller KeyPoller
	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())
		if dt > win.MaxFrameTime {
			dt = win.MaxFrameTime
		}
		if !loop.Update(poller.Poll(), dt) {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		loop.Draw()
		rl.EndDrawing()
	}
}

var rlKeys = map[input.Key]int32{
	input.KeyEscape:     rl.KeyEscape,
	input.KeyArrowLeft:  rl.KeyLeft,
	input.KeyArrowRight: rl.KeyRight,
	input.KeyArrowUp:    rl.KeyUp,
	input.KeyArrowDown:  rl.KeyDown,
	input.KeyA:          rl.KeyA,
	input.KeyS:          rl.KeyS,
}

// KeyPoller turns raylib's per-frame key state into press and release events.
// The event slice is reused between calls.
type KeyPoller struct {
	events []input.Event
}

// Poll returns the key transitions of the current frame, presses before releases.
func (p *KeyPoller) Poll() []input.Event {
	p.events = p.events[:0]
	for _, k := range input.AllKeys() {
		code, ok := rlKeys[k]
		if !ok {
			continue
		}
		if rl.IsKeyPressed(code) {
			p.events = append(p.events, input.Event{Key: k, Down: true})
		}
	}
	for _, k := range input.AllKeys() {
		code, ok := rlKeys[k]
		if !ok {
			continue
		}
		if rl.IsKeyReleased(code) {
			p.events = append(p.events, input.Event{Key: k, Down: false})
		}
	}
	return p.events
}
