package animation

import "fmt"

// Animation names and the idle pose frame used by the player.
const (
	Run       = "run"
	Walk      = "walk"
	IdleFrame = 5
)

// Actor plays named animations on a character. The scene implements it over a raylib model.
type Actor interface {
	Loop(name string)
	Stop()
	Pose(name string, frame int)
}

// Controller switches the player between the run loop and the idle pose. It only talks to the
// actor on a transition, so holding keys across frames never restarts the loop.
type Controller struct {
	Moving bool
}

// Update applies one frame of locomotion state. anyMoveKey is true while a movement key is held.
func (c *Controller) Update(actor Actor, anyMoveKey bool) {
	switch {
	case anyMoveKey && !c.Moving:
		actor.Loop(Run)
		c.Moving = true
	case !anyMoveKey && c.Moving:
		actor.Stop()
		actor.Pose(Walk, IdleFrame)
		c.Moving = false
	}
}

// Recorder is an Actor that remembers the calls made on it and the resulting state.
// It stands in for a model when none is loaded.
type Recorder struct {
	Calls   []string
	Current string // animation being looped, "" when stopped
	Posed   string
	Frame   int
}

func (r *Recorder) Loop(name string) {
	r.Calls = append(r.Calls, "loop "+name)
	r.Current = name
	r.Posed = ""
}

func (r *Recorder) Stop() {
	r.Calls = append(r.Calls, "stop")
	r.Current = ""
}

func (r *Recorder) Pose(name string, frame int) {
	r.Calls = append(r.Calls, fmt.Sprintf("pose %s %d", name, frame))
	r.Posed = name
	r.Frame = frame
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
