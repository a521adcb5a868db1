package scene

import (
	"math"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// ModelActor plays named animations on a skinned raylib model. GPU loading is deferred to the
// first Draw so the actor can be handed to the game before the window exists; calls made
// before then set the state that is applied once the model is loaded.
type ModelActor struct {
	path  string
	clips map[string]string // logical name -> clip name in the file
	fps   float64
	log   *zap.SugaredLogger

	model   rl.Model
	anims   []rl.ModelAnimation
	byName  map[string]int
	pending bool
	loaded  bool

	current string  // logical animation being looped, "" when stopped
	shown   string  // logical animation on display, looping or posed
	anim    int     // clip index of the displayed animation, -1 when none
	frame   float64 // fractional frame of the displayed animation
	dirty   bool    // pose must be re-applied to the model
}

// NewModelActor returns an actor for the model at path. clips maps logical names such as
// "run" to clip names in the file; unmapped names are looked up as-is.
func NewModelActor(path string, clips map[string]string, fps float64, log *zap.SugaredLogger) *ModelActor {
	return &ModelActor{
		path:    path,
		clips:   clips,
		fps:     fps,
		log:     log,
		byName:  make(map[string]int),
		pending: path != "",
		anim:    -1,
	}
}

// Loaded reports whether the model is on the GPU.
func (a *ModelActor) Loaded() bool {
	return a.loaded
}

func (a *ModelActor) ensureLoaded() {
	if !a.pending {
		return
	}
	a.pending = false
	a.model = rl.LoadModel(a.path)
	if a.model.MeshCount == 0 {
		a.log.Warnw("player model not loaded, using stand-in", "path", a.path)
		return
	}
	a.anims = rl.LoadModelAnimations(a.path)
	for i, anim := range a.anims {
		if name := clipName(anim); name != "" {
			a.byName[name] = i
		}
	}
	a.loaded = true
	a.log.Infow("player model loaded", "path", a.path, "animations", len(a.anims))
	if a.shown != "" {
		a.anim = a.lookup(a.shown)
	}
	a.dirty = true
}

func clipName(anim rl.ModelAnimation) string {
	n := 0
	for n < len(anim.Name) && anim.Name[n] != 0 {
		n++
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = byte(anim.Name[i])
	}
	return string(b)
}

// lookup returns the clip index for a logical animation name, or -1.
func (a *ModelActor) lookup(name string) int {
	clip := name
	if mapped, ok := a.clips[name]; ok {
		clip = mapped
	}
	if i, ok := a.byName[clip]; ok {
		return i
	}
	if a.loaded {
		a.log.Debugw("animation clip not found", "name", name, "clip", clip)
	}
	return -1
}

// Loop starts name from its first frame and repeats it.
func (a *ModelActor) Loop(name string) {
	a.current = name
	a.shown = name
	a.anim = a.lookup(name)
	a.frame = 0
	a.dirty = true
}

// Stop freezes the model on the frame it is showing.
func (a *ModelActor) Stop() {
	a.current = ""
}

// Pose shows one frame of name without playing it.
func (a *ModelActor) Pose(name string, frame int) {
	a.current = ""
	a.shown = name
	a.anim = a.lookup(name)
	a.frame = float64(frame)
	a.dirty = true
}

// Advance moves a looping animation forward by dt seconds.
func (a *ModelActor) Advance(dt float64) {
	if a.current == "" || a.anim < 0 || !a.loaded {
		return
	}
	count := float64(a.anims[a.anim].FrameCount)
	if count <= 0 {
		return
	}
	a.frame = math.Mod(a.frame+dt*a.fps, count)
	a.dirty = true
}

func (a *ModelActor) apply() {
	if !a.dirty || !a.loaded || a.anim < 0 || a.anim >= len(a.anims) {
		return
	}
	anim := a.anims[a.anim]
	frame := int32(a.frame)
	if frame >= anim.FrameCount {
		frame = anim.FrameCount - 1
	}
	if frame < 0 {
		frame = 0
	}
	rl.UpdateModelAnimation(a.model, anim, frame)
	a.dirty = false
}

// Draw renders the model standing at position (raylib space), turned heading degrees about
// the vertical axis, uniformly scaled. The model's materials use shader when it is valid.
func (a *ModelActor) Draw(position rl.Vector3, heading, scale float32, shader rl.Shader) {
	a.ensureLoaded()
	if !a.loaded {
		return
	}
	a.apply()
	if rl.IsShaderValid(shader) {
		mats := unsafe.Slice(a.model.Materials, a.model.MaterialCount)
		for i := range mats {
			mats[i].Shader = shader
		}
	}
	rl.DrawModelEx(a.model, position, rl.NewVector3(0, 1, 0), heading, rl.NewVector3(scale, scale, scale), rl.White)
}

// Unload frees the model and its animations.
func (a *ModelActor) Unload() {
	if !a.loaded {
		return
	}
	if len(a.anims) > 0 {
		rl.UnloadModelAnimations(a.anims)
	}
	rl.UnloadModel(a.model)
	a.loaded = false
}
