package hud

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Instruction layout in half-screen-height units from the top-left corner: the first
// baseline sits at 0.10 and each further line 0.06 lower, indented 0.08.
const (
	lineFirst  = 0.10
	linePitch  = 0.06
	lineIndent = 0.08
)

const (
	padding      = 12
	lineSpacing  = 4
	shadowOffset = 1
	// updateInterval: stats text is refreshed every N frames to limit allocations.
	updateInterval = 30
)

// HUD draws the control instructions in the top-left corner and, when enabled, FPS and heap
// usage in the top-right corner. The stats overlays are off by default.
type HUD struct {
	Lines        []string
	ShowFPS      bool
	ShowMemAlloc bool

	fontSize   int32
	font       rl.Font // zero texture ID means raylib's default font
	fontPath   string  // loaded on first Draw, once the window exists
	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns a HUD that shows lines at the given font size.
func New(lines []string, fontSize int) *HUD {
	return &HUD{Lines: lines, fontSize: int32(fontSize)}
}

// SetFontPath sets a .ttf/.otf file to draw with. It is loaded on the next Draw.
func (h *HUD) SetFontPath(path string) {
	h.fontPath = path
}

func (h *HUD) ensureFont() {
	if h.fontPath == "" {
		return
	}
	path := h.fontPath
	h.fontPath = ""
	if font := rl.LoadFont(path); font.Texture.ID != 0 {
		h.font = font
	}
}

func (h *HUD) measure(text string) int32 {
	if h.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(h.font, text, float32(h.fontSize), 1).X)
	}
	return rl.MeasureText(text, h.fontSize)
}

func (h *HUD) text(text string, x, y int32, c rl.Color) {
	if h.font.Texture.ID != 0 {
		rl.DrawTextEx(h.font, text, rl.NewVector2(float32(x), float32(y)), float32(h.fontSize), 1, c)
		return
	}
	rl.DrawText(text, x, y, h.fontSize, c)
}

// shadowed draws text in white over a black copy offset down and right.
func (h *HUD) shadowed(text string, x, y int32) {
	h.text(text, x+shadowOffset, y+shadowOffset, rl.Black)
	h.text(text, x, y, rl.White)
}

// Draw renders the overlay. Call after the 3D scene.
func (h *HUD) Draw() {
	h.ensureFont()
	step := h.fontSize + lineSpacing

	unit := float64(rl.GetScreenHeight()) / 2
	x := int32(lineIndent * unit)
	for i, line := range h.Lines {
		baseline := (lineFirst + linePitch*float64(i)) * unit
		h.shadowed(line, x, int32(baseline)-h.fontSize*3/4)
	}

	h.frameCount++
	update := h.frameCount%updateInterval == 0
	if (h.ShowFPS && h.fpsText == "") || (h.ShowMemAlloc && h.memText == "") {
		update = true
	}
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if h.ShowFPS {
		if update {
			h.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		h.text(h.fpsText, screenW-h.measure(h.fpsText)-padding, y, rl.Green)
		y += step
	}
	if h.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&h.memStats)
			h.memText = fmt.Sprintf("Mem: %.2f MiB", float64(h.memStats.Alloc)/(1024*1024))
		}
		h.text(h.memText, screenW-h.measure(h.memText)-padding, y, rl.Green)
	}
}

// Unload frees the custom font, if any.
func (h *HUD) Unload() {
	if h.font.Texture.ID != 0 {
		rl.UnloadFont(h.font)
		h.font = rl.Font{}
	}
}
