// Package debug draws the optional top-right runtime overlays.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Overlay text is rebuilt every updateInterval frames to limit
	// per-frame allocations.
	updateInterval = 30
)

// Debug holds the FPS and heap-allocation overlays. Both are off by default
// and toggled from the config file.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns a Debug with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Draw renders the enabled overlays at the top-right, after everything else
// in the draw loop.
func (d *Debug) Draw() {
	if !d.ShowFPS && !d.ShowMemAlloc {
		return
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 1

	y := int32(padding)
	if d.ShowFPS {
		if update || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRightAligned(d.fpsText, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRightAligned(d.memText, y)
	}
}

func drawRightAligned(text string, y int32) {
	x := int32(rl.GetScreenWidth()) - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
