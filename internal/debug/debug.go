// Package debug draws an optional FPS overlay as a display layer, useful
// when checking that ring animations hold frame rate.
package debug

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize = 20
	fpsPadding  = 12
	// updateInterval: only refresh the FPS text every N frames to reduce
	// allocations.
	updateInterval = 30
)

// Overlay is a display layer showing the frame rate top-right. Off by
// default; flip Show to enable.
type Overlay struct {
	Show       bool
	frameCount uint32
	lastText   string
}

// NewOverlay returns a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Draw renders the FPS counter when Show is true. Implements display.Layer;
// install it last so it draws on top of the widgets.
func (o *Overlay) Draw(time.Time) {
	if !o.Show {
		return
	}
	o.frameCount++
	if o.lastText == "" || o.frameCount%updateInterval == 0 {
		o.lastText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	w := rl.MeasureText(o.lastText, fpsFontSize)
	x := int32(rl.GetScreenWidth()) - w - fpsPadding
	rl.DrawText(o.lastText, x, fpsPadding, fpsFontSize, rl.Green)
}
