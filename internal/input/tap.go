// Package input provides invisible tap regions: rectangles that capture a
// single tap (left mouse press) and forward it to a handler. No debouncing,
// no drag tracking, no gesture conflict resolution.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ring-widget/internal/geom"
)

// Region is a tap-detection area. It draws nothing; it only matches points
// against its bounds. A nil Handler makes a matched tap a no-op.
type Region struct {
	Bounds  rl.Rectangle
	Handler func()
}

// Recognizer owns the tap regions for one host surface. Poll reads the mouse
// once per frame; Dispatch is the pure core and is what tests exercise.
type Recognizer struct {
	regions []*Region
}

// NewRecognizer returns a recognizer with no regions.
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Add registers region. Regions added first win when bounds overlap.
func (r *Recognizer) Add(region *Region) {
	r.regions = append(r.regions, region)
}

// Len returns the number of registered regions.
func (r *Recognizer) Len() int {
	return len(r.regions)
}

// Poll checks for a left-button press this frame and dispatches it. Call
// once per frame from the host update loop.
func (r *Recognizer) Poll() {
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		r.Dispatch(rl.GetMousePosition())
	}
}

// Dispatch delivers a tap at point to the first region containing it. The
// matched region's handler is called exactly once; remaining regions are not
// consulted. A tap outside every region, or on a region with no handler,
// has no effect.
func (r *Recognizer) Dispatch(point rl.Vector2) {
	for _, region := range r.regions {
		if geom.Contains(region.Bounds, point) {
			if region.Handler != nil {
				region.Handler()
			}
			return
		}
	}
}
