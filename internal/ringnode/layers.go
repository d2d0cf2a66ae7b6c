package ringnode

import (
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"ring-widget/internal/anim"
	"ring-widget/internal/fonts"
	"ring-widget/internal/geom"
)

// ringStartAngle is where the arc begins, in raylib's degree convention
// (clockwise from the positive x-axis, y-down): 90° = bottom of the circle.
const ringStartAngle = 90

// ringSegments controls arc tessellation for a full circle; partial arcs are
// drawn with proportionally fewer segments.
const ringSegments = 96

// discLayer draws the filled center disc: a circle inscribed in its square
// bounds, filled with the node color.
type discLayer struct {
	bounds rl.Rectangle
	color  rl.Color
}

func (l *discLayer) Draw(time.Time) {
	if geom.Empty(l.bounds) {
		return
	}
	rl.DrawCircleV(geom.Center(l.bounds), l.bounds.Width/2, l.color)
}

// ringLayer draws the progress arc: a stroke of the given thickness from
// ringStartAngle sweeping clockwise. When reveal is set, the visible end of
// the stroke animates from the start point to the full sweep; the start of
// the stroke is held fixed. reveal == nil draws the full arc statically
// (first paint, so layout surfaces show the final state without a running
// animation).
type ringLayer struct {
	center      rl.Vector2
	radius      float32
	thickness   float32
	color       rl.Color
	sweep       float32 // degrees; 360 * progress/100, unclamped
	reveal      *anim.Spec
	installedAt time.Time
}

// newRingLayer builds the arc for square in the render contract's terms:
// center = square center, radius = max(side)/2 - thickness/2.
func newRingLayer(square rl.Rectangle, cfg Config) *ringLayer {
	return &ringLayer{
		center:    geom.Center(square),
		radius:    math32.Max(square.Width, square.Height)/2 - cfg.RingThickness/2,
		thickness: cfg.RingThickness,
		color:     cfg.RingColor,
		sweep:     360 * cfg.RingProgress / 100,
	}
}

// revealFraction returns how much of the sweep is visible at now: 1 for a
// static layer, the eased animation value otherwise. A finished animation
// is retired so later frames draw the full arc without re-sampling it.
func (l *ringLayer) revealFraction(now time.Time) float32 {
	if l.reveal == nil {
		return 1
	}
	elapsed := now.Sub(l.installedAt)
	if l.reveal.Done(elapsed) {
		l.reveal = nil
		return 1
	}
	return l.reveal.Value(elapsed)
}

// endAngle returns the arc's end angle at now.
func (l *ringLayer) endAngle(now time.Time) float32 {
	return ringStartAngle + l.sweep*l.revealFraction(now)
}

func (l *ringLayer) Draw(now time.Time) {
	if l.radius <= 0 || l.thickness <= 0 {
		return
	}
	end := l.endAngle(now)
	if end == ringStartAngle {
		return
	}
	segments := int32(math32.Abs(end-ringStartAngle) / 360 * ringSegments)
	if segments < 1 {
		segments = 1
	}
	inner := l.radius - l.thickness/2
	outer := l.radius + l.thickness/2
	rl.DrawRing(l.center, inner, outer, ringStartAngle, end, segments, l.color)
}

// labelLayer draws the centered title text inside its square bounds. Text is
// word-wrapped to at most maxLines lines (0 = unlimited) and the font size
// is shrunk until the widest line fits the bounds' width. The named font is
// loaded lazily on first Draw so GPU work happens after the window exists;
// an unresolvable name falls back to raylib's default font.
type labelLayer struct {
	bounds   rl.Rectangle
	text     string
	color    rl.Color
	fontName string
	fontSize float32
	maxLines int

	font      rl.Font
	fontTried bool
}

const labelLineSpacing = 1.2

func (l *labelLayer) ensureFont() {
	if l.fontTried || l.fontName == "" {
		return
	}
	l.fontTried = true
	if path, err := fonts.Find(l.fontName); err == nil {
		if f := rl.LoadFont(path); f.Texture.ID != 0 {
			l.font = f
		}
	}
}

// measure returns the rendered width of s at size with the layer's font.
func (l *labelLayer) measure(s string, size float32) float32 {
	if l.font.Texture.ID != 0 {
		return rl.MeasureTextEx(l.font, s, size, 1).X
	}
	return float32(rl.MeasureText(s, int32(size)))
}

func (l *labelLayer) Draw(time.Time) {
	if geom.Empty(l.bounds) || l.text == "" {
		return
	}
	l.ensureFont()
	lines, size := fitLines(l.text, l.bounds.Width, l.fontSize, l.maxLines, l.measure)
	if len(lines) == 0 {
		return
	}
	lineHeight := size * labelLineSpacing
	c := geom.Center(l.bounds)
	y := c.Y - lineHeight*float32(len(lines))/2
	for _, line := range lines {
		x := c.X - l.measure(line, size)/2
		if l.font.Texture.ID != 0 {
			rl.DrawTextEx(l.font, line, rl.NewVector2(x, y), size, 1, l.color)
		} else {
			rl.DrawText(line, int32(x), int32(y), int32(size), l.color)
		}
		y += lineHeight
	}
}
