package ringnode

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// Config is the widget's full configuration surface. All fields may be
// changed by the host before or between renders; changes take effect on the
// next Render call. Values are taken as-is: RingProgress is not clamped to
// [0,100] and RingThickness is not checked for sign, so out-of-range values
// produce an arc sweeping more or less than intended (see geom.SquareIn for
// the degenerate-square boundary).
type Config struct {
	Title              string   // label text
	TitleColor         rl.Color // label text color
	TitleFontName      string   // font search name; empty = raylib default font
	TitleFontSize      float32  // label font size, shrunk further to fit width
	TitleNumberOfLines int      // line-wrap limit; 0 = unlimited
	NodeColor          rl.Color // fill color of the center disc
	RingProgress       float32  // percent of the ring arc to draw, 0-100
	RingColor          rl.Color // ring stroke color
	RingThickness      float32  // ring stroke width, in layout units
	RingAnimationSpeed float32  // animation duration multiplier
}

// DefaultConfig returns the widget defaults: white "Title" label at size 10
// with unlimited lines, green disc, and a blue ring at 75% progress,
// thickness 10, speed 1.
func DefaultConfig() Config {
	return Config{
		Title:              "Title",
		TitleColor:         rl.White,
		TitleFontName:      "",
		TitleFontSize:      10,
		TitleNumberOfLines: 0,
		NodeColor:          rl.Green,
		RingProgress:       75,
		RingColor:          rl.Blue,
		RingThickness:      10,
		RingAnimationSpeed: 1,
	}
}

// Configure applies cfg onto the widget's current configuration. Zero-valued
// fields are skipped, so a partial Config (e.g. from a theme file) overrides
// only what it sets.
func (n *RingNode) Configure(cfg Config) error {
	return copier.CopyWithOption(&n.Config, &cfg, copier.Option{IgnoreEmpty: true})
}
