// Package ringnode implements a circular node widget: a filled center disc,
// a centered text label, and a progress ring stroked around the edge. The
// ring animates from empty to its configured progress, except on the very
// first render, which paints the final state statically so layout and
// preview surfaces are correct without an animation running. The widget
// draws nothing itself; Render installs layers into a display tree that the
// host draws once per frame.
package ringnode

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ring-widget/internal/anim"
	"ring-widget/internal/display"
	"ring-widget/internal/geom"
	"ring-widget/internal/input"
)

// TapListener is notified when the widget's tap region is tapped. It
// receives the tapped widget.
type TapListener func(*RingNode)

// RingNode is the widget. Create with New, configure through the embedded
// Config (or Configure), then have the host call Render whenever the widget
// must (re)paint and AttachToHost once when it enters the host's tree.
// Single-threaded: all methods run on the host loop.
type RingNode struct {
	Config

	tree  *display.Tree
	clock anim.Clock

	renderedOnce bool
	tapInstalled bool
	onTap        TapListener

	// Installed layers, at most one of each. Render replaces them,
	// removing the previous layer before installing the next.
	disc  *discLayer
	label *labelLayer
	ring  *ringLayer
}

// New returns a widget with default configuration that installs its layers
// into tree. A nil clock means the real clock.
func New(tree *display.Tree, clock anim.Clock) *RingNode {
	if clock == nil {
		clock = anim.Real{}
	}
	return &RingNode{
		Config: DefaultConfig(),
		tree:   tree,
		clock:  clock,
	}
}

// SetTapListener registers the single tap listener. Passing nil unregisters
// it; taps then have no effect.
func (n *RingNode) SetTapListener(fn TapListener) {
	n.onTap = fn
}

// Render (re)paints the widget into bounds:
//
//  1. a disc filled with NodeColor, inscribed in the largest centered
//     square inset by RingThickness/2;
//  2. the title label, centered in the square inset by RingThickness*1.25,
//     wrapped and shrunk to fit;
//  3. the progress ring on the square inset by 0 - static on the first
//     render ever, animated from empty to RingProgress on every render
//     after that.
//
// Each call replaces the widget's previous layers; the old ring layer is
// removed before the new one is installed, so the tree never holds two
// rings for one widget. A replaced ring's running animation is discarded.
func (n *RingNode) Render(bounds rl.Rectangle) {
	nodeSquare := geom.SquareIn(bounds, n.RingThickness/2)
	labelSquare := geom.SquareIn(bounds, n.RingThickness*1.25)
	ringSquare := geom.SquareIn(bounds, 0)

	if n.disc != nil {
		n.tree.Remove(n.disc)
	}
	n.disc = &discLayer{bounds: nodeSquare, color: n.NodeColor}
	n.tree.Install(n.disc)

	if n.label != nil {
		n.tree.Remove(n.label)
	}
	n.label = &labelLayer{
		bounds:   labelSquare,
		text:     n.Title,
		color:    n.TitleColor,
		fontName: n.TitleFontName,
		fontSize: n.TitleFontSize,
		maxLines: n.TitleNumberOfLines,
	}
	n.tree.Install(n.label)

	ring := newRingLayer(ringSquare, n.Config)
	if n.renderedOnce {
		ring.reveal = &anim.Spec{
			From:     0,
			To:       1,
			Duration: anim.RingDuration(n.RingProgress, n.RingAnimationSpeed),
		}
		ring.installedAt = n.clock.Now()
	}
	n.renderedOnce = true
	if n.ring != nil {
		n.tree.Remove(n.ring)
	}
	n.ring = ring
	n.tree.Install(n.ring)
}

// AttachToHost installs the widget's invisible tap region, covering the
// same square the ring uses (margin 0). Installation happens once per
// widget; later calls are no-ops even with different bounds, matching a
// host that signals attachment more than once.
func (n *RingNode) AttachToHost(rec *input.Recognizer, bounds rl.Rectangle) {
	if n.tapInstalled {
		return
	}
	n.tapInstalled = true
	rec.Add(&input.Region{
		Bounds: geom.SquareIn(bounds, 0),
		Handler: func() {
			if n.onTap != nil {
				n.onTap(n)
			}
		},
	})
}
