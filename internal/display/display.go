// Package display holds the retained layer tree. Widgets install drawable
// layers; the graphics loop draws the whole tree once per frame. Draw order
// is install order (first layer drawn first, then on top the next).
package display

import "time"

// Layer is a single drawable element. Draw receives the frame clock's
// current time so animated layers can sample their animation without the
// owning widget stepping frames.
type Layer interface {
	Draw(now time.Time)
}

// Tree is an ordered list of layers drawn back to front. Single-threaded:
// install, remove, and draw all run on the host loop.
type Tree struct {
	layers []Layer
	pinned []Layer
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Install appends layer to the tree. Installing the same layer twice draws
// it twice; callers that replace a layer must Remove the old one first.
func (t *Tree) Install(layer Layer) {
	t.layers = append(t.layers, layer)
}

// Pin installs layer above every regular layer. Pinned layers keep drawing
// on top no matter how many layers are installed afterwards; overlays use
// this so widget re-renders cannot cover them.
func (t *Tree) Pin(layer Layer) {
	t.pinned = append(t.pinned, layer)
}

// Remove detaches layer from the tree, pinned or not. Removing a layer that
// is not installed is a no-op.
func (t *Tree) Remove(layer Layer) {
	for i, l := range t.layers {
		if l == layer {
			t.layers = append(t.layers[:i], t.layers[i+1:]...)
			return
		}
	}
	for i, l := range t.pinned {
		if l == layer {
			t.pinned = append(t.pinned[:i], t.pinned[i+1:]...)
			return
		}
	}
}

// Contains reports whether layer is currently installed, pinned or not.
func (t *Tree) Contains(layer Layer) bool {
	for _, l := range t.layers {
		if l == layer {
			return true
		}
	}
	for _, l := range t.pinned {
		if l == layer {
			return true
		}
	}
	return false
}

// Len returns the number of installed layers, including pinned ones.
func (t *Tree) Len() int {
	return len(t.layers) + len(t.pinned)
}

// Draw draws all regular layers in install order, then the pinned layers.
func (t *Tree) Draw(now time.Time) {
	for _, l := range t.layers {
		l.Draw(now)
	}
	for _, l := range t.pinned {
		l.Draw(now)
	}
}
