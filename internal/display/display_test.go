package display

import (
	"testing"
	"time"
)

// recordLayer records the order it was drawn in via a shared log.
type recordLayer struct {
	name string
	log  *[]string
}

func (r *recordLayer) Draw(time.Time) { *r.log = append(*r.log, r.name) }

func TestDrawOrderIsInstallOrder(t *testing.T) {
	var log []string
	tree := New()
	a := &recordLayer{"a", &log}
	b := &recordLayer{"b", &log}
	c := &recordLayer{"c", &log}
	tree.Install(a)
	tree.Install(b)
	tree.Install(c)
	tree.Draw(time.Time{})
	if got := len(log); got != 3 {
		t.Fatalf("drew %d layers, want 3", got)
	}
	for i, want := range []string{"a", "b", "c"} {
		if log[i] != want {
			t.Errorf("draw order[%d] = %q, want %q", i, log[i], want)
		}
	}
}

func TestPinnedLayersDrawLast(t *testing.T) {
	var log []string
	tree := New()
	overlay := &recordLayer{"overlay", &log}
	tree.Pin(overlay)
	// Layers installed after the pin, as a widget re-render does, must
	// still draw underneath it.
	tree.Install(&recordLayer{"a", &log})
	tree.Install(&recordLayer{"b", &log})
	tree.Draw(time.Time{})
	if len(log) != 3 || log[2] != "overlay" {
		t.Fatalf("draw order = %v, want overlay last", log)
	}
	if !tree.Contains(overlay) || tree.Len() != 3 {
		t.Error("pinned layer must count as installed")
	}
	tree.Remove(overlay)
	if tree.Contains(overlay) || tree.Len() != 2 {
		t.Error("Remove must detach pinned layers too")
	}
}

func TestRemove(t *testing.T) {
	var log []string
	tree := New()
	a := &recordLayer{"a", &log}
	b := &recordLayer{"b", &log}
	tree.Install(a)
	tree.Install(b)
	tree.Remove(a)
	if tree.Contains(a) {
		t.Error("removed layer still present")
	}
	if !tree.Contains(b) {
		t.Error("unrelated layer was removed")
	}
	if tree.Len() != 1 {
		t.Errorf("Len = %d, want 1", tree.Len())
	}
	// Removing again, or removing a never-installed layer, is a no-op.
	tree.Remove(a)
	tree.Remove(&recordLayer{"x", &log})
	if tree.Len() != 1 {
		t.Errorf("Len after no-op removes = %d, want 1", tree.Len())
	}
}
