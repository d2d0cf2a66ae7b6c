package geom

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/go-cmp/cmp"
)

func TestSquareInCenterAndSide(t *testing.T) {
	cases := []struct {
		name   string
		rect   rl.Rectangle
		margin float32
		want   rl.Rectangle
	}{
		{"wide rect zero margin", rl.NewRectangle(0, 0, 200, 100), 0, rl.NewRectangle(50, 0, 100, 100)},
		{"tall rect zero margin", rl.NewRectangle(10, 20, 60, 160), 0, rl.NewRectangle(10, 70, 60, 60)},
		{"square with margin", rl.NewRectangle(0, 0, 100, 100), 5, rl.NewRectangle(5, 5, 90, 90)},
		{"offset rect with margin", rl.NewRectangle(40, 60, 120, 80), 10, rl.NewRectangle(70, 70, 60, 60)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SquareIn(tc.rect, tc.margin)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("SquareIn mismatch (-want +got):\n%s", diff)
			}
			// Center must equal the source rect's center regardless of margin.
			if gc, rc := Center(got), Center(tc.rect); gc != rc {
				t.Errorf("center moved: got %v, want %v", gc, rc)
			}
		})
	}
}

func TestSquareInDegenerateMargin(t *testing.T) {
	rect := rl.NewRectangle(0, 0, 100, 60)
	// margin >= min(w,h)/2 gives zero or negative side; must not panic and
	// the result must report as empty.
	for _, margin := range []float32{30, 31, 100} {
		got := SquareIn(rect, margin)
		if !Empty(got) {
			t.Errorf("margin %v: want empty square, got %+v", margin, got)
		}
		if got.Width != 60-2*margin {
			t.Errorf("margin %v: side = %v, want %v", margin, got.Width, 60-2*margin)
		}
	}
}

func TestContains(t *testing.T) {
	rect := rl.NewRectangle(10, 10, 100, 100)
	inside := []rl.Vector2{{X: 10, Y: 10}, {X: 60, Y: 60}, {X: 110, Y: 110}}
	outside := []rl.Vector2{{X: 9, Y: 60}, {X: 111, Y: 60}, {X: 60, Y: 9}, {X: 60, Y: 111}}
	for _, p := range inside {
		if !Contains(rect, p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	for _, p := range outside {
		if Contains(rect, p) {
			t.Errorf("Contains(%v) = true, want false", p)
		}
	}
	// An empty rect contains nothing, including its own origin.
	if Contains(SquareIn(rect, 60), rl.NewVector2(60, 60)) {
		t.Error("empty rect must not contain any point")
	}
}
