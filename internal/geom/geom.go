package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Center returns the center point of rect: ((minX+maxX)/2, (minY+maxY)/2).
func Center(rect rl.Rectangle) rl.Vector2 {
	return rl.NewVector2(rect.X+rect.Width/2, rect.Y+rect.Height/2)
}

// SquareIn returns the largest square centered in rect after insetting by
// margin on all sides: side = min(width, height) - 2*margin, centered on
// rect's center. A margin of at least min(width, height)/2 yields a square
// with zero or negative side; that is returned as-is and callers must treat
// it as empty (see Empty).
func SquareIn(rect rl.Rectangle, margin float32) rl.Rectangle {
	side := math32.Min(rect.Width, rect.Height) - 2*margin
	c := Center(rect)
	return rl.NewRectangle(c.X-side/2, c.Y-side/2, side, side)
}

// Empty reports whether rect has no drawable area (zero or negative side).
func Empty(rect rl.Rectangle) bool {
	return rect.Width <= 0 || rect.Height <= 0
}

// Contains reports whether point lies inside rect (edges inclusive).
// Pure; used for tap hit testing so dispatch does not need a window.
func Contains(rect rl.Rectangle, point rl.Vector2) bool {
	if Empty(rect) {
		return false
	}
	return point.X >= rect.X && point.X <= rect.X+rect.Width &&
		point.Y >= rect.Y && point.Y <= rect.Y+rect.Height
}
